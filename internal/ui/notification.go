package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// For a list of possible icons, see: https://specifications.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
const (
	IconDialogError = "dialog-error"
	IconDialogWarn  = "dialog-warning"

	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"

	notificationAppName = "kraken2go"
)

func NotifyWarn(title, text string) {
	NotifySend(UrgencyNormal, title, text, IconDialogWarn)
}

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend shows a desktop notification in the graphical session of the user
// owning the current DISPLAY. Failures are only logged.
func NotifySend(urgency, title, text, icon string) {
	display, exists := os.LookupEnv("DISPLAY")
	if !exists {
		Debug("Cannot send notification, missing env variable 'DISPLAY'")
		return
	}

	user, uid, err := findDisplayUser(display)
	if err != nil {
		Warning("Cannot send notification: %v", err)
		return
	}

	cmd := exec.Command("sudo", "-u", user,
		"DISPLAY="+display,
		"DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/"+uid+"/bus",
		"notify-send",
		"-a", notificationAppName,
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	if err = cmd.Run(); err != nil {
		Error("Error sending notification: %v", err)
	}
}

func findDisplayUser(display string) (user string, uid string, err error) {
	output, err := exec.Command("who").Output()
	if err != nil {
		return "", "", fmt.Errorf("unable to list sessions: %w", err)
	}
	user = parseWhoOutput(string(output), display)
	if len(user) <= 0 {
		return "", "", fmt.Errorf("no user found for display %s", display)
	}

	output, err = exec.Command("id", "-u", user).Output()
	if err != nil {
		return "", "", fmt.Errorf("unable to detect user id of %s: %w", user, err)
	}
	uid = strings.TrimSpace(string(output))
	if len(uid) <= 0 {
		return "", "", fmt.Errorf("empty user id for %s", user)
	}
	return user, uid, nil
}

// parseWhoOutput returns the user of the first session line mentioning display
func parseWhoOutput(output string, display string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, display) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return strings.TrimSpace(fields[0])
		}
	}
	return ""
}
