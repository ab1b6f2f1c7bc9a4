package global

import (
	"bytes"

	"github.com/markusressel/kraken2go/internal"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/session"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/viper"
	"github.com/tomlazar/table"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool

	// DeviceId selects the device, empty means the default device
	DeviceId string
)

// ReadAndValidateConfig reads the configuration file and exits if it is invalid
func ReadAndValidateConfig() {
	configuration.ReadConfigFile()
	if err := configuration.Validate(viper.ConfigFileUsed()); err != nil {
		ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
	}
}

// OpenSession reads the configuration and opens a session for the selected device
func OpenSession() (*session.Session, error) {
	ReadAndValidateConfig()
	return internal.OpenSession(DeviceId, internal.OpenPersistence())
}

// PrintTable prints rows in the common table style
func PrintTable(headers []string, rows [][]string) {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		panic(tableErr)
	}
	ui.Printfln(buf.String())
}
