package configuration

import (
	"fmt"
	"github.com/go-viper/mapstructure/v2"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"os"
	"time"
)

type Configuration struct {
	DbPath      string `json:"dbPath"`
	ProfilePath string `json:"profilePath"`

	// Device is the id of the device used when none is given explicitly
	Device string `json:"device"`

	TelemetryPollingRate       time.Duration `json:"telemetryPollingRate"`
	TelemetryRollingWindowSize int           `json:"telemetryRollingWindowSize"`

	// SaveOnCommit persists the profile after every successful commit
	SaveOnCommit DefaultTrueBool `json:"saveOnCommit"`

	Devices []DeviceConfig `json:"devices"`
	Curves  CurvesConfig   `json:"curves"`
	Control ControlConfig  `json:"control"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("kraken2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/kraken2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbpath", "/etc/kraken2go/kraken2go.db")
	viper.SetDefault("profilepath", "~/.config/kraken2go/profile.json")
	viper.SetDefault("device", "")
	viper.SetDefault("TelemetryPollingRate", 1*time.Second)
	viper.SetDefault("TelemetryRollingWindowSize", 10)

	viper.SetDefault("devices", []DeviceConfig{})

	viper.SetDefault("control.enabled", false)
	viper.SetDefault("control.maxDutyChangePerSecond", 0)
	viper.SetDefault("control.adjustmentTickRate", 1*time.Second)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)
}

// ReadConfigFile reads, decodes and validates the configuration file, exiting on failure
func ReadConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		// config file is required, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	ui.Info("Using configuration file at: %s", viper.ConfigFileUsed())

	if err := LoadConfig(); err != nil {
		ui.Fatal("%v", err)
	}
}

// LoadConfig decodes the current viper state into CurrentConfig
func LoadConfig() error {
	var config Configuration
	if err := viper.Unmarshal(&config, viper.DecodeHook(decodeHooks())); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
	return nil
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		CurvePointsHookFunc(),
		DefaultTrueBoolHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// FindDevice returns the configuration of the device with the given id
func (c *Configuration) FindDevice(id string) (DeviceConfig, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return DeviceConfig{}, false
}

// DefaultDevice returns the configured default device, or the first one
func (c *Configuration) DefaultDevice() (DeviceConfig, bool) {
	if len(c.Device) > 0 {
		return c.FindDevice(c.Device)
	}
	if len(c.Devices) <= 0 {
		return DeviceConfig{}, false
	}
	return c.Devices[0], true
}
