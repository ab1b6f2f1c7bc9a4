package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/kraken2go/cmd/config"
	"github.com/markusressel/kraken2go/cmd/curve"
	"github.com/markusressel/kraken2go/cmd/device"
	"github.com/markusressel/kraken2go/cmd/global"
	"github.com/markusressel/kraken2go/cmd/preset"
	"github.com/markusressel/kraken2go/internal"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/markusressel/kraken2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kraken2go",
	Short: "A daemon to control the lighting, fan and pump of AIO liquid coolers.",
	Long: `kraken2go keeps the logo and ring lighting presets of your
liquid cooler in sync and tracks its fan and pump control curves.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()
		global.ReadAndValidateConfig()
		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/kraken2go.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(preset.Command)
	rootCmd.AddCommand(curve.Command)
	rootCmd.AddCommand(device.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("kraken", pterm.NewStyle(pterm.FgLightMagenta)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightMagenta)),
	).Render()
	if err != nil {
		fmt.Println("kraken2go")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		setupUi()
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
