package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go_pgraster/pkg/pgraster"
)

var (
	cfgFile  string
	loglevel int

	rootCmd = &cobra.Command{
		Use:   "pgraster",
		Short: "Inspect and convert PostGIS raster WKB dumps",
		Long: `pgraster decodes PostGIS raster well-known-binary values into images.

Input files may be raw binary (.wkb), hex text as produced by psql (.hex),
or either of those zstd-compressed (.zst suffix).`,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file; default $HOME/.pgraster.yaml")
	rootCmd.PersistentFlags().IntVarP(&loglevel, "loglevel", "l", 0, "diagnostic verbosity (0: silent, 1: warnings, 2: debug)")

	// bind application flags to viper keys so config/env can set defaults
	viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in the config file and PGRASTER_* env variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pgraster")
	}

	viper.SetEnvPrefix("PGRASTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}

	switch viper.GetInt("loglevel") {
	case 0:
		pgraster.SetLogger(nil)
	case 1:
		pgraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})))
	default:
		pgraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}
