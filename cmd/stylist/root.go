package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "STYLIST"

type rootFlags struct {
	configPath string
	mode       string
	logLevel   string
	verbose    bool
}

// settings are the root flags after environment overrides.
type settings struct {
	ConfigPath string
	Mode       string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "stylist",
		Short:         "Stylist resolves memoized button and text styles from props",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a theme file (default: <user config dir>/stylist/theme.yaml)")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Color mode: light, dark or auto (overrides the theme file)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	load := func() settings {
		s := settings{
			ConfigPath: v.GetString("config"),
			Mode:       v.GetString("mode"),
			LogLevel:   v.GetString("log-level"),
		}
		if v.GetBool("verbose") {
			s.LogLevel = "debug"
		}
		return s
	}

	cmd.AddCommand(newButtonCmd(load))
	cmd.AddCommand(newTouchableCmd(load))
	cmd.AddCommand(newTextCmd(load))
	cmd.AddCommand(newPresetsCmd(load))
	cmd.AddCommand(newDiffCmd(load))
	cmd.AddCommand(newPreviewCmd(load))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
