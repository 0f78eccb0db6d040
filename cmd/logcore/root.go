// FILE: lixenwraith/logcore/cmd/logcore/root.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/logcore"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "logcore",
		Short:         "Exercise and inspect the logcore pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML, [logcore] table)")

	loadConfig := func() (*logcore.Config, error) {
		if configFlag == "" {
			return logcore.DefaultConfig(), nil
		}
		return logcore.NewConfigFromFile(configFlag)
	}

	rootCmd.AddCommand(newStressCommand(loadConfig))
	rootCmd.AddCommand(newRotateCommand())
	rootCmd.AddCommand(newConfigCommand(loadConfig))

	return rootCmd
}
