// FILE: lixenwraith/logcore/cmd/logcore/config.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/logcore"
)

func newConfigCommand(loadConfig func() (*logcore.Config, error)) *cobra.Command {
	var overrides []string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(overrides) > 0 {
				core, err := logcore.New(cfg)
				if err != nil {
					return err
				}
				if err := core.ApplyOverride(overrides...); err != nil {
					return err
				}
				cfg = core.GetConfig()
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a setting (key=value, repeatable)")

	return cmd
}
