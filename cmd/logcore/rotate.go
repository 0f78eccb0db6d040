// FILE: lixenwraith/logcore/cmd/logcore/rotate.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/logcore"
)

func newRotateCommand() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "rotate <file>",
		Short: "Rotate a log file into numbered backups (app.log -> app.1.log)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logcore.RotateFiles(args[0], keep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rotated %s (keep %d)\n", args[0], keep)
			return nil
		},
	}

	cmd.Flags().IntVarP(&keep, "keep", "k", 5, "Number of numbered backups to keep")

	return cmd
}
