package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfstdecode/wfst/attfsm"
)

func newValidateCmd() *cobra.Command {
	var fstPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a WFST and report structural problems without decoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fstPath == "" {
				return fmt.Errorf("validate: --fst is required")
			}

			f, err := os.Open(fstPath)
			if err != nil {
				return fmt.Errorf("validate: opening fst: %w", err)
			}
			defer f.Close()

			g, err := attfsm.Load(f)
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}

			fmt.Printf("ok: %d states, start=%d\n", g.NumStates(), g.Start())

			return nil
		},
	}

	cmd.Flags().StringVar(&fstPath, "fst", "", "Path to an AT&T FSM text-format WFST")

	return cmd
}
