package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wfstdecode",
		Short: "Token-passing beam search decoder over a weighted finite-state transducer",
		Long:  "wfstdecode drives a synchronous token-passing beam search over a compiled WFST, consulting a pluggable acoustic scorer at each emitting step.",
	}

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
