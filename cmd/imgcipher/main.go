package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "imgcipher",
		Short:         "Transform images using reversible pixel operations",
		Args:          cobra.NoArgs,
		RunE:          runTransform,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addTransformFlags(rootCmd)
	rootCmd.AddCommand(newIdentifyCmd(), newVerifyCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
