package main

import (
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pipeline"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Decrypt an encrypted image in memory and compare it with the original",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	verifyCmd.Flags().String("original", "", "Original image path")
	verifyCmd.Flags().String("encrypted", "", "Encrypted image path")
	addOpFlags(verifyCmd)
	verifyCmd.MarkFlagRequired("original")
	verifyCmd.MarkFlagRequired("encrypted")
	verifyCmd.MarkFlagRequired("op")
	return verifyCmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	originalPath, _ := cmd.Flags().GetString("original")
	encryptedPath, _ := cmd.Flags().GetString("encrypted")

	op, err := opFromFlags(cmd)
	if err != nil {
		return err
	}

	original, err := imageio.ReadFile(originalPath)
	if err != nil {
		return err
	}
	encrypted, err := imageio.ReadFile(encryptedPath)
	if err != nil {
		return err
	}

	v, err := pipeline.Verify(original, encrypted, op)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !v.Exact() {
		return fmt.Errorf("%s does not decrypt to %s: %d of %d samples differ (%.2f%%)",
			encryptedPath, originalPath, v.Differing, v.Samples,
			float64(v.Differing)/float64(v.Samples)*100)
	}
	fmt.Fprintf(out, "✓ %s decrypts to %s exactly (%dx%d, %d channels compared)\n",
		encryptedPath, originalPath, v.Width, v.Height, v.Channels)
	return nil
}
