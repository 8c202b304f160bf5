package main

import (
	"fmt"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/spf13/cobra"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Inspect image format, channels and ICC profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := imageio.ReadFile(path)
	if err != nil {
		return err
	}

	info, err := imageio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Channels:    %d\n", info.Channels)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)

	switch {
	case info.ICC == nil:
		fmt.Fprintln(out, "ICC profile: none")
	case info.Profile == nil:
		fmt.Fprintf(out, "ICC profile: present (%d bytes) but invalid: %v\n", len(info.ICC), info.ProfileErr)
	default:
		pi := info.Profile
		fmt.Fprintf(out, "ICC profile: %d bytes\n", len(info.ICC))
		fmt.Fprintf(out, "  Version:     %s\n", pi.Version)
		fmt.Fprintf(out, "  Color space: %s\n", imageio.ColorSpaceName(pi.ColorSpace))
		fmt.Fprintf(out, "  PCS:         %s\n", imageio.ColorSpaceName(pi.PCS))
		fmt.Fprintf(out, "  Class:       %s\n", imageio.ProfileClassName(pi.Class))
	}
	return nil
}
