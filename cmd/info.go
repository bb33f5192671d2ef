package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_pgraster/pkg/pgraster"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print the header of a raster WKB file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readRasterFile(args[0])
		if err != nil {
			return err
		}
		h, err := pgraster.DecodeHeader(data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "version:  %d\n", h.Version)
		fmt.Fprintf(out, "bands:    %d\n", h.NumBands)
		fmt.Fprintf(out, "size:     %dx%d\n", h.Width, h.Height)
		fmt.Fprintf(out, "scale:    %g, %g\n", h.ScaleX, h.ScaleY)
		fmt.Fprintf(out, "origin:   %g, %g\n", h.IPX, h.IPY)
		fmt.Fprintf(out, "skew:     %g, %g\n", h.SkewX, h.SkewY)
		fmt.Fprintf(out, "srid:     %d\n", h.SRID)
		fmt.Fprintf(out, "extent:   %s\n", h.Extent())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
