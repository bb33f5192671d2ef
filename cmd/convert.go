package cmd

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"go_pgraster/pkg/pgraster"
)

var (
	convertOut    string
	convertWidth  int
	convertLegacy bool

	convertCmd = &cobra.Command{
		Use:   "convert FILE",
		Short: "Decode a raster WKB file to PNG",
		RunE:  runConvert,
		Args:  cobra.ExactArgs(1),
	}
)

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file; default input with .png extension")
	convertCmd.Flags().IntVarP(&convertWidth, "width", "w", 0, "resample output to this width, keeping aspect ratio")
	convertCmd.Flags().BoolVar(&convertLegacy, "legacy-band-skip", false, "reproduce the legacy reader's handling of undecodable bands")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := readRasterFile(args[0])
	if err != nil {
		return err
	}

	var opts []pgraster.Option
	if convertLegacy {
		opts = append(opts, pgraster.WithLegacyBandSkip())
	}
	ras, err := pgraster.Decode(data, opts...)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	img := ras.ToImage()
	if convertWidth > 0 && convertWidth != ras.Width() {
		img = resample(img, convertWidth)
	}

	out := convertOut
	if out == "" {
		out = replaceExt(args[0], ".png")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func resample(src *image.RGBA, width int) *image.RGBA {
	height := int(math.Round(float64(src.Bounds().Dy()) * float64(width) / float64(src.Bounds().Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
