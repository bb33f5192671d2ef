package cmd

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"go_pgraster/pkg/pgraster"
)

var (
	encodeOut    string
	encodeGray   bool
	encodeSRID   int32
	encodeExtent string

	encodeCmd = &cobra.Command{
		Use:   "encode FILE",
		Short: "Encode a PNG or JPEG image as a raster WKB file",
		RunE:  runEncode,
		Args:  cobra.ExactArgs(1),
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "output file; default input with .wkb extension (.hex/.zst honored)")
	encodeCmd.Flags().BoolVarP(&encodeGray, "gray", "g", false, "write a single grayscale band instead of RGB")
	encodeCmd.Flags().Int32Var(&encodeSRID, "srid", 0, "spatial reference identifier to store")
	encodeCmd.Flags().StringVar(&encodeExtent, "extent", "", "georeferenced extent as x0,y0,x1,y1; default pixel coordinates")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding image %s: %w", args[0], err)
	}

	geo := pgraster.GeoRef{SRID: encodeSRID}
	if encodeExtent != "" {
		if geo.Extent, err = parseExtent(encodeExtent); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if encodeGray {
		err = pgraster.EncodeGray(&buf, img, geo)
	} else {
		err = pgraster.Encode(&buf, img, geo)
	}
	if err != nil {
		return err
	}

	out := encodeOut
	if out == "" {
		out = replaceExt(args[0], ".wkb")
	}
	if err := writeRasterFile(out, buf.Bytes()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, buf.Len())
	return nil
}

func parseExtent(s string) (pgraster.Extent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return pgraster.Extent{}, fmt.Errorf("extent must be x0,y0,x1,y1, got %q", s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return pgraster.Extent{}, fmt.Errorf("extent component %q: %w", p, err)
		}
		vals[i] = v
	}
	return pgraster.Extent{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}, nil
}
