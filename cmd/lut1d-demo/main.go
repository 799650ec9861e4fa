// lut1d - a one-dimensional lookup-table operator for color pipelines
// Copyright (C) 2026  lut1d contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command lut1d-demo applies a gamma-shaped 1D LUT to a PNG image, as
// a worked example of building, finalizing and evaluating a Lut1D
// outside of the package's own tests. The core lut1d package never
// touches image.Image; this command is the glue that turns a decoded
// picture into the flat pixel buffer ComposeVec-style Ops expect.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-color/lut1d"
)

func main() {
	gamma := flag.Float64("gamma", 2.2, "exponent of the transfer function to apply")
	length := flag.Int("length", 4096, "number of samples in the LUT's standard domain")
	scale := flag.Float64("scale", 1.0, "resize factor applied to the image before the LUT (0 < scale <= 1)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.png output.png\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := buildGammaLut(*gamma, *length)
	if err != nil {
		log.Fatalf("building LUT: %v", err)
	}
	if err := l.Finalize(); err != nil {
		log.Fatalf("finalizing LUT: %v", err)
	}
	fmt.Fprintf(os.Stderr, "LUT cache ID: %s\n", l.GetCacheID())

	src, err := readPNG(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading %s: %v", flag.Arg(0), err)
	}

	if *scale > 0 && *scale < 1 {
		src = resize(src, *scale)
	}

	dst := applyLut(l, src)

	if err := writePNG(flag.Arg(1), dst); err != nil {
		log.Fatalf("writing %s: %v", flag.Arg(1), err)
	}
}

// buildGammaLut constructs a forward, standard-domain LUT whose
// samples approximate y = x^gamma.
func buildGammaLut(gamma float64, length int) (*lut1d.Lut1D, error) {
	l, err := lut1d.New(length)
	if err != nil {
		return nil, err
	}
	a := l.MutableArray()
	n := a.Length()
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		y := float32(math.Pow(x, gamma))
		for c := 0; c < 3; c++ {
			a.Set(i, c, y)
		}
	}
	return l, nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func resize(src image.Image, factor float64) image.Image {
	sb := src.Bounds()
	w := int(float64(sb.Dx()) * factor)
	h := int(float64(sb.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}

// applyLut evaluates l's per-channel transfer function over every
// pixel of src, via the same Op contract ComposeVec uses internally.
func applyLut(l *lut1d.Lut1D, src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(b)

	pixels := make([]float32, b.Dx()*b.Dy()*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			pixels[i+0] = float32(r) / 0xffff
			pixels[i+1] = float32(g) / 0xffff
			pixels[i+2] = float32(bl) / 0xffff
			i += 3
		}
	}

	l.AsOp().Apply(pixels)

	i = 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			dst.Set(x, y, color.NRGBA64{
				R: clampChannel(pixels[i+0]),
				G: clampChannel(pixels[i+1]),
				B: clampChannel(pixels[i+2]),
				A: uint16(a),
			})
			i += 3
		}
	}
	return dst
}

func clampChannel(v float32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 0xffff
	}
	return uint16(v * 0xffff)
}
