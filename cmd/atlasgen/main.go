// Command atlasgen renders the block texture atlas embedded by
// internal/assets.
//
// The atlas is 2x2 tiles. Top-left holds the block bottom (dirt),
// bottom-left the block top (grass), bottom-right the block sides (dirt
// with a grass strip). Top-right is unused and left transparent, which
// keeps the PNG in 8-bit RGBA.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/ojrac/opensimplex-go"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	texels   = 16 // texels per tile edge before scaling
	tileSize = 64
	atlasPx  = 2 * tileSize
)

var (
	dirt  = color.NRGBA{R: 134, G: 96, B: 67, A: 255}
	grass = color.NRGBA{R: 95, G: 159, B: 53, A: 255}
)

func main() {
	out := flag.String("o", "atlas.png", "output file")
	seed := flag.Int64("seed", 1, "speckle noise seed")
	flag.Parse()

	atlas := render(*seed)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("atlasgen: %v", err)
	}
	if err := png.Encode(f, atlas); err != nil {
		f.Close()
		log.Fatalf("atlasgen: encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("atlasgen: %v", err)
	}
	log.Printf("atlasgen: wrote %s (%dx%d)", *out, atlasPx, atlasPx)
}

func render(seed int64) *image.NRGBA {
	noise := opensimplex.New(seed)
	atlas := image.NewNRGBA(image.Rect(0, 0, atlasPx, atlasPx))

	tiles := []struct {
		at   image.Point
		fill func(x, y int) color.NRGBA
	}{
		{image.Pt(0, 0), func(x, y int) color.NRGBA { return dirt }},
		{image.Pt(0, tileSize), func(x, y int) color.NRGBA { return grass }},
		{image.Pt(tileSize, tileSize), func(x, y int) color.NRGBA {
			if y < texels/4 {
				return grass
			}
			return dirt
		}},
	}
	for i, t := range tiles {
		small := image.NewNRGBA(image.Rect(0, 0, texels, texels))
		for y := range texels {
			for x := range texels {
				v := noise.Eval3(float64(x)*0.6, float64(y)*0.6, float64(i)*10)
				small.SetNRGBA(x, y, shade(t.fill(x, y), v))
			}
		}
		dst := image.Rectangle{Min: t.at, Max: t.at.Add(image.Pt(tileSize, tileSize))}
		draw.NearestNeighbor.Scale(atlas, dst, small, small.Bounds(), draw.Src, nil)
	}

	label(atlas, image.Pt(tileSize, 0), "unused")
	return atlas
}

// shade darkens or lightens c by up to 20 levels following v in [-1, 1].
func shade(c color.NRGBA, v float64) color.NRGBA {
	d := int(v * 20)
	return color.NRGBA{R: clamp8(int(c.R) + d), G: clamp8(int(c.G) + d), B: clamp8(int(c.B) + d), A: c.A}
}

func clamp8(v int) uint8 {
	return uint8(min(255, max(0, v)))
}

// label writes text centered in the tile at origin.
func label(dst draw.Image, origin image.Point, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{R: 128, G: 128, B: 128, A: 160}),
		Face: face,
	}
	width := d.MeasureString(text).Round()
	x := origin.X + (tileSize-width)/2
	y := origin.Y + (tileSize+face.Ascent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
