package graphics

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
)

// Bitmap is tightly packed 8-bit RGBA, rows top to bottom.
type Bitmap struct {
	Width, Height int
	Pix           []byte
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// PNG color types from the IHDR chunk
const (
	pngGray      = 0
	pngRGB       = 2
	pngPalette   = 3
	pngGrayAlpha = 4
	pngRGBA      = 6
)

// DecodeAtlas decodes a PNG texture atlas. Only 8-bit RGBA is accepted so the
// pixels can be uploaded without conversion.
func DecodeAtlas(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrMissingAtlas
	}
	// signature, IHDR length and tag, width, height, depth, color type
	if len(data) < 26 || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, fmt.Errorf("failed to decode atlas: not a PNG")
	}
	depth, colorType := data[24], data[25]
	if colorType != pngRGBA || depth != 8 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedColorType, colorTypeName(colorType, depth))
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas: %w", err)
	}

	b := img.Bounds()
	bm := &Bitmap{Width: b.Dx(), Height: b.Dy(), Pix: make([]byte, 4*b.Dx()*b.Dy())}
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < bm.Height; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*bm.Width]
			copy(bm.Pix[4*y*bm.Width:], row)
		}
	} else {
		for y := 0; y < bm.Height; y++ {
			for x := 0; x < bm.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := 4 * (y*bm.Width + x)
				bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2], bm.Pix[i+3] = c.R, c.G, c.B, c.A
			}
		}
	}
	log.Printf("graphics: decoded %dx%d atlas", bm.Width, bm.Height)
	return bm, nil
}

func colorTypeName(colorType, depth byte) string {
	var name string
	switch colorType {
	case pngGray:
		name = "K"
	case pngRGB:
		name = "RGB"
	case pngPalette:
		name = "indexed"
	case pngGrayAlpha:
		name = "KA"
	case pngRGBA:
		name = "RGBA"
	default:
		return fmt.Sprintf("color type %d", colorType)
	}
	return fmt.Sprintf("%s%d", name, depth)
}

// Texture is a 2D texture with a full mipmap chain.
type Texture struct {
	api API
	ID  uint32
}

// NewTexture uploads bm with nearest filtering and builds its mipmaps.
func NewTexture(api API, bm *Bitmap) (*Texture, error) {
	id, err := api.GenTexture()
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	t := &Texture{api: api, ID: id}
	if err := t.upload(bm); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

func (t *Texture) upload(bm *Bitmap) error {
	if err := t.api.BindTexture(t.ID); err != nil {
		return err
	}
	params := [...][2]Enum{
		{TextureWrapS, ClampToEdge},
		{TextureWrapT, ClampToEdge},
		{TextureMinFilter, NearestMipmapLinear},
		{TextureMagFilter, Nearest},
	}
	for _, p := range params {
		if err := t.api.TexParameter(p[0], p[1]); err != nil {
			return err
		}
	}
	if err := t.api.TexImage2D(int32(bm.Width), int32(bm.Height), bm.Pix); err != nil {
		return fmt.Errorf("failed to upload texture: %w", err)
	}
	if err := t.api.GenerateMipmap(); err != nil {
		return err
	}
	return t.api.BindTexture(0)
}

// Bind makes t the texture of unit n.
func (t *Texture) Bind(n int32) error {
	if err := t.api.ActiveTexture(Texture0 + Enum(n)); err != nil {
		return err
	}
	return t.api.BindTexture(t.ID)
}

func (t *Texture) Release() {
	if t.ID != 0 {
		t.api.DeleteTexture(t.ID)
		t.ID = 0
	}
}
