package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"

	// decoders for the input formats we accept
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// Load reads and decodes the image at the given path.
// The file is closed before Load returns.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// SavePNG writes the given image to path in PNG format.
func SavePNG(path string, i image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return pngEncoder.Encode(f, i)
}

// ToRGBA creates an RGBA copy of the given image.
// The copy is anchored at the origin.
func ToRGBA(i image.Image) *image.RGBA {
	b := i.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), i, b.Min, draw.Src)
	return dst
}

// KeyOut creates an RGBA copy of the given image where every pixel whose
// red, green and blue components exactly match key becomes fully transparent.
// The alpha value of the key color is ignored for the comparison,
// all other pixels are copied unchanged.
func KeyOut(i image.Image, key color.Color) *image.RGBA {
	dst := ToRGBA(i)
	kr, kg, kb, _ := key.RGBA()

	rect := dst.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			if r == kr && g == kg && b == kb {
				dst.Set(x, y, color.RGBA{0, 0, 0, 0})
			}
		}
	}

	return dst
}
