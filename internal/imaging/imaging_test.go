package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestKeyOut(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 1, 255})

	keyed := KeyOut(img, color.Black)

	if _, _, _, a := keyed.At(0, 0).RGBA(); a != 0 {
		t.Errorf("key color should become transparent, alpha %v", a)
	}
	if got := keyed.RGBAAt(1, 0); got != (color.RGBA{0, 0, 1, 255}) {
		t.Errorf("near-key color should be untouched, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{12, 34, 56, 255})

	path := filepath.Join(t.TempDir(), "tiny.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	b := loaded.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected size %v", b)
	}
	got := ToRGBA(loaded).RGBAAt(1, 1)
	if got != (color.RGBA{12, 34, 56, 255}) {
		t.Errorf("unexpected pixel %v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestToRGBAAnchorsAtOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 8))
	src.Set(5, 5, color.RGBA{255, 0, 0, 255})

	dst := ToRGBA(src)

	if dst.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("unexpected pixel %v", got)
	}
}
