package spritepack

import (
	"image"
	"image/color"
	"testing"
)

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuildSheetColumnMajor(t *testing.T) {
	colors := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{0, 255, 255, 255},
	}
	images := make([]image.Image, len(colors))
	for i, c := range colors {
		images[i] = uniform(4, 6, c)
	}

	sheet, err := BuildSheet(images, 2, 3, color.Transparent)
	if err != nil {
		t.Fatal(err)
	}

	if sheet.Bounds().Dx() != 8 || sheet.Bounds().Dy() != 18 {
		t.Errorf("unexpected sheet size %v", sheet.Bounds())
	}

	// first column fills top to bottom, then the second column
	expected := []struct{ x, y, idx int }{
		{0, 0, 0},
		{0, 6, 1},
		{0, 12, 2},
		{4, 0, 3},
		{4, 6, 4},
	}
	for _, e := range expected {
		got := sheet.RGBAAt(e.x, e.y)
		if got != colors[e.idx] {
			t.Errorf("tile %v at (%v,%v): got %v, want %v", e.idx, e.x, e.y, got, colors[e.idx])
		}
	}

	// the sixth cell stays at the fill color
	if got := sheet.RGBAAt(4, 12); got != (color.RGBA{}) {
		t.Errorf("empty cell should be transparent, got %v", got)
	}
}

func TestBuildSheetFillColor(t *testing.T) {
	fill := color.RGBA{10, 20, 30, 255}
	sheet, err := BuildSheet([]image.Image{uniform(2, 2, color.RGBA{255, 255, 255, 255})}, 2, 2, fill)
	if err != nil {
		t.Fatal(err)
	}

	if got := sheet.RGBAAt(3, 3); got != fill {
		t.Errorf("expected fill color %v, got %v", fill, got)
	}
}

func TestBuildSheetSizeMismatch(t *testing.T) {
	images := []image.Image{
		uniform(4, 4, color.RGBA{255, 0, 0, 255}),
		uniform(4, 5, color.RGBA{0, 255, 0, 255}),
	}

	_, err := BuildSheet(images, 2, 2, color.Transparent)
	if err == nil {
		t.Fatal("expected an error for mismatched tile sizes")
	}
	if !IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestBuildSheetEmpty(t *testing.T) {
	_, err := BuildSheet(nil, 2, 2, color.Transparent)
	if err == nil {
		t.Fatal("expected an error for an empty batch")
	}
}

func TestBuildSheetsGridTooSmall(t *testing.T) {
	images := make([]image.Image, 5)
	for i := range images {
		images[i] = uniform(2, 2, color.RGBA{255, 0, 0, 255})
	}

	_, err := BuildSheets(images, 5, 2, 2, color.Transparent)
	if err == nil {
		t.Fatal("expected an error for a grid smaller than the batch size")
	}
	if !IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestBuildSheetsBatches(t *testing.T) {
	images := make([]image.Image, 5)
	for i := range images {
		images[i] = uniform(2, 2, color.RGBA{255, 0, 0, 255})
	}

	sheets, err := BuildSheets(images, 2, 2, 1, color.Transparent)
	if err != nil {
		t.Fatal(err)
	}

	// batches of 2, 2, 1
	if len(sheets) != 3 {
		t.Errorf("expected 3 sheets, got %v", len(sheets))
	}
	for _, sheet := range sheets {
		if sheet.Bounds().Dx() != 4 || sheet.Bounds().Dy() != 2 {
			t.Errorf("unexpected sheet size %v", sheet.Bounds())
		}
	}
}

func TestBuildSheetsNone(t *testing.T) {
	sheets, err := BuildSheets(nil, 4, 2, 2, color.Transparent)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheets) != 0 {
		t.Errorf("expected no sheets, got %v", len(sheets))
	}
}
