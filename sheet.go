package spritepack

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/samson/spritepack/internal/logging"
)

// BuildSheet lays the given images onto a fixed grid of columns x rows tiles
// and returns the composite canvas. The tile size is taken from the first
// image and every image must have that exact size.
//
// Placement is column-major: image 0 fills the first column top to bottom,
// then the second column and so on. The canvas is pre-filled with fill.
func BuildSheet(images []image.Image, columns, rows int, fill color.Color) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, NewValidationError("cannot build a sheet from zero images")
	}
	if len(images) > columns*rows {
		return nil, NewValidationError("%v images do not fit a %vx%v grid", len(images), columns, rows)
	}

	first := images[0].Bounds()
	tileW, tileH := first.Dx(), first.Dy()

	sheet := image.NewRGBA(image.Rect(0, 0, columns*tileW, rows*tileH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	for idx, img := range images {
		b := img.Bounds()
		if b.Dx() != tileW || b.Dy() != tileH {
			return nil, NewValidationError("unexpected tile size %vx%v for image %v, want %vx%v", b.Dx(), b.Dy(), idx, tileW, tileH)
		}

		row := idx % rows
		col := idx / rows
		dst := image.Rect(col*tileW, row*tileH, (col+1)*tileW, (row+1)*tileH)
		draw.Draw(sheet, dst, img, b.Min, draw.Src)
	}

	return sheet, nil
}

// BuildSheets partitions the given images into consecutive batches of
// batchSize and builds one sheet per non-empty batch.
// Fails before building anything if the grid cannot hold a full batch.
func BuildSheets(images []image.Image, batchSize, columns, rows int, fill color.Color) ([]*image.RGBA, error) {
	if batchSize < 1 {
		return nil, NewValidationError("batch size must be at least 1, got %v", batchSize)
	}
	if columns*rows < batchSize {
		return nil, NewValidationError("columns * rows must be >= batch size (%v * %v < %v)", columns, rows, batchSize)
	}

	var sheets []*image.RGBA
	for start := 0; start < len(images); start += batchSize {
		end := start + batchSize
		if end > len(images) {
			end = len(images)
		}

		sheet, err := BuildSheet(images[start:end], columns, rows, fill)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
		logging.Debug("sheet %v: %v image(s)", len(sheets)-1, end-start)
	}

	return sheets, nil
}
