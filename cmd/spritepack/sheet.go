package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/samson/spritepack"
	"github.com/samson/spritepack/internal/fs"
	"github.com/samson/spritepack/internal/imaging"
)

type sheetOptions struct {
	inputDir    string
	outputDir   string
	convertDir  string
	batchSize   int
	columns     int
	rows        int
	exts        string
	keyOutBlack bool
}

func doSheet(opts sheetOptions) error {
	if opts.columns*opts.rows < opts.batchSize {
		return spritepack.NewValidationError("columns * rows must be >= batch-size")
	}

	info, err := os.Stat(opts.inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %q", opts.inputDir)
	}

	exts := strings.Split(opts.exts, ",")
	paths, err := fs.ListFiles(opts.inputDir, exts)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found in %q for extensions %q", opts.inputDir, opts.exts)
	}

	convertDir := opts.convertDir
	if convertDir == "" {
		convertDir = filepath.Join(opts.inputDir, "converted_png")
	}

	converted, err := convertAll(paths, convertDir, opts.keyOutBlack)
	if err != nil {
		return err
	}

	return writeSheets(converted, opts)
}

// convertAll converts every input image to a PNG named after its stem.
// Conversions are independent of each other and run concurrently.
// Returns the paths of the converted files, in input order.
func convertAll(paths []string, convertDir string, keyOutBlack bool) ([]string, error) {
	err := fs.EnsureDir(convertDir)
	if err != nil {
		return nil, err
	}

	converted := make([]string, len(paths))
	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			img, err := imaging.Load(path)
			if err != nil {
				return spritepack.Wrap(err, "failed to load %q", path)
			}
			if keyOutBlack {
				img = imaging.KeyOut(img, color.Black)
			}

			dst := filepath.Join(convertDir, fs.Stem(path)+".png")
			err = imaging.SavePNG(dst, img)
			if err != nil {
				return err
			}
			converted[i] = dst
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}
	return converted, nil
}

func writeSheets(paths []string, opts sheetOptions) error {
	images := make([]image.Image, len(paths))
	for i, path := range paths {
		img, err := imaging.Load(path)
		if err != nil {
			return spritepack.Wrap(err, "failed to load %q", path)
		}
		images[i] = img
	}

	sheets, err := spritepack.BuildSheets(images, opts.batchSize, opts.columns, opts.rows, color.Transparent)
	if err != nil {
		return err
	}

	err = fs.EnsureDir(opts.outputDir)
	if err != nil {
		return err
	}

	for i, sheet := range sheets {
		path := filepath.Join(opts.outputDir, fmt.Sprintf("spritesheet_%03d.png", i))
		err = imaging.SavePNG(path, sheet)
		if err != nil {
			return err
		}

		count := opts.batchSize
		if (i+1)*opts.batchSize > len(images) {
			count = len(images) - i*opts.batchSize
		}
		fmt.Printf("wrote %v with %v image(s)\n", path, count)
	}

	return nil
}
