package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/samson/spritepack"
)

func main() {
	app := kingpin.New("spritepack", "Sprite sheet and texture atlas tool")
	app.HelpFlag.Short('h')
	debug := app.Flag("debug", "Enable debug logging").Short('d').Bool()

	sheet := app.Command("sheet", "Convert images to PNG and batch them into sprite sheets")
	var (
		inputDir    = sheet.Arg("input-dir", "Directory containing input images").Default(".").String()
		outputDir   = sheet.Flag("output-dir", "Directory to write sprite sheets").Default("atlas").String()
		batchSize   = sheet.Flag("batch-size", "Number of images per sheet").Default("16").Int()
		columns     = sheet.Flag("columns", "Number of columns in the sheet").Default("16").Int()
		rows        = sheet.Flag("rows", "Number of rows in the sheet").Default("1").Int()
		exts        = sheet.Flag("ext", "Comma-separated extensions to include").Default("bmp").String()
		convertDir  = sheet.Flag("convert-dir", "Directory to write converted PNGs (default: <input-dir>/converted_png)").String()
		keyOutBlack = sheet.Flag("key-out-black", "Replace pure black (#000000) with transparency during conversion").Bool()
	)

	app.Command("atlas", "Pack per-sprite PNGs into texture atlases and update the sprite manifest")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		spritepack.SetLogLevel("debug")
	} else {
		spritepack.SetLogLevel("warning")
	}

	var err error
	switch command {
	case "sheet":
		opts := sheetOptions{
			inputDir:    *inputDir,
			outputDir:   *outputDir,
			convertDir:  *convertDir,
			batchSize:   *batchSize,
			columns:     *columns,
			rows:        *rows,
			exts:        *exts,
			keyOutBlack: *keyOutBlack,
		}
		err = doSheet(opts)
	case "atlas":
		err = doAtlas()
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
