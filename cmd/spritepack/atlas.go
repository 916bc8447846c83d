package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samson/spritepack"
	"github.com/samson/spritepack/internal/imaging"
)

// The categories with individually small, static sprites. Equipment, weapons
// and NPCs stay as per-file animation spritesheets and are not packed.
var categories = []string{"objects", "walls", "inventory"}

func doAtlas() error {
	assets, err := assetsDir()
	if err != nil {
		return err
	}
	spritesDir := filepath.Join(assets, "sprites")

	manifest, err := spritepack.ReadManifest(filepath.Join(assets, "sprite_manifest.json"))
	if err != nil {
		return err
	}

	for _, category := range categories {
		entry, err := packCategory(spritesDir, category)
		if err != nil {
			return err
		}
		if entry == nil {
			continue
		}

		err = manifest.Set(category+"_atlas", entry)
		if err != nil {
			return err
		}
	}

	err = manifest.Write()
	if err != nil {
		return err
	}

	fmt.Println("Done! Updated sprite_manifest.json with atlas info.")
	return nil
}

// packCategory packs one category and writes its atlas image(s).
// Returns nil without error if there is nothing to pack.
func packCategory(spritesDir, category string) (spritepack.ManifestEntry, error) {
	sprites, err := spritepack.LoadSprites(filepath.Join(spritesDir, category))
	if err != nil {
		if spritepack.IsNotFound(err) {
			fmt.Printf("Skipping %v: directory not found\n", category)
			return nil, nil
		}
		return nil, err
	}
	if len(sprites) == 0 {
		fmt.Printf("Skipping %v: no sprites found\n", category)
		return nil, nil
	}

	fmt.Printf("Packing %v %v sprite(s)...\n", len(sprites), category)
	atlases := spritepack.Pack(sprites, spritepack.DefaultMaxAtlasSize)
	if len(atlases) == 0 {
		return nil, nil
	}

	files := make([]string, len(atlases))
	for i, atlas := range atlases {
		name := atlasFileName(category, i, len(atlases))
		err = imaging.SavePNG(filepath.Join(spritesDir, name), atlas.Image)
		if err != nil {
			return nil, err
		}

		fmt.Printf("-> %v: %vx%v, %v sprite(s)\n", name, atlas.Width(), atlas.Height(), len(atlas.Sprites))
		files[i] = "sprites/" + name
	}

	return spritepack.NewManifestEntry(atlases, files), nil
}

func atlasFileName(category string, i, total int) string {
	if total == 1 {
		return category + "_atlas.png"
	}
	return fmt.Sprintf("%v_atlas_%v.png", category, i)
}

// assetsDir resolves the fixed client asset layout relative to the location
// of the spritepack executable.
func assetsDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "..", "client", "assets"), nil
}
