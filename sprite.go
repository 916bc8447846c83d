package spritepack

import (
	"image"
	"os"
	"sort"

	"github.com/samson/spritepack/internal/fs"
	"github.com/samson/spritepack/internal/imaging"
)

// Sprite is a single named source image.
// The key is derived from the file name and is unique within its category.
type Sprite struct {
	Key   string
	Image *image.RGBA
}

// Width is the width of the sprite in pixels.
func (s *Sprite) Width() int {
	return s.Image.Bounds().Dx()
}

// Height is the height of the sprite in pixels.
func (s *Sprite) Height() int {
	return s.Image.Bounds().Dy()
}

// LoadSprites reads all PNG files from the given directory into a map of
// sprites keyed by file name stem.
// Returns a "not found" error if the directory does not exist.
func LoadSprites(dir string) (map[string]*Sprite, error) {
	paths, err := fs.ListFiles(dir, []string{"png"})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFound("sprite directory %q", dir)
		}
		return nil, err
	}

	sprites := make(map[string]*Sprite)
	for _, path := range paths {
		img, err := imaging.Load(path)
		if err != nil {
			return nil, Wrap(err, "failed to load sprite %q", path)
		}
		key := fs.Stem(path)
		sprites[key] = &Sprite{Key: key, Image: imaging.ToRGBA(img)}
	}

	return sprites, nil
}

// sortedKeys lists the sprite keys in deterministic packing order:
// by height descending, then width descending, remaining ties in key order.
func sortedKeys(sprites map[string]*Sprite) []string {
	keys := make([]string, 0, len(sprites))
	for k := range sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := sprites[keys[i]], sprites[keys[j]]
		if a.Height() != b.Height() {
			return a.Height() > b.Height()
		}
		return a.Width() > b.Width()
	})

	return keys
}
