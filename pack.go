package spritepack

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/samson/spritepack/internal/logging"
)

// DefaultMaxAtlasSize is the maximum width and height of a generated atlas.
const DefaultMaxAtlasSize = 4096

// Rect is the placement of a sprite within an atlas.
// Width and height always equal the sprite's own dimensions.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Atlas is a generated canvas with the placements of the sprites it contains.
// The canvas is the tight bounding box of the placed content,
// not the maximum atlas size.
type Atlas struct {
	Image   *image.RGBA
	Sprites map[string]Rect
}

// Width is the width of the atlas canvas in pixels.
func (a *Atlas) Width() int {
	return a.Image.Bounds().Dx()
}

// Height is the height of the atlas canvas in pixels.
func (a *Atlas) Height() int {
	return a.Image.Bounds().Dy()
}

// shelf is the cursor state for one atlas under construction.
// Sprites are placed left to right in horizontal rows;
// a new row starts below the tallest sprite of the current one.
type shelf struct {
	curX      int
	curY      int
	rowHeight int
	width     int // bounding box of everything placed so far
	height    int
}

// place attempts to place a sprite of the given size.
// Returns the placement and true on success.
// On failure the sprite must be deferred to the next atlas.
//
// A sprite that fits the current row horizontally but would overflow maxSize
// vertically does NOT start a new row, it is deferred while the row stays
// open for later, shorter sprites. Only horizontal overflow starts a new
// row. This matches the layouts existing consumers were built against, so
// keep it even though it can waste the rest of a row.
func (s *shelf) place(w, h, maxSize int) (Rect, bool) {
	if s.curX+w <= maxSize {
		if s.curY+h > maxSize {
			return Rect{}, false
		}
		return s.put(w, h), true
	}

	// start a new row
	s.curX = 0
	s.curY += s.rowHeight
	s.rowHeight = 0

	if s.curY+h > maxSize {
		// atlas is full for this sprite
		return Rect{}, false
	}
	return s.put(w, h), true
}

func (s *shelf) put(w, h int) Rect {
	r := Rect{X: s.curX, Y: s.curY, W: w, H: h}

	if h > s.rowHeight {
		s.rowHeight = h
	}
	s.curX += w
	if s.curX > s.width {
		s.width = s.curX
	}
	if s.curY+s.rowHeight > s.height {
		s.height = s.curY + s.rowHeight
	}

	return r
}

// Pack packs the given sprites into as many atlases as needed, each at most
// maxSize x maxSize pixels. Sprites are placed greedily in descending order
// of height, a sprite that does not fit the current atlas is deferred to
// the next one.
//
// A sprite larger than maxSize in either dimension can never be placed;
// it is dropped with a warning and does not appear in any atlas.
func Pack(sprites map[string]*Sprite, maxSize int) []*Atlas {
	remaining := sortedKeys(sprites)

	var atlases []*Atlas
	for len(remaining) > 0 {
		var cursor shelf
		rects := make(map[string]Rect)
		placed := 0
		var deferred []string

		for _, key := range remaining {
			sprite := sprites[key]
			w, h := sprite.Width(), sprite.Height()

			if w > maxSize || h > maxSize {
				logging.Warning("sprite %v is %vx%v, exceeds max atlas size %v, skipping", key, w, h, maxSize)
				placed++
				continue
			}

			r, ok := cursor.place(w, h, maxSize)
			if !ok {
				deferred = append(deferred, key)
				continue
			}
			rects[key] = r
			placed++
		}

		if placed == 0 {
			logging.Error("could not place any sprites, %v remaining", len(remaining))
			break
		}

		if len(rects) != 0 {
			atlases = append(atlases, newAtlas(sprites, rects, cursor.width, cursor.height))
			logging.Debug("atlas %v: %vx%v, %v sprite(s)", len(atlases)-1, cursor.width, cursor.height, len(rects))
		}

		remaining = deferred
	}

	return atlases
}

// newAtlas blits the placed sprites onto a transparent canvas sized to the
// bounding box of the placements.
func newAtlas(sprites map[string]*Sprite, rects map[string]Rect, w, h int) *Atlas {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	for key, r := range rects {
		src := sprites[key].Image
		dst := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
		draw.Draw(canvas, dst, src, src.Bounds().Min, draw.Src)
	}

	return &Atlas{Image: canvas, Sprites: rects}
}
