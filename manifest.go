package spritepack

import (
	"encoding/json"
	"io/ioutil"
	"os"
)

// PlacedRect is a Rect tagged with the index of the atlas that contains it.
// Used when a category spans multiple atlases.
type PlacedRect struct {
	Rect
	Atlas int `json:"atlas"`
}

// ManifestEntry describes the packed atlases of one category.
// It is either a SingleAtlasEntry or a MultiAtlasEntry.
type ManifestEntry interface {
	manifestEntry()
}

// SingleAtlasEntry is the manifest entry for a category
// whose sprites all fit into one atlas.
type SingleAtlasEntry struct {
	File    string          `json:"file"`
	Sprites map[string]Rect `json:"sprites"`
}

func (e *SingleAtlasEntry) manifestEntry() {}

// MultiAtlasEntry is the manifest entry for a category that overflowed into
// multiple atlases. Each sprite placement carries the index of its atlas.
type MultiAtlasEntry struct {
	Files   []string              `json:"files"`
	Sprites map[string]PlacedRect `json:"sprites"`
}

func (e *MultiAtlasEntry) manifestEntry() {}

// NewManifestEntry builds the manifest entry for the given atlases.
// files holds the path of each atlas as it should appear in the manifest,
// in the same order as the atlases.
func NewManifestEntry(atlases []*Atlas, files []string) ManifestEntry {
	if len(atlases) == 1 {
		return &SingleAtlasEntry{
			File:    files[0],
			Sprites: atlases[0].Sprites,
		}
	}

	sprites := make(map[string]PlacedRect)
	for i, atlas := range atlases {
		for key, r := range atlas.Sprites {
			sprites[key] = PlacedRect{Rect: r, Atlas: i}
		}
	}

	return &MultiAtlasEntry{
		Files:   files,
		Sprites: sprites,
	}
}

// Manifest is the persisted JSON mapping that locates packed assets.
// It is read as a whole, modified and written back; top-level keys that do
// not belong to a packed category pass through untouched.
type Manifest struct {
	path    string
	entries map[string]json.RawMessage
}

// ReadManifest reads the manifest from the given path.
// A missing or malformed manifest is an error.
func ReadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Wrap(err, "failed to read manifest")
	}
	defer f.Close()

	var entries map[string]json.RawMessage
	dec := json.NewDecoder(f)
	err = dec.Decode(&entries)
	if err != nil {
		return nil, Wrap(err, "malformed manifest %q", path)
	}

	return &Manifest{path, entries}, nil
}

// Set replaces or inserts the entry under the given key.
func (m *Manifest) Set(key string, entry ManifestEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	m.entries[key] = data
	return nil
}

// Write writes the manifest back to the path it was read from,
// pretty-printed and with a trailing newline.
func (m *Manifest) Write() error {
	data, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return ioutil.WriteFile(m.path, data, 0644)
}
