// Package resources provides the illustrations and strings shown by the
// lemonade screen. Callers refer to them only by identifier.
package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImageID identifies an illustration.
type ImageID string

const (
	ImageLemonTree    ImageID = "lemon_tree"
	ImageLemonSqueeze ImageID = "lemon_squeeze"
	ImageLemonDrink   ImageID = "lemon_drink"
	ImageLemonRestart ImageID = "lemon_restart"
)

// TextID identifies a string in the string table.
type TextID string

const (
	TextAppName       TextID = "app_name"
	TextTapLemonTree  TextID = "tap_lemon_tree"
	TextSqueezeLemon  TextID = "squeeze_lemon"
	TextDrinkLemonade TextID = "drink_lemonade"
	TextRestartGlass  TextID = "restart_glass"

	TextDescLemonTree  TextID = "content_desc_lemon_tree"
	TextDescLemon      TextID = "content_desc_lemon"
	TextDescLemonade   TextID = "content_desc_lemonade"
	TextDescEmptyGlass TextID = "content_desc_empty_glass"
)

// Images lists every illustration the bundle must provide.
var Images = []ImageID{ImageLemonTree, ImageLemonSqueeze, ImageLemonDrink, ImageLemonRestart}

// Texts lists every string the bundle must provide.
var Texts = []TextID{
	TextAppName,
	TextTapLemonTree, TextSqueezeLemon, TextDrinkLemonade, TextRestartGlass,
	TextDescLemonTree, TextDescLemon, TextDescLemonade, TextDescEmptyGlass,
}

//go:embed art/*.txt strings.yaml
var embedded embed.FS

// Bundle holds resolved resources.
type Bundle struct {
	images map[ImageID]string
	texts  map[TextID]string
}

// Load reads the resources compiled into the binary.
func Load() (*Bundle, error) {
	return LoadFS(embedded)
}

// LoadFS reads art/<id>.txt files and strings.yaml from fsys and checks that
// every known identifier resolves.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{
		images: make(map[ImageID]string, len(Images)),
		texts:  make(map[TextID]string, len(Texts)),
	}

	for _, id := range Images {
		data, err := fs.ReadFile(fsys, path.Join("art", string(id)+".txt"))
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", id, err)
		}
		b.images[id] = strings.TrimRight(string(data), "\n")
	}

	data, err := fs.ReadFile(fsys, "strings.yaml")
	if err != nil {
		return nil, fmt.Errorf("read string table: %w", err)
	}
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse string table: %w", err)
	}
	for _, id := range Texts {
		s, ok := table[string(id)]
		if !ok || strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("string table: missing %q", id)
		}
		b.texts[id] = s
	}

	return b, nil
}

// MustLoad is Load for package-level initialisation and tests.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Image returns the illustration for id, or "" when unknown.
func (b *Bundle) Image(id ImageID) string {
	return b.images[id]
}

// Text returns the string for id. Unknown ids come back as the id itself so a
// missing entry is visible on screen rather than blank.
func (b *Bundle) Text(id TextID) string {
	if s, ok := b.texts[id]; ok {
		return s
	}
	return string(id)
}
