package font

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/fontseq"
	"github.com/gogpu/fontseq/pack"
)

type definition struct {
	Providers []any `json:"providers"`
}

type spaceProvider struct {
	Type     string         `json:"type"`
	Advances map[string]int `json:"advances"`
}

type bitmapProvider struct {
	Type   string   `json:"type"`
	File   string   `json:"file"`
	Height int      `json:"height"`
	Ascent int      `json:"ascent"`
	Chars  []string `json:"chars"`
}

// MarshalJSON encodes the font definition: a single space provider holding
// every spacing glyph, followed by one bitmap provider per bitmap glyph in
// registration order.
func (f *Font) MarshalJSON() ([]byte, error) {
	def := definition{Providers: []any{}}

	space := spaceProvider{Type: "space", Advances: map[string]int{}}
	var bitmaps []any
	for _, g := range f.order {
		c := string(f.chars[g])
		switch g := g.(type) {
		case fontseq.SpaceGlyph:
			space.Advances[c] = g.Shift
		case fontseq.BitmapGlyph:
			bitmaps = append(bitmaps, bitmapProvider{
				Type:   "bitmap",
				File:   g.Texture.String(),
				Height: g.Size,
				Ascent: g.Ascent,
				Chars:  []string{c},
			})
		}
	}
	if len(space.Advances) > 0 {
		def.Providers = append(def.Providers, space)
	}
	def.Providers = append(def.Providers, bitmaps...)

	return json.Marshal(def)
}

// Save writes the font definition into the target, replacing any previous
// definition with the same key.
func (f *Font) Save(t pack.Target) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("font: encode %s: %w", f.key, err)
	}
	p := pack.FontPath(f.key)
	if err := t.EnsureParentDirs(p); err != nil {
		return fmt.Errorf("font: save %s: %w", f.key, err)
	}
	if err := t.WriteFile(p, data); err != nil {
		return fmt.Errorf("font: save %s: %w", f.key, err)
	}
	return nil
}

// SaveAll saves fonts[i] into the i-th target of the list.
// It stops at the first failure.
func SaveAll(l *pack.List, fonts []*Font) error {
	if len(fonts) != l.Len() {
		return fmt.Errorf("font: %d fonts for %d targets", len(fonts), l.Len())
	}
	for i, f := range fonts {
		if err := f.Save(l.At(i)); err != nil {
			return err
		}
	}
	return nil
}
