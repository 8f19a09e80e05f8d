// Package fontseq compiles positioned image draws into font glyph sequences.
//
// # Overview
//
// Some renderers can only display text: characters of a registered font laid
// out on a single baseline. fontseq turns "draw this texture at (x, y)"
// commands into an ordered list of glyphs such a renderer can show. Each
// glyph is either a horizontal space or a square bitmap texture raised some
// pixels above the baseline.
//
// # Quick Start
//
//	packs := pack.NewList(pack.NewDir("packs/main"))
//	fonts := font.ForList(packs, pack.MustParseKey("minecraft:gui"))
//
//	b := fontseq.NewBuilder(packs,
//		fontseq.WithRegistries(font.Registries(fonts)...),
//		fontseq.WithOriginResolver(fontseq.Frame{Left: -8, Top: -13, Width: 176, Height: 166}),
//	)
//	b.DrawImage(pack.MustParseKey("gui/background"), 0, 0)
//	b.SetOrigin(fontseq.OriginCenter)
//	b.DrawImage(pack.MustParseKey("gui/icon"), -8, -8)
//
//	font.SaveAll(packs, fonts)
//	msg, _ := fonts[0].Component(b.Build())
//
// # Coordinate System
//
//   - x is measured from the start of the sequence, increasing right
//   - y is measured from the baseline, increasing down
//   - a texture drawn at y has ascent -y
//
// Bitmap glyphs are square. Textures that are not square, or shorter than
// their ascent, are padded with transparent pixels into a generated texture
// that is written to every output pack.
//
// # Concurrency
//
// Builder and font.Font are not safe for concurrent use. The logger can be
// replaced at any time.
package fontseq

// Version is the current version of the library.
const Version = "0.1.0"
