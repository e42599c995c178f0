// Package macro overlays impact-style captions onto images.
//
// A macro has an optional top caption, drawn in a box along the top edge,
// and an optional bottom caption whose text ends at the bottom edge. Both
// are rendered in white, centered, and wrapped at word boundaries, with the
// font sized relative to the image height.
//
// # Quick Start
//
//	img, err := macro.Generate(macro.Caption("top text"), macro.Caption("bottom text"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(f, img)
//
// Generate uses the built-in template and font. To caption your own image,
// create a Builder:
//
//	font, err := text.NewFontSourceFromFile("impact.ttf")
//	b := macro.NewBuilder(font, macro.WithTextColor(color.RGBA{255, 255, 0, 255}))
//	out, err := b.Generate(macro.ToRGBA(img), macro.Captions{Bottom: macro.Caption("nice")})
//
// # Pipeline
//
// Each caption goes through the text package: layout places glyphs inside
// the caption box, glyphs are rasterized once per call through a shared
// text.GlyphCache, RenderMask paints them into a coverage mask, and the mask
// is composited onto the image with source-over blending.
//
// Captions are drawn as given. Package casing rewrites them in alternating
// or random letter case first:
//
//	c := casing.New(casing.AlternatingUpper)
//	img, err := macro.Generate(nil, macro.Caption(c.Apply("i am very smart")))
//
// # Logging
//
// macro is silent by default. Use SetLogger to receive debug diagnostics.
package macro
