package blend

import (
	"image"
	"image/color"
)

// MaskOver composites a solid tint over dst through a coverage mask whose
// origin is placed at off in dst coordinates.
//
// Each destination channel becomes
//
//	round((tint*c*255 + d*(255*255 - tintA*c)) / (255*255))
//
// where c is the mask coverage, which for an opaque tint reduces to
// round((tint*c + d*(255-c)) / 255). Pixels with zero coverage are left
// untouched, and full coverage of an opaque tint writes the tint exactly.
//
// Mask pixels that fall outside dst are ignored, so off may be negative or
// place the mask partly beyond any edge.
func MaskOver(dst *image.RGBA, mask *image.Alpha, tint color.RGBA, off image.Point) {
	if dst == nil || mask == nil {
		return
	}

	// Intersect in dst space.
	r := mask.Rect.Add(off.Sub(mask.Rect.Min)).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	tr, tg, tb, ta := uint32(tint.R), uint32(tint.G), uint32(tint.B), uint32(tint.A)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X-off.X+mask.Rect.Min.X, y-off.Y+mask.Rect.Min.Y)
		di := dst.PixOffset(r.Min.X, y)

		for x := r.Min.X; x < r.Max.X; x, mi, di = x+1, mi+1, di+4 {
			c := uint32(mask.Pix[mi])
			if c == 0 {
				continue
			}

			inv := 65025 - ta*c
			px := dst.Pix[di : di+4 : di+4]
			px[0] = clamp255(div65025(tr*c*255 + uint32(px[0])*inv))
			px[1] = clamp255(div65025(tg*c*255 + uint32(px[1])*inv))
			px[2] = clamp255(div65025(tb*c*255 + uint32(px[2])*inv))
			px[3] = clamp255(div65025(ta*c*255 + uint32(px[3])*inv))
		}
	}
}
