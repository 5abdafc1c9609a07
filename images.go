package gart

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales src to fit inside a width x height canvas, keeping its aspect
// ratio, and paints it centered on dst. dst is cleared to transparent first.
func Fit(dst draw.Image, src image.Image) {
	db := dst.Bounds()
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	scale := float64(db.Dx()) / float64(sb.Dx())
	if s := float64(db.Dy()) / float64(sb.Dy()); s < scale {
		scale = s
	}
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	scaled := image.Rect(0, 0, w, h)

	draw.Draw(dst, db, image.Transparent, image.Point{}, draw.Src)
	origin := VpCenter(scaled, db.Dx(), db.Dy()).Add(db.Min)
	draw.ApproxBiLinear.Scale(dst, scaled.Add(origin), src, sb, draw.Over, nil)
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If the image is the same size, then it is also (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(bounds image.Rectangle, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if bounds.Dx() < canWidth {
		xmargin = (canWidth - bounds.Dx()) / 2
	}
	if bounds.Dy() < canHeight {
		ymargin = (canHeight - bounds.Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
