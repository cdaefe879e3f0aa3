package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Raster is an offscreen Device on the gg software rasterizer. gg fills a
// path with a single brush, so each strip is drawn in the mean of its corner
// colors instead of a per-pixel blend.
type Raster struct {
	dc  *gg.Context
	err error
}

// NewRaster allocates a width x height offscreen target.
func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

func (r *Raster) Clear() {
	r.dc.ClearWithColor(gg.Black)
}

func (r *Raster) DrawStrip(v [4]Vertex) {
	var cr, cg, cb, ca float64
	for _, c := range v {
		cr += float64(c.R)
		cg += float64(c.G)
		cb += float64(c.B)
		ca += float64(c.A)
	}
	cr, cg, cb, ca = cr/4, cg/4, cb/4, ca/4
	if ca <= 0 {
		return
	}
	r.dc.SetRGBA(cr/ca, cg/ca, cb/ca, ca)

	// strip order 0,1,2,3 walks the outline as 0,1,3,2
	r.dc.MoveTo(float64(v[0].X), float64(v[0].Y))
	r.dc.LineTo(float64(v[1].X), float64(v[1].Y))
	r.dc.LineTo(float64(v[3].X), float64(v[3].Y))
	r.dc.LineTo(float64(v[2].X), float64(v[2].Y))
	r.dc.ClosePath()
	if err := r.dc.Fill(); err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first fill error, if any.
func (r *Raster) Err() error { return r.err }

// Image returns the current frame.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG writes the current frame to path.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// EncodePNG writes the current frame to w.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Close releases the context.
func (r *Raster) Close() error { return r.dc.Close() }
