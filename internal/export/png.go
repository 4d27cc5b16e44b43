package export

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"fernview/internal/fern"
)

// PNGOptions configures raster output.
type PNGOptions struct {
	Size   int // width and height in pixels
	Color  colorful.Color
	Alpha  float64
	Radius float64 // point radius in fern units
}

// DefaultPNGOptions matches the browser canvas: 800x800, rgb(0 127 0 / 20%).
func DefaultPNGOptions() PNGOptions {
	col, _ := colorful.Hex("#007f00")
	return PNGOptions{
		Size:   800,
		Color:  col,
		Alpha:  0.2,
		Radius: 0.002,
	}
}

// Draw paints c onto a fresh context with the fern bounds mapped to the
// whole canvas, y pointing up. The caller closes the returned context.
func Draw(c *Cloud, opts PNGOptions) (*gg.Context, error) {
	if opts.Size <= 0 {
		return nil, errors.Errorf("image size must be positive, got %d", opts.Size)
	}
	b := fern.Bounds()
	dc := gg.NewContext(opts.Size, opts.Size)
	dc.ClearWithColor(gg.White)

	size := float64(opts.Size)
	dc.Scale(size/b.Width(), -size/b.Height())
	dc.Translate(-b.MinX, -b.MaxY)
	dc.SetRGBA(opts.Color.R, opts.Color.G, opts.Color.B, opts.Alpha)

	for i := range c.X {
		dc.DrawCircle(c.X[i], c.Y[i], opts.Radius)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, errors.Wrapf(err, "fill point %d", i)
		}
	}
	slog.Debug("fern drawn", "points", c.Len(), "size", opts.Size)
	return dc, nil
}

// WritePNG draws c and encodes it to w.
func WritePNG(w io.Writer, c *Cloud, opts PNGOptions) error {
	dc, err := Draw(c, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrap(dc.EncodePNG(w), "encode png")
}

// SavePNG draws c into the file at path.
func SavePNG(path string, c *Cloud, opts PNGOptions) error {
	dc, err := Draw(c, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrapf(dc.SavePNG(path), "save %s", path)
}
