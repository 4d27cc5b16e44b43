package export

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fernview/internal/fern"
)

func seeded(w int) fern.Source { return fern.NewRandSource(uint64(100 + w)) }

func TestCollect(t *testing.T) {
	c, err := Collect(context.Background(), 1003, 4, 100, seeded)
	require.NoError(t, err)
	assert.Equal(t, 1003, c.Len())
	assert.Len(t, c.Y, 1003)

	again, err := Collect(context.Background(), 1003, 4, 100, seeded)
	require.NoError(t, err)
	assert.Equal(t, c, again)

	b := fern.Bounds()
	for i := range c.X {
		assert.True(t, b.Contains(fern.Point{X: c.X[i], Y: c.Y[i]}, 1e-3))
	}
}

func TestCollectSingleWorkerMatchesGenerate(t *testing.T) {
	c, err := Collect(context.Background(), 250, 1, 64, seeded)
	require.NoError(t, err)

	xs := make([]float64, 250)
	ys := make([]float64, 250)
	_, err = fern.Generate(fern.Point{}, xs, ys, 250, seeded(0))
	require.NoError(t, err)
	assert.Equal(t, xs, c.X)
	assert.Equal(t, ys, c.Y)
}

func TestCollectPropagatesSourceError(t *testing.T) {
	_, err := Collect(context.Background(), 100, 2, 10, func(int) fern.Source {
		return fern.NewScript([]float64{0.5, 0.5})
	})
	assert.True(t, errors.Is(err, fern.ErrExhausted))
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCSVWriter(&buf)
	require.NoError(t, cw.Write([]float64{0, 0.448}, []float64{1.6, 0.824}))
	require.NoError(t, cw.Write([]float64{-1}, []float64{2}))
	require.NoError(t, cw.Flush())
	assert.Equal(t, "x,y\n0,1.6\n0.448,0.824\n-1,2\n", buf.String())
}

func TestReadDraws(t *testing.T) {
	in := "# recorded\n0.005\n\n 0.5 \n0.95\n"
	draws, err := ReadDraws(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.005, 0.5, 0.95}, draws)

	_, err = ReadDraws(strings.NewReader("0.1\nabc\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestWritePNG(t *testing.T) {
	b := fern.Bounds()
	mid := fern.Point{X: b.MinX + b.Width()/2, Y: b.MinY + b.Height()/2}
	cloud := &Cloud{X: []float64{mid.X}, Y: []float64{mid.Y}}

	opts := DefaultPNGOptions()
	opts.Size = 64
	opts.Alpha = 1
	opts.Radius = 0.5
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, cloud, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	r, g, bl, _ := img.At(32, 32).RGBA()
	assert.Greater(t, g, r)
	assert.Greater(t, g, bl)

	r, g, bl, _ = img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl})
}

func TestDrawRejectsBadSize(t *testing.T) {
	_, err := Draw(&Cloud{}, PNGOptions{Size: 0, Color: colorful.Color{G: 1}})
	assert.Error(t, err)
}
