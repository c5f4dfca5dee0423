package svgpath

import (
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgpath/logging"
)

func TestBBox(t *testing.T) {
	b := simplify(t, "M10 20 C0 80 40 -10 30 60 Z").BBox()
	assert.Equal(t, BBox{MinX: 0, MinY: -10, MaxX: 40, MaxY: 80}, b)
	assert.Equal(t, 40.0, b.Width())
	assert.Equal(t, 90.0, b.Height())
	assert.Equal(t, Tuple{20, 35}, b.Center())
	assert.False(t, b.IsEmpty())

	empty := (&SimplePath{}).BBox()
	assert.True(t, empty.IsEmpty())
	assert.True(t, math.IsInf(empty.MinX, 1))
	assert.True(t, math.IsInf(empty.MaxY, -1))

	empty.Add(Tuple{3, 4})
	assert.Equal(t, BBox{3, 4, 3, 4}, empty)
}

func TestFitTransform(t *testing.T) {
	b := BBox{MinX: 10, MinY: 20, MaxX: 30, MaxY: 60}
	r := NewRect(0, 0, 100, 100)

	tests := []struct {
		name         string
		lockX, lockY bool
		want         AffineTransform
	}{
		{"free", false, false, AffineTransform{5, 2.5, -50, -50}},
		{"lock x", true, false, AffineTransform{2.5, 2.5, -25, -50}},
		{"lock y", false, true, AffineTransform{5, 5, -50, -100}},
		{"lock both", true, true, AffineTransform{2.5, 2.5, -25, -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FitTransform(b, r, tt.lockX, tt.lockY)
			assert.Equal(t, tt.want, a)
			assert.Equal(t, Tuple{r.X, r.Y}, a.Apply(Tuple{b.MinX, b.MinY}))
		})
	}
}

func TestFitCenteredTransform(t *testing.T) {
	b := BBox{MinX: 10, MinY: 20, MaxX: 30, MaxY: 60}
	r := NewRect(0, 0, 100, 100)

	tests := []struct {
		name         string
		lockX, lockY bool
		want         AffineTransform
	}{
		{"free", false, false, AffineTransform{5, 2.5, -50, -50}},
		{"lock x", true, false, AffineTransform{2.5, 2.5, 0, -50}},
		{"lock y", false, true, AffineTransform{5, 5, -50, -100}},
		{"lock both", true, true, AffineTransform{2.5, 2.5, 0, -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitCenteredTransform(b, r, tt.lockX, tt.lockY))
		})
	}
}

func TestFitCentered(t *testing.T) {
	tests := []struct {
		name string
		d    string
		rect Rect
		want BBox
	}{
		{"tall", "M10 20 L30 60", NewRect(0, 0, 100, 100), BBox{25, 0, 75, 100}},
		{"tall offset", "M10 20 L30 60", NewRect(5, 5, 100, 100), BBox{30, 5, 80, 105}},
		{"wide", "M0 0 L40 10", NewRect(0, 0, 100, 100), BBox{0, 37.5, 100, 62.5}},
		{"square", "M0 0 L1 1", NewRect(0, 0, 10, 10), BBox{0, 0, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simplify(t, tt.d).FitCentered(tt.rect, true, true).BBox()
			assert.InDelta(t, tt.want.MinX, got.MinX, delta)
			assert.InDelta(t, tt.want.MinY, got.MinY, delta)
			assert.InDelta(t, tt.want.MaxX, got.MaxX, delta)
			assert.InDelta(t, tt.want.MaxY, got.MaxY, delta)
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		d            string
		rect         Rect
		lockX, lockY bool
		want         BBox
	}{
		{"stretch", "M10 20 L30 60", NewRect(0, 0, 100, 100), false, false, BBox{0, 0, 100, 100}},
		{"keep width ratio", "M10 20 L30 60", NewRect(0, 0, 100, 100), true, false, BBox{0, 0, 50, 100}},
		{"keep height ratio", "M10 20 L30 60", NewRect(0, 0, 100, 100), false, true, BBox{0, 0, 100, 200}},
		{"keep aspect", "M10 20 L30 60", NewRect(5, 5, 100, 100), true, true, BBox{5, 5, 55, 105}},
		{"offset target", "M-10 -10 L10 10", NewRect(100, 200, 4, 8), false, false, BBox{100, 200, 104, 208}},
		{"curve", "M0 0 C0 10 10 10 10 0", NewRect(0, 0, 1, 1), false, false, BBox{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := simplify(t, tt.d)
			got := sp.Fit(tt.rect, tt.lockX, tt.lockY).BBox()
			assert.InDelta(t, tt.want.MinX, got.MinX, delta)
			assert.InDelta(t, tt.want.MinY, got.MinY, delta)
			assert.InDelta(t, tt.want.MaxX, got.MaxX, delta)
			assert.InDelta(t, tt.want.MaxY, got.MaxY, delta)
		})
	}
}

func TestFitFlatPath(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)
	h := logging.NewBufferedHandler(slog.LevelDebug)
	logging.SetLogger(slog.New(h))

	sp := simplify(t, "M0 5 L10 5")
	sp.Fit(NewRect(1, 2, 20, 20), false, false)
	assert.Equal(t, "M 1 2 L 21 2", sp.String())
	assert.True(t, h.Contains("fitting a flat path"))
	assert.True(t, h.Contains("height=0"))

	h.Reset()
	sp = simplify(t, "M0 5 L10 5")
	sp.Fit(NewRect(1, 2, 20, 20), false, true)
	assert.Equal(t, "M 1 2 L 21 2", sp.String())
	assert.False(t, h.Contains("fitting a flat path"))
}

func TestFitEmpty(t *testing.T) {
	sp := &SimplePath{}
	require.Same(t, sp, sp.Fit(NewRect(0, 0, 10, 10), true, true))
	assert.Empty(t, sp.Instructions)
}

func TestFitKeepsClose(t *testing.T) {
	sp := simplify(t, "M0 0 L2 0 L2 2 Z")
	sp.Fit(NewRect(0, 0, 1, 1), true, true)
	assert.Equal(t, "M 0 0 L 1 0 L 1 1 Z", sp.String())
}

func TestRectFromBBox(t *testing.T) {
	r := RectFromBBox(BBox{MinX: 1, MinY: 2, MaxX: 4, MaxY: 8})
	assert.Equal(t, Rect{X: 1, Y: 2, Width: 3, Height: 6}, r)

	// fitting a path onto its own box changes nothing
	sp := simplify(t, "M1 2 L4 8 L2 3")
	before := sp.String()
	sp.Fit(RectFromBBox(sp.BBox()), false, false)
	assert.Equal(t, before, sp.String())
}

func TestAffineTransformMatrix(t *testing.T) {
	a := AffineTransform{ScaleX: 2, ScaleY: 3, TranslateX: 4, TranslateY: 5}
	p := Tuple{7, -1}
	assert.Equal(t, a.Apply(p), a.Matrix().Apply(p))
}
