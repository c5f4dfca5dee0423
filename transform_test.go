package svgpath

import (
	"runtime"
	"testing"
	"time"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	p := Tuple{1, 2}

	tests := []struct {
		name string
		m    Matrix
		want Tuple
	}{
		{"identity", Identity(), Tuple{1, 2}},
		{"translate", Identity().Translate(10, 20), Tuple{11, 22}},
		{"scale", Identity().Scale(2, 3), Tuple{2, 6}},
		{"rotate", Identity().Rotate(90), Tuple{-2, 1}},
		{"rotate about", Identity().RotateAbout(180, 1, 1), Tuple{1, 0}},
		{"skew x", Identity().SkewX(45), Tuple{3, 2}},
		{"skew y", Identity().SkewY(45), Tuple{1, 3}},
		{"scale then translate", Identity().Translate(10, 0).Scale(2, 2), Tuple{12, 4}},
		{"coefficients", NewMatrix(1, 2, 3, 4, 5, 6), Tuple{12, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTuple(t, tt.want, tt.m.Apply(p))
		})
	}
}

func TestMatrixCoefficients(t *testing.T) {
	is := is.New(t)

	is.Equal(Identity().Coefficients(), [6]float64{1, 0, 0, 1, 0, 0})
	is.Equal(NewMatrix(1, 2, 3, 4, 5, 6).Coefficients(), [6]float64{1, 2, 3, 4, 5, 6})
	is.Equal(Identity().Translate(3, 4).Scale(2, 2).Coefficients(), [6]float64{2, 0, 0, 2, 3, 4})
}

func TestSimplePathTransform(t *testing.T) {
	sp := simplify(t, "M0 0 C1 0 1 1 0 1 Z")
	sp.Transform(Identity().Translate(10, 10).Scale(2, 2))
	assert.Equal(t, "M 10 10 C 12 10,12 12,10 12 Z", sp.String())
}

func TestParseTransform(t *testing.T) {
	p := Tuple{1, 2}

	tests := []struct {
		s    string
		want Tuple
	}{
		{"", Tuple{1, 2}},
		{"translate(10,20)", Tuple{11, 22}},
		{"translate(10)", Tuple{11, 2}},
		{"scale(2)", Tuple{2, 4}},
		{"scale(2 3)", Tuple{2, 6}},
		{"translate(10) scale(2)", Tuple{12, 4}},
		{"scale(2), translate(10)", Tuple{22, 4}},
		{"rotate(90)", Tuple{-2, 1}},
		{"rotate(180 1 1)", Tuple{1, 0}},
		{"matrix(1 0 0 1 5 -5)", Tuple{6, -3}},
		{"matrix(1,2,3,4,5,6)", Tuple{12, 16}},
		{"skewX(45)", Tuple{3, 2}},
		{"skewY(45)", Tuple{1, 3}},
		{"translate(-10, -20)", Tuple{-9, -18}},
		{"scale(.5)", Tuple{0.5, 1}},
		{"translate(.5 .5)", Tuple{1.5, 2.5}},
		{"translate(-.5-.5)", Tuple{0.5, 1.5}},
		{"scale(1e1)", Tuple{10, 20}},
		{"translate(1,\r\n2)", Tuple{2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			m, err := ParseTransform(tt.s)
			require.NoError(t, err)
			assertTuple(t, tt.want, m.Apply(p))
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, s := range []string{
		"foo(1)",
		"translate(1",
		"scale(1,2,3)",
		"rotate(1,2)",
		"matrix(1 2 3)",
		"translate 10",
		"skewX()",
		")",
		"scale(2);",
		"scale(1e400)",
		"scale(.)",
		"2",
	} {
		t.Run(s, func(t *testing.T) {
			m, err := ParseTransform(s)
			assert.Error(t, err)
			assert.Equal(t, Identity(), m)
		})
	}
}

func TestParseTransformReleasesLexer(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 200; i++ {
		_, err := ParseTransform("translate(1 2) rotate(30)")
		require.NoError(t, err)
		_, err = ParseTransform("foo(1) scale(2)")
		require.Error(t, err)
		_, err = ParseTransform("translate(1")
		require.Error(t, err)
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+2
	}, time.Second, 10*time.Millisecond)
}
