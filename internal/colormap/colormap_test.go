package colormap

import (
	"image"
	"testing"
)

func TestNormalizeFullRange(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.Pix[0] = 10
	src.Pix[1] = 20
	src.Pix[2] = 30

	dst := Normalize(src)
	if dst.Pix[0] != 0 {
		t.Errorf("min maps to %d, expected 0", dst.Pix[0])
	}
	if dst.Pix[1] != 128 {
		t.Errorf("midpoint maps to %d, expected 128", dst.Pix[1])
	}
	if dst.Pix[2] != 255 {
		t.Errorf("max maps to %d, expected 255", dst.Pix[2])
	}
}

func TestNormalizeConstantImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 77
	}

	dst := Normalize(src)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("constant image cell %d maps to %d, expected 0", i, v)
		}
	}
}

func TestJetEndpoints(t *testing.T) {
	low := Jet(0)
	if low.B <= low.R || low.B <= low.G {
		t.Errorf("Jet(0) = %+v, expected blue-dominant", low)
	}

	high := Jet(255)
	if high.R <= high.B || high.R <= high.G {
		t.Errorf("Jet(255) = %+v, expected red-dominant", high)
	}

	mid := Jet(128)
	if mid.G < mid.R || mid.G < mid.B {
		t.Errorf("Jet(128) = %+v, expected green-dominant", mid)
	}
}

func TestApply(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix[0] = 0
	src.Pix[1] = 255
	src.Pix[2] = 64
	src.Pix[3] = 192

	dst := Apply(src)
	if dst.Rect.Dx() != 2 || dst.Rect.Dy() != 2 {
		t.Fatalf("unexpected output geometry %v", dst.Rect)
	}
	for i, v := range src.Pix {
		want := Jet(v)
		x, y := i%2, i/2
		if got := dst.RGBAAt(x, y); got != want {
			t.Errorf("cell (%d,%d) = %+v, expected %+v", x, y, got, want)
		}
	}
}
