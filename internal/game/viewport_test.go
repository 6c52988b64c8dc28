package game

import "testing"

func TestNewViewport(t *testing.T) {
	tests := []struct {
		width, height int
		ws, hs        int
	}{
		{0, 0, 0, 0},
		{11, 11, 0, 0},
		{12, 24, 1, 2},
		{1199, 1201, 99, 100},
		{1200, 1200, 100, 100},
		{1920, 1080, 160, 90},
	}

	for _, tt := range tests {
		v := NewViewport(tt.width, tt.height)
		if v.Width != tt.width || v.Height != tt.height {
			t.Errorf("NewViewport(%d, %d) size = %dx%d", tt.width, tt.height, v.Width, v.Height)
		}
		if v.WidthSlice != tt.ws || v.HeightSlice != tt.hs {
			t.Errorf("NewViewport(%d, %d) slices = %d, %d, want %d, %d",
				tt.width, tt.height, v.WidthSlice, v.HeightSlice, tt.ws, tt.hs)
		}
		if v.CenterX != float64(tt.ws*6) || v.CenterY != float64(tt.hs*6) {
			t.Errorf("NewViewport(%d, %d) center = (%f, %f), want (%d, %d)",
				tt.width, tt.height, v.CenterX, v.CenterY, tt.ws*6, tt.hs*6)
		}
	}
}

func TestNewViewport_Negative(t *testing.T) {
	v := NewViewport(-5, -1)
	if v.Width != 0 || v.Height != 0 || v.WidthSlice != 0 || v.HeightSlice != 0 {
		t.Errorf("expected negative size to collapse to zero, got %+v", v)
	}
}

func TestViewport_SliceHelpers(t *testing.T) {
	v := NewViewport(1200, 600)
	if v.X(0.5) != 50 {
		t.Errorf("expected X(0.5)=50, got %f", v.X(0.5))
	}
	if v.Y(1.6) != 80 {
		t.Errorf("expected Y(1.6)=80, got %f", v.Y(1.6))
	}
}
