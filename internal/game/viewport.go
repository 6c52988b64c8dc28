package game

// GridSlices is the number of layout slices per axis
const GridSlices = 12

// Viewport is the drawable area and its 12-slice layout grid.
// Always build it through NewViewport so the slices match the size.
type Viewport struct {
	Width       int
	Height      int
	WidthSlice  int
	HeightSlice int
	CenterX     float64
	CenterY     float64
}

// NewViewport derives the slice grid from a host reported size
func NewViewport(width, height int) Viewport {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	ws := width / GridSlices
	hs := height / GridSlices
	return Viewport{
		Width:       width,
		Height:      height,
		WidthSlice:  ws,
		HeightSlice: hs,
		CenterX:     float64(ws * 6),
		CenterY:     float64(hs * 6),
	}
}

// X returns the horizontal position of n width slices
func (v Viewport) X(n float64) float64 {
	return float64(v.WidthSlice) * n
}

// Y returns the vertical position of n height slices
func (v Viewport) Y(n float64) float64 {
	return float64(v.HeightSlice) * n
}
