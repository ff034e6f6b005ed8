package model

// BoundingBox represents a rectangle in raster coordinates.
// The origin is the upper-left corner of the page image, so Top increases
// downward. All values are pixels in the rasterized coordinate space.
type BoundingBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewBoundingBox creates a bounding box from coordinates.
func NewBoundingBox(left, top, width, height int) BoundingBox {
	return BoundingBox{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the right edge X coordinate.
func (b BoundingBox) Right() int {
	return b.Left + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b BoundingBox) Bottom() int {
	return b.Top + b.Height
}

// CenterX returns the horizontal center coordinate.
func (b BoundingBox) CenterX() int {
	return b.Left + b.Width/2
}

// CenterY returns the vertical center coordinate.
func (b BoundingBox) CenterY() int {
	return b.Top + b.Height/2
}

// HGapTo returns the horizontal distance from this box's right edge to the
// left edge of other. Negative values indicate overlap.
func (b BoundingBox) HGapTo(other BoundingBox) int {
	return other.Left - b.Right()
}

// VDistance returns the absolute difference between the top edges of the
// two boxes. Layout reconstruction uses this to cluster tokens into lines.
func (b BoundingBox) VDistance(other BoundingBox) int {
	d := b.Top - other.Top
	if d < 0 {
		return -d
	}
	return d
}

// Union returns the smallest bounding box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	left := b.Left
	if other.Left < left {
		left = other.Left
	}
	top := b.Top
	if other.Top < top {
		top = other.Top
	}
	right := b.Right()
	if other.Right() > right {
		right = other.Right()
	}
	bottom := b.Bottom()
	if other.Bottom() > bottom {
		bottom = other.Bottom()
	}
	return BoundingBox{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// IsEmpty returns true if the bounding box has no area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
