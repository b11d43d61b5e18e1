package rectsel

// SurfaceGeometry is the geometry of a drawable surface as reported by the
// display server.
type SurfaceGeometry struct {
	Root        SurfaceID
	X           int
	Y           int
	Width       uint
	Height      uint
	BorderWidth uint
	Depth       uint
}

// Region is the result of a selection.
type Region struct {
	Root SurfaceID

	// X and Y are the offsets from the left and the top of the screen.
	X int
	Y int

	// FarX and FarY are the offsets from the right and the bottom of the screen.
	FarX int
	FarY int

	Width  uint
	Height uint

	// BorderWidth and Depth are copied from the root surface, a selection
	// has neither on its own.
	BorderWidth uint
	Depth       uint
}

func NewRegion(rect Rectangle, root SurfaceGeometry) Region {
	return Region{
		Root:        root.Root,
		X:           rect.X,
		Y:           rect.Y,
		FarX:        int(root.Width) - rect.X - int(rect.Width),
		FarY:        int(root.Height) - rect.Y - int(rect.Height),
		Width:       rect.Width,
		Height:      rect.Height,
		BorderWidth: root.BorderWidth,
		Depth:       root.Depth,
	}
}

func (r Region) Rectangle() Rectangle {
	return Rectangle{
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}
