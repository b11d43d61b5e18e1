package rectsel

import (
	"context"
	"errors"
)

var errNoMoreEvents = errors.New("no more events")

type fakeGateway struct {
	root     SurfaceID
	events   []Event
	geometry SurfaceGeometry

	grabErr     error
	geometryErr error

	calls      []string
	draws      []Rectangle
	inverted   map[Rectangle]int
	nextID     uint32
	cursors    map[CursorID]struct{}
	drawingCtx map[DrawingContextID]uint
	grabbed    bool
	grabMask   EventMask
	closed     bool

	lastLineWidth   uint
	lastCursorStyle CursorStyle
}

var _ Gateway = (*fakeGateway)(nil)

func newFakeGateway(events ...Event) *fakeGateway {
	return &fakeGateway{
		root:   0x1a5,
		events: events,
		geometry: SurfaceGeometry{
			Root:   0x1a5,
			Width:  1920,
			Height: 1080,
			Depth:  24,
		},
		inverted:   map[Rectangle]int{},
		cursors:    map[CursorID]struct{}{},
		drawingCtx: map[DrawingContextID]uint{},
	}
}

func (gw *fakeGateway) RootSurface() SurfaceID {
	return gw.root
}

func (gw *fakeGateway) CreateCursor(ctx context.Context, style CursorStyle) (CursorID, error) {
	gw.calls = append(gw.calls, "CreateCursor")
	gw.lastCursorStyle = style
	gw.nextID++
	id := CursorID(gw.nextID)
	gw.cursors[id] = struct{}{}
	return id, nil
}

func (gw *fakeGateway) FreeCursor(ctx context.Context, cursor CursorID) error {
	gw.calls = append(gw.calls, "FreeCursor")
	if _, ok := gw.cursors[cursor]; !ok {
		return errors.New("unknown cursor")
	}
	delete(gw.cursors, cursor)
	return nil
}

func (gw *fakeGateway) GrabPointer(ctx context.Context, surface SurfaceID, mask EventMask, cursor CursorID) error {
	gw.calls = append(gw.calls, "GrabPointer")
	if gw.grabErr != nil {
		return gw.grabErr
	}
	gw.grabbed = true
	gw.grabMask = mask
	return nil
}

func (gw *fakeGateway) UngrabPointer(ctx context.Context) error {
	gw.calls = append(gw.calls, "UngrabPointer")
	gw.grabbed = false
	return nil
}

func (gw *fakeGateway) CreateInvertingContext(ctx context.Context, surface SurfaceID, lineWidth uint) (DrawingContextID, error) {
	gw.calls = append(gw.calls, "CreateInvertingContext")
	gw.lastLineWidth = lineWidth
	gw.nextID++
	id := DrawingContextID(gw.nextID)
	gw.drawingCtx[id] = lineWidth
	return id, nil
}

func (gw *fakeGateway) FreeDrawingContext(ctx context.Context, dc DrawingContextID) error {
	gw.calls = append(gw.calls, "FreeDrawingContext")
	if _, ok := gw.drawingCtx[dc]; !ok {
		return errors.New("unknown drawing context")
	}
	delete(gw.drawingCtx, dc)
	return nil
}

func (gw *fakeGateway) DrawInvertedRectangle(ctx context.Context, surface SurfaceID, dc DrawingContextID, rect Rectangle) error {
	gw.calls = append(gw.calls, "DrawInvertedRectangle")
	if _, ok := gw.drawingCtx[dc]; !ok {
		return errors.New("unknown drawing context")
	}
	gw.draws = append(gw.draws, rect)
	gw.inverted[rect] = (gw.inverted[rect] + 1) % 2
	if gw.inverted[rect] == 0 {
		delete(gw.inverted, rect)
	}
	return nil
}

func (gw *fakeGateway) NextEvent(ctx context.Context) (Event, error) {
	if len(gw.events) == 0 {
		return nil, errNoMoreEvents
	}
	ev := gw.events[0]
	gw.events = gw.events[1:]
	return ev, nil
}

func (gw *fakeGateway) Flush(ctx context.Context) error {
	gw.calls = append(gw.calls, "Flush")
	return nil
}

func (gw *fakeGateway) Sync(ctx context.Context) error {
	gw.calls = append(gw.calls, "Sync")
	return nil
}

func (gw *fakeGateway) QueryGeometry(ctx context.Context, surface SurfaceID) (SurfaceGeometry, error) {
	gw.calls = append(gw.calls, "QueryGeometry")
	if gw.geometryErr != nil {
		return SurfaceGeometry{}, gw.geometryErr
	}
	return gw.geometry, nil
}

func (gw *fakeGateway) Close() error {
	gw.closed = true
	return nil
}

// visibleRectangles returns the outlines left inverted on the screen.
func (gw *fakeGateway) visibleRectangles() []Rectangle {
	var result []Rectangle
	for rect := range gw.inverted {
		result = append(result, rect)
	}
	return result
}

func (gw *fakeGateway) countCalls(method string) int {
	count := 0
	for _, call := range gw.calls {
		if call == method {
			count++
		}
	}
	return count
}

func press(x, y int) Event {
	return ButtonPressEvent{Point: Point{X: x, Y: y}}
}

func move(x, y int) Event {
	return PointerMoveEvent{Point: Point{X: x, Y: y}}
}

func release(x, y int) Event {
	return ButtonReleaseEvent{Point: Point{X: x, Y: y}}
}
