package rectsel

import (
	"context"
)

type SurfaceID uint32
type CursorID uint32
type DrawingContextID uint32

type EventMask uint

const (
	EventMaskButtonPress EventMask = 1 << iota
	EventMaskButtonRelease
	EventMaskPointerMotion
)

type CursorStyle uint

const (
	UndefinedCursorStyle = CursorStyle(iota)
	CursorStyleCrosshair
	CursorStyleCross
	CursorStyleArrow
	endOfCursorStyle
)

func (s CursorStyle) String() string {
	switch s {
	case UndefinedCursorStyle:
		return "<undefined>"
	case CursorStyleCrosshair:
		return "crosshair"
	case CursorStyleCross:
		return "cross"
	case CursorStyleArrow:
		return "arrow"
	default:
		return "unknown_cursor_style"
	}
}

func ParseCursorStyle(s string) (CursorStyle, bool) {
	for c := UndefinedCursorStyle + 1; c < endOfCursorStyle; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return UndefinedCursorStyle, false
}

// Gateway is a live session with a display server.
type Gateway interface {
	RootSurface() SurfaceID

	CreateCursor(ctx context.Context, style CursorStyle) (CursorID, error)
	FreeCursor(ctx context.Context, cursor CursorID) error

	GrabPointer(ctx context.Context, surface SurfaceID, mask EventMask, cursor CursorID) error
	UngrabPointer(ctx context.Context) error

	// CreateInvertingContext creates a drawing context which inverts the
	// pixels it touches, so drawing the same shape twice restores the screen.
	CreateInvertingContext(ctx context.Context, surface SurfaceID, lineWidth uint) (DrawingContextID, error)
	FreeDrawingContext(ctx context.Context, dc DrawingContextID) error
	DrawInvertedRectangle(ctx context.Context, surface SurfaceID, dc DrawingContextID, rect Rectangle) error

	// NextEvent blocks until the next input event arrives.
	NextEvent(ctx context.Context) (Event, error)

	Flush(ctx context.Context) error
	Sync(ctx context.Context) error

	QueryGeometry(ctx context.Context, surface SurfaceID) (SurfaceGeometry, error)

	Close() error
}
