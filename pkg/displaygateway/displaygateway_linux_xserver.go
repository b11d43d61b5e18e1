//go:build linux && !android
// +build linux,!android

package displaygateway

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
)

type XServerGateway struct {
	*xgbutil.XUtil
}

var _ rectsel.Gateway = (*XServerGateway)(nil)

func (gw *DisplayGateway) initUsingXServer(ctx context.Context) error {
	x, err := xgbutil.NewConnDisplay(gw.DisplayName)
	if err != nil {
		return rectsel.ErrConnection{
			Display: gw.DisplayName,
			Err:     fmt.Errorf("unable to connect to X-server: %w", err),
		}
	}
	gw.Gateway = &XServerGateway{
		XUtil: x,
	}
	return nil
}

func (gw *XServerGateway) RootSurface() rectsel.SurfaceID {
	return rectsel.SurfaceID(gw.XUtil.RootWin())
}

func cursorGlyph(style rectsel.CursorStyle) (uint16, error) {
	switch style {
	case rectsel.CursorStyleCrosshair:
		return xcursor.Crosshair, nil
	case rectsel.CursorStyleCross:
		return xcursor.Cross, nil
	case rectsel.CursorStyleArrow:
		return xcursor.Arrow, nil
	default:
		return 0, fmt.Errorf("unsupported cursor style %s", style)
	}
}

func (gw *XServerGateway) CreateCursor(
	ctx context.Context,
	style rectsel.CursorStyle,
) (rectsel.CursorID, error) {
	glyph, err := cursorGlyph(style)
	if err != nil {
		return 0, err
	}
	cursor, err := xcursor.CreateCursor(gw.XUtil, glyph)
	if err != nil {
		return 0, fmt.Errorf("unable to create a cursor from glyph %d: %w", glyph, err)
	}
	logger.Tracef(ctx, "created cursor %d (%s)", cursor, style)
	return rectsel.CursorID(cursor), nil
}

func (gw *XServerGateway) FreeCursor(
	ctx context.Context,
	cursor rectsel.CursorID,
) error {
	return xproto.FreeCursorChecked(gw.Conn(), xproto.Cursor(cursor)).Check()
}

func eventMaskToX(mask rectsel.EventMask) uint16 {
	var result uint16
	if mask&rectsel.EventMaskButtonPress != 0 {
		result |= xproto.EventMaskButtonPress
	}
	if mask&rectsel.EventMaskButtonRelease != 0 {
		result |= xproto.EventMaskButtonRelease
	}
	if mask&rectsel.EventMaskPointerMotion != 0 {
		result |= xproto.EventMaskPointerMotion
	}
	return result
}

func grabStatusString(status byte) string {
	switch status {
	case xproto.GrabStatusSuccess:
		return "Success"
	case xproto.GrabStatusAlreadyGrabbed:
		return "AlreadyGrabbed"
	case xproto.GrabStatusInvalidTime:
		return "InvalidTime"
	case xproto.GrabStatusNotViewable:
		return "NotViewable"
	case xproto.GrabStatusFrozen:
		return "Frozen"
	default:
		return fmt.Sprintf("unknown_grab_status_%d", status)
	}
}

func (gw *XServerGateway) GrabPointer(
	ctx context.Context,
	surface rectsel.SurfaceID,
	mask rectsel.EventMask,
	cursor rectsel.CursorID,
) error {
	reply, err := xproto.GrabPointer(
		gw.Conn(),
		true,
		xproto.Window(surface),
		eventMaskToX(mask),
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.Cursor(cursor),
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("the GrabPointer request failed: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("the X-server refused the pointer grab: %s", grabStatusString(reply.Status))
	}
	return nil
}

func (gw *XServerGateway) UngrabPointer(ctx context.Context) error {
	return xproto.UngrabPointerChecked(gw.Conn(), xproto.TimeCurrentTime).Check()
}

func (gw *XServerGateway) CreateInvertingContext(
	ctx context.Context,
	surface rectsel.SurfaceID,
	lineWidth uint,
) (rectsel.DrawingContextID, error) {
	gc, err := xproto.NewGcontextId(gw.Conn())
	if err != nil {
		return 0, fmt.Errorf("unable to allocate a graphics context ID: %w", err)
	}

	// the values are ordered by the bit of their mask
	err = xproto.CreateGCChecked(
		gw.Conn(),
		gc,
		xproto.Drawable(surface),
		xproto.GcFunction|xproto.GcLineWidth|xproto.GcSubwindowMode,
		[]uint32{
			xproto.GxInvert,
			uint32(lineWidth),
			xproto.SubwindowModeIncludeInferiors,
		},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("unable to create the graphics context: %w", err)
	}
	return rectsel.DrawingContextID(gc), nil
}

func (gw *XServerGateway) FreeDrawingContext(
	ctx context.Context,
	dc rectsel.DrawingContextID,
) error {
	return xproto.FreeGCChecked(gw.Conn(), xproto.Gcontext(dc)).Check()
}

func toXRectangle(rect rectsel.Rectangle) xproto.Rectangle {
	return xproto.Rectangle{
		X:      int16(rect.X),
		Y:      int16(rect.Y),
		Width:  uint16(rect.Width),
		Height: uint16(rect.Height),
	}
}

func (gw *XServerGateway) DrawInvertedRectangle(
	ctx context.Context,
	surface rectsel.SurfaceID,
	dc rectsel.DrawingContextID,
	rect rectsel.Rectangle,
) error {
	// Errors of unchecked requests arrive through WaitForEvent.
	xproto.PolyRectangle(
		gw.Conn(),
		xproto.Drawable(surface),
		xproto.Gcontext(dc),
		[]xproto.Rectangle{toXRectangle(rect)},
	)
	return nil
}

func convertEvent(ev xgb.Event) rectsel.Event {
	switch ev := ev.(type) {
	case xproto.ButtonPressEvent:
		return rectsel.ButtonPressEvent{Point: rectsel.Point{X: int(ev.RootX), Y: int(ev.RootY)}}
	case xproto.MotionNotifyEvent:
		return rectsel.PointerMoveEvent{Point: rectsel.Point{X: int(ev.RootX), Y: int(ev.RootY)}}
	case xproto.ButtonReleaseEvent:
		return rectsel.ButtonReleaseEvent{Point: rectsel.Point{X: int(ev.RootX), Y: int(ev.RootY)}}
	default:
		return rectsel.OtherEvent{Description: fmt.Sprintf("%T", ev)}
	}
}

func (gw *XServerGateway) NextEvent(ctx context.Context) (rectsel.Event, error) {
	ev, xErr := gw.Conn().WaitForEvent()
	switch {
	case ev == nil && xErr == nil:
		return nil, ErrConnectionClosed
	case xErr != nil:
		logger.Warnf(ctx, "received an X error: %v", xErr)
		return rectsel.OtherEvent{Description: xErr.Error()}, nil
	}
	return convertEvent(ev), nil
}

// Flush is a no-op: xgb writes every request to the socket as soon as it
// is issued.
func (gw *XServerGateway) Flush(ctx context.Context) error {
	return nil
}

func (gw *XServerGateway) Sync(ctx context.Context) error {
	if _, err := xproto.GetInputFocus(gw.Conn()).Reply(); err != nil {
		return fmt.Errorf("the round trip to the X-server failed: %w", err)
	}
	return nil
}

func (gw *XServerGateway) QueryGeometry(
	ctx context.Context,
	surface rectsel.SurfaceID,
) (rectsel.SurfaceGeometry, error) {
	reply, err := xproto.GetGeometry(gw.Conn(), xproto.Drawable(surface)).Reply()
	if err != nil {
		return rectsel.SurfaceGeometry{}, fmt.Errorf("unable to get the geometry of window %d: %w", surface, err)
	}
	logger.Tracef(ctx, "GetGeometry reply: %s", spew.Sdump(reply))
	return rectsel.SurfaceGeometry{
		Root:        rectsel.SurfaceID(reply.Root),
		X:           int(reply.X),
		Y:           int(reply.Y),
		Width:       uint(reply.Width),
		Height:      uint(reply.Height),
		BorderWidth: uint(reply.BorderWidth),
		Depth:       uint(reply.Depth),
	}, nil
}

func (gw *XServerGateway) Close() error {
	ctx := context.TODO()
	logger.Debugf(ctx, "Close")
	defer logger.Debugf(ctx, "/Close")
	gw.XUtil.Conn().Close()
	return nil
}
