package rectsel

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
)

const selectionEventMask = EventMaskPointerMotion | EventMaskButtonPress | EventMaskButtonRelease

type Selector struct {
	Gateway Gateway
	Options OptionsAggregated
}

func New(
	gw Gateway,
	opts ...Option,
) *Selector {
	return &Selector{
		Gateway: gw,
		Options: Options(opts).Aggregate(),
	}
}

// Select lets the user drag a rectangle over the root surface and returns
// its geometry. It blocks until a pointer button is released.
func (s *Selector) Select(
	ctx context.Context,
	root SurfaceID,
) (_ret Region, _err error) {
	logger.Debugf(ctx, "Select(ctx, %d)", root)
	defer func() { logger.Debugf(ctx, "/Select(ctx, %d): %#+v %v", root, _ret, _err) }()

	sess := &session{
		Gateway: s.Gateway,
		Root:    root,
		Options: s.Options,
	}
	rect, err := sess.run(ctx)
	if err != nil {
		return Region{}, err
	}

	geometry, err := s.Gateway.QueryGeometry(ctx, root)
	if err != nil {
		return Region{}, ErrGeometryQuery{Err: err}
	}
	logger.Tracef(ctx, "root geometry: %#+v", geometry)

	return NewRegion(rect, geometry), nil
}

// session holds the display resources acquired for one selection.
type session struct {
	Gateway Gateway
	Root    SurfaceID
	Options OptionsAggregated

	cursor     *CursorID
	grabbed    bool
	drawingCtx *DrawingContextID
	overlay    *overlay
	gesture    gesture
}

func (sess *session) run(ctx context.Context) (Rectangle, error) {
	defer func() {
		if err := sess.release(ctx); err != nil {
			logger.Errorf(ctx, "unable to release the display resources: %v", err)
		}
	}()

	if err := sess.acquire(ctx); err != nil {
		return Rectangle{}, err
	}

	return sess.track(ctx)
}

func (sess *session) acquire(ctx context.Context) error {
	cursor, err := sess.Gateway.CreateCursor(ctx, sess.Options.CursorStyle)
	if err != nil {
		return fmt.Errorf("unable to create the %s cursor: %w", sess.Options.CursorStyle, err)
	}
	sess.cursor = &cursor

	if err := sess.Gateway.GrabPointer(ctx, sess.Root, selectionEventMask, cursor); err != nil {
		return ErrCapture{Err: err}
	}
	sess.grabbed = true

	dc, err := sess.Gateway.CreateInvertingContext(ctx, sess.Root, sess.Options.LineWidth)
	if err != nil {
		return fmt.Errorf("unable to create the drawing context: %w", err)
	}
	sess.drawingCtx = &dc
	sess.overlay = newOverlay(sess.Gateway, sess.Root, dc)
	return nil
}

func (sess *session) track(ctx context.Context) (Rectangle, error) {
	for {
		ev, err := sess.Gateway.NextEvent(ctx)
		if err != nil {
			return Rectangle{}, fmt.Errorf("unable to get the next event: %w", err)
		}
		logger.Tracef(ctx, "event %s while %s", ev, sess.gesture.stage)

		switch ev := ev.(type) {
		case ButtonPressEvent:
			if err := sess.overlay.hide(ctx); err != nil {
				return Rectangle{}, err
			}
			sess.gesture.press(ev.Point)
		case PointerMoveEvent:
			if !sess.gesture.move(ev.Point) {
				continue
			}
			if err := sess.overlay.show(ctx, sess.gesture.rect); err != nil {
				return Rectangle{}, err
			}
		case ButtonReleaseEvent:
			if sess.gesture.release() {
				return sess.gesture.rect, nil
			}
		}
	}
}

// release retracts the overlay and frees everything acquire got, in
// reverse order. It is safe to call on a partially acquired session.
func (sess *session) release(ctx context.Context) error {
	var result *multierror.Error

	if sess.overlay != nil {
		result = multierror.Append(result, sess.overlay.hide(ctx))
		sess.overlay = nil
	}

	if sess.grabbed {
		if err := sess.Gateway.UngrabPointer(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("unable to ungrab the pointer: %w", err))
		}
		sess.grabbed = false
	}

	if sess.cursor != nil {
		if err := sess.Gateway.FreeCursor(ctx, *sess.cursor); err != nil {
			result = multierror.Append(result, fmt.Errorf("unable to free the cursor: %w", err))
		}
		sess.cursor = nil
	}

	if sess.drawingCtx != nil {
		if err := sess.Gateway.FreeDrawingContext(ctx, *sess.drawingCtx); err != nil {
			result = multierror.Append(result, fmt.Errorf("unable to free the drawing context: %w", err))
		}
		sess.drawingCtx = nil
	}

	if err := sess.Gateway.Sync(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("unable to sync with the display server: %w", err))
	}

	return result.ErrorOrNil()
}
