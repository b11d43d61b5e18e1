package rectsel

import (
	"context"
	"fmt"
)

// overlay keeps track of the outline currently inverted on the screen.
// Erasing is done by inverting the same outline once again.
type overlay struct {
	gateway Gateway
	surface SurfaceID
	dc      DrawingContextID
	visible *Rectangle
}

func newOverlay(gw Gateway, surface SurfaceID, dc DrawingContextID) *overlay {
	return &overlay{
		gateway: gw,
		surface: surface,
		dc:      dc,
	}
}

func (o *overlay) show(ctx context.Context, rect Rectangle) error {
	if err := o.erase(ctx); err != nil {
		return err
	}
	if err := o.gateway.DrawInvertedRectangle(ctx, o.surface, o.dc, rect); err != nil {
		return fmt.Errorf("unable to draw the rectangle %s: %w", rect, err)
	}
	o.visible = &rect
	return o.flush(ctx)
}

func (o *overlay) hide(ctx context.Context) error {
	if o.visible == nil {
		return nil
	}
	if err := o.erase(ctx); err != nil {
		return err
	}
	return o.flush(ctx)
}

func (o *overlay) erase(ctx context.Context) error {
	if o.visible == nil {
		return nil
	}
	rect := *o.visible
	if err := o.gateway.DrawInvertedRectangle(ctx, o.surface, o.dc, rect); err != nil {
		return fmt.Errorf("unable to erase the rectangle %s: %w", rect, err)
	}
	o.visible = nil
	return nil
}

func (o *overlay) flush(ctx context.Context) error {
	if err := o.gateway.Flush(ctx); err != nil {
		return fmt.Errorf("unable to flush the drawing requests: %w", err)
	}
	return nil
}
