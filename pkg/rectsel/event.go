package rectsel

import (
	"fmt"
)

type Event interface {
	fmt.Stringer
	isEvent()
}

type ButtonPressEvent struct {
	Point
}

type PointerMoveEvent struct {
	Point
}

type ButtonReleaseEvent struct {
	Point
}

type OtherEvent struct {
	Description string
}

var (
	_ Event = ButtonPressEvent{}
	_ Event = PointerMoveEvent{}
	_ Event = ButtonReleaseEvent{}
	_ Event = OtherEvent{}
)

func (ButtonPressEvent) isEvent()   {}
func (PointerMoveEvent) isEvent()   {}
func (ButtonReleaseEvent) isEvent() {}
func (OtherEvent) isEvent()         {}

func (ev ButtonPressEvent) String() string {
	return fmt.Sprintf("ButtonPress%s", ev.Point)
}

func (ev PointerMoveEvent) String() string {
	return fmt.Sprintf("PointerMove%s", ev.Point)
}

func (ev ButtonReleaseEvent) String() string {
	return fmt.Sprintf("ButtonRelease%s", ev.Point)
}

func (ev OtherEvent) String() string {
	if ev.Description == "" {
		return "Other"
	}
	return fmt.Sprintf("Other(%s)", ev.Description)
}
