package rectsel

type gestureStage uint

const (
	gestureStageIdle = gestureStage(iota)
	gestureStageDragging
)

func (s gestureStage) String() string {
	switch s {
	case gestureStageIdle:
		return "idle"
	case gestureStageDragging:
		return "dragging"
	default:
		return "unknown_gesture_stage"
	}
}

// gesture is the state of one drag. While idle the anchor and the
// rectangle are meaningless.
type gesture struct {
	stage  gestureStage
	anchor Point
	rect   Rectangle
}

func (g *gesture) press(p Point) {
	g.stage = gestureStageDragging
	g.anchor = p
	g.rect = Rectangle{X: p.X, Y: p.Y}
}

// move returns false if the pointer motion has to be ignored.
func (g *gesture) move(p Point) bool {
	if g.stage != gestureStageDragging {
		return false
	}
	g.rect = NormalizeRectangle(g.anchor, p)
	return true
}

// release returns true if the gesture is finished.
func (g *gesture) release() bool {
	return g.stage == gestureStageDragging
}
