package dom

// Key values carried by KeyboardEvent.Key.
const (
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// KeyboardEvent is the Detail of keydown events.
type KeyboardEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// MouseEvent is the Detail of click events. Zero for programmatic clicks.
type MouseEvent struct {
	Button int
	Detail int
}

// InputEvent is the Detail of input events.
type InputEvent struct {
	Value string
}
