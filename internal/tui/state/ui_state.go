package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Navigating the list
	InputMode              // Typing a new todo
	EditMode               // Retitling the selected todo
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case InputMode:
		return "new"
	case EditMode:
		return "edit"
	default:
		return "unknown"
	}
}

// Filter selects which todos the list shows
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in cycling order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// String returns the filter label
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next returns the filter after f, wrapping around
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Keep reports whether a todo with the given done flag passes the filter
func (f Filter) Keep(done bool) bool {
	switch f {
	case FilterActive:
		return !done
	case FilterCompleted:
		return done
	default:
		return true
	}
}

// UIState manages the user interface state.
// This includes the cursor, terminal dimensions, the active filter and the
// current interaction mode.
type UIState struct {
	// cursor is the index of the selected row among the visible rows
	cursor int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// filter is the active list filter
	filter Filter

	// editingID is the id of the todo being edited in EditMode
	editingID string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode, filter: FilterAll}
}

// Cursor returns the selected row index
func (s *UIState) Cursor() int {
	return s.cursor
}

// SetCursor sets the selected row index
func (s *UIState) SetCursor(i int) {
	s.cursor = i
}

// ClampCursor keeps the cursor inside [0, rows)
func (s *UIState) ClampCursor(rows int) {
	if s.cursor >= rows {
		s.cursor = rows - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// MoveCursor moves the cursor by delta within [0, rows)
func (s *UIState) MoveCursor(delta, rows int) {
	s.cursor += delta
	s.ClampCursor(rows)
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode; leaving EditMode forgets the edited id
func (s *UIState) SetMode(mode Mode) {
	if mode != EditMode {
		s.editingID = ""
	}
	s.mode = mode
}

// Filter returns the active filter
func (s *UIState) Filter() Filter {
	return s.filter
}

// CycleFilter advances to the next filter and resets the cursor
func (s *UIState) CycleFilter() Filter {
	s.filter = s.filter.Next()
	s.cursor = 0
	return s.filter
}

// StartEdit enters EditMode for the todo with the given id
func (s *UIState) StartEdit(id string) {
	s.mode = EditMode
	s.editingID = id
}

// EditingID returns the id being edited, or "" outside EditMode
func (s *UIState) EditingID() string {
	return s.editingID
}
