package form

import "github.com/qrstudio/qrstudio/internal/qr"

// Msg is a form event. Field edits come from the user via the UI
// driver; ResultMsg is delivered when a generation finishes.
type Msg interface{ isMsg() }

// ColorRole selects which color a SetColorMsg changes.
type ColorRole int

const (
	RoleFill ColorRole = iota
	RoleBackground
)

func (r ColorRole) String() string {
	if r == RoleBackground {
		return "background"
	}
	return "fill"
}

// SetContentMsg stores the text to encode. No transformation happens
// here; the driver trims surrounding whitespace before dispatching.
type SetContentMsg struct{ Text string }

// SetColorMsg sets the fill or background color.
type SetColorMsg struct {
	Role  ColorRole
	Color qr.RGB
}

// SetOutputPathMsg records the path the user picked. A canceled dialog
// dispatches nothing.
type SetOutputPathMsg struct{ Path string }

// SetFormatMsg selects the output format.
type SetFormatMsg struct{ Format qr.Format }

// SubmitMsg snapshots the current fields into a Request and starts a
// generation.
type SubmitMsg struct{}

// ResultMsg carries a finished generation back into the update loop.
type ResultMsg struct {
	Artifact *qr.Artifact
	Err      error
}

func (SetContentMsg) isMsg()    {}
func (SetColorMsg) isMsg()      {}
func (SetOutputPathMsg) isMsg() {}
func (SetFormatMsg) isMsg()     {}
func (SubmitMsg) isMsg()        {}
func (ResultMsg) isMsg()        {}
