package form

import "github.com/qrstudio/qrstudio/internal/qr"

// State is the form's position in the generation cycle:
// idle → generating → (success|error) → idle.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Model is the complete form state. Update works on copies; nothing
// mutates a Model in place, so an in-flight generation never sees later
// edits.
type Model struct {
	Content    string
	Fill       qr.RGB
	Background qr.RGB
	OutputPath string
	Format     qr.Format

	// Render parameters, fixed at startup from configuration.
	ModuleSize  int
	Border      int
	Recovery    qr.Recovery
	JPEGQuality int

	State    State
	Artifact *qr.Artifact
	Err      error
}

// Request snapshots the current fields into an immutable generation
// request.
func (m Model) Request() qr.Request {
	return qr.Request{
		Content:     m.Content,
		Fill:        m.Fill,
		Background:  m.Background,
		OutputPath:  m.OutputPath,
		Format:      m.Format,
		ModuleSize:  m.ModuleSize,
		Border:      m.Border,
		Recovery:    m.Recovery,
		JPEGQuality: m.JPEGQuality,
	}
}
