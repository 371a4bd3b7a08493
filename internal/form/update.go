package form

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/qrstudio/qrstudio/internal/logging"
	"github.com/qrstudio/qrstudio/internal/qr"
)

// Generator runs a generation request. *qr.Generator satisfies it;
// tests substitute mocks.
type Generator interface {
	Generate(ctx context.Context, req qr.Request) (*qr.Artifact, error)
}

// Cmd is work the driver runs after an update, typically on a worker
// goroutine so the update loop stays responsive. The returned Msg must
// be fed back into Update.
type Cmd func() Msg

// Form dispatches messages against a Model. It carries no state of its
// own beyond the generator dependency.
type Form struct {
	gen Generator
}

// New creates a Form backed by gen.
func New(gen Generator) *Form {
	return &Form{gen: gen}
}

// Update applies one message and returns the next model, plus a command
// when the message starts work. It is the only transition function.
func (f *Form) Update(m Model, msg Msg) (Model, Cmd) {
	switch msg := msg.(type) {
	case SetContentMsg:
		m = clearResult(m)
		m.Content = msg.Text

	case SetColorMsg:
		m = clearResult(m)
		if msg.Role == RoleBackground {
			m.Background = msg.Color
		} else {
			m.Fill = msg.Color
		}

	case SetOutputPathMsg:
		m = clearResult(m)
		m.OutputPath = msg.Path

	case SetFormatMsg:
		m = clearResult(m)
		m.OutputPath = retargetExt(m.OutputPath, m.Format, msg.Format)
		m.Format = msg.Format

	case SubmitMsg:
		if m.State == StateGenerating {
			return m, nil
		}
		m.State = StateGenerating
		m.Err = nil

		req := m.Request()
		gen := f.gen
		return m, func() Msg {
			ctx := logging.WithGenerationID(context.Background(), logging.NewGenerationID())
			artifact, err := gen.Generate(ctx, req)
			return ResultMsg{Artifact: artifact, Err: err}
		}

	case ResultMsg:
		if m.State != StateGenerating {
			return m, nil
		}
		if msg.Err != nil {
			m.State = StateError
			m.Err = msg.Err
			// The previous artifact stays so the last good preview
			// remains visible.
		} else {
			m.State = StateSuccess
			m.Artifact = msg.Artifact
			m.Err = nil
		}
	}

	return m, nil
}

// clearResult returns to idle when the user edits a field after a
// finished generation.
func clearResult(m Model) Model {
	if m.State == StateSuccess || m.State == StateError {
		m.State = StateIdle
		m.Err = nil
	}
	return m
}

// retargetExt moves the path's extension to the new format when it
// still carries the old format's extension. Paths with unrelated
// extensions are left alone and fail validation at submit instead.
func retargetExt(path string, from, to qr.Format) string {
	if path == "" || !from.MatchesPath(path) || to.MatchesPath(path) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + to.Ext()
}
