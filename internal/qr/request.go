package qr

import (
	"fmt"
	"strings"

	apperr "github.com/qrstudio/qrstudio/internal/errors"
)

// Recovery is the QR error-correction level. The zero value means
// "unset" and normalizes to RecoveryMedium.
type Recovery int

const (
	RecoveryLow Recovery = iota + 1
	RecoveryMedium
	RecoveryHigh
	RecoveryHighest
)

// ParseRecovery parses an error-correction level name.
func ParseRecovery(s string) (Recovery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RecoveryLow, nil
	case "medium":
		return RecoveryMedium, nil
	case "high":
		return RecoveryHigh, nil
	case "highest":
		return RecoveryHighest, nil
	default:
		return 0, fmt.Errorf("unknown recovery level %q (want low, medium, high, or highest)", s)
	}
}

func (r Recovery) String() string {
	switch r {
	case RecoveryLow:
		return "low"
	case RecoveryHigh:
		return "high"
	case RecoveryHighest:
		return "highest"
	default:
		return "medium"
	}
}

// Request is the immutable input of one generation: what to encode, the
// two render colors, where to write, and the render parameters. The form
// builds one from its current field values at submission time.
type Request struct {
	Content    string
	Fill       RGB
	Background RGB
	OutputPath string
	Format     Format

	// Render parameters. Zero values for ModuleSize, Recovery, and
	// JPEGQuality normalize to the defaults (10 px per module, medium
	// recovery, quality 90). Border is the quiet-zone width in modules
	// and may legitimately be zero; the form defaults it to 2.
	ModuleSize  int
	Border      int
	Recovery    Recovery
	JPEGQuality int
}

// Validate checks the request invariants: content must be non-empty and
// the output path's extension must match the chosen format.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return apperr.New(apperr.ErrValidation, "content is empty")
	}
	if r.OutputPath == "" {
		return apperr.New(apperr.ErrValidation, "output path is empty")
	}
	if !r.Format.MatchesPath(r.OutputPath) {
		return apperr.New(apperr.ErrValidation,
			fmt.Sprintf("output path %q does not match format %s", r.OutputPath, r.Format))
	}
	return nil
}

// normalized returns a copy with unset render parameters replaced by
// their defaults.
func (r Request) normalized() Request {
	if r.ModuleSize <= 0 {
		r.ModuleSize = 10
	}
	if r.Border < 0 {
		r.Border = 0
	}
	if r.Recovery < RecoveryLow || r.Recovery > RecoveryHighest {
		r.Recovery = RecoveryMedium
	}
	if r.JPEGQuality <= 0 || r.JPEGQuality > 100 {
		r.JPEGQuality = 90
	}
	return r
}
