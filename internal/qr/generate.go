package qr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	apperr "github.com/qrstudio/qrstudio/internal/errors"
	"github.com/qrstudio/qrstudio/internal/logging"
)

// Artifact is the in-memory result of one generation. The raster image
// backs the preview for every format, including SVG; Data holds the
// exact bytes written to disk.
type Artifact struct {
	Image    image.Image
	Data     []byte
	Format   Format
	Path     string
	Modules  int
	Verified bool
}

// Options configures a Generator.
type Options struct {
	Logger *slog.Logger

	// Verify decodes every rendered artifact and compares it against
	// the requested content. Failures are logged, not fatal.
	Verify bool
}

// Generator turns Requests into Artifacts. It holds no state between
// calls; each generation is independent and idempotent given the same
// inputs.
type Generator struct {
	logger *slog.Logger
	verify bool
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		logger: logger,
		verify: opts.Verify,
	}
}

// Generate runs the full pipeline: validate, encode, render, verify,
// write. On success the file at req.OutputPath holds the artifact in
// the requested format. On failure nothing is left at the output path.
func (g *Generator) Generate(ctx context.Context, req Request) (*Artifact, error) {
	req = req.normalized()
	start := time.Now()

	log := g.logger.With("component", "generator")
	for _, a := range logging.LogAttrsFromContext(ctx) {
		log = log.With(a)
	}

	if err := req.Validate(); err != nil {
		log.Info("request_rejected", "error", err)
		return nil, err
	}

	matrix, err := Encode(req.Content, req.Recovery)
	if err != nil {
		log.Info("encode_failed", "error", err, "content_bytes", len(req.Content))
		return nil, err
	}

	img := RenderImage(matrix, req.renderOptions())

	data, err := serialize(img, matrix, req)
	if err != nil {
		return nil, err
	}

	verified := true
	if g.verify {
		decoded, err := Decode(img)
		switch {
		case err != nil:
			verified = false
			log.Warn("verify_failed",
				"error", err,
				"fill", req.Fill.String(),
				"background", req.Background.String(),
			)
		case decoded != req.Content:
			verified = false
			log.Warn("verify_mismatch",
				"expected_bytes", len(req.Content),
				"decoded_bytes", len(decoded),
			)
		}
	}

	if err := writeFileAtomic(req.OutputPath, data, 0644); err != nil {
		log.Warn("write_failed", "path", req.OutputPath, "error", err)
		return nil, apperr.Wrap(apperr.ErrIO,
			fmt.Sprintf("could not write %s", req.OutputPath), err)
	}

	log.Info("artifact_written",
		"path", req.OutputPath,
		"format", req.Format.String(),
		"bytes", len(data),
		"modules", matrix.Size(),
		"verified", verified,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Artifact{
		Image:    img,
		Data:     data,
		Format:   req.Format,
		Path:     req.OutputPath,
		Modules:  matrix.Size(),
		Verified: verified,
	}, nil
}

func serialize(img image.Image, matrix *Matrix, req Request) ([]byte, error) {
	switch req.Format {
	case FormatSVG:
		return RenderSVG(matrix, req.renderOptions()), nil
	case FormatJPG:
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: req.JPEGQuality}); err != nil {
			return nil, apperr.Wrap(apperr.ErrIO, "encode jpg image", err)
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, apperr.Wrap(apperr.ErrIO, "encode png image", err)
		}
		return buf.Bytes(), nil
	}
}

// writeFileAtomic writes to a temp file in the destination directory and
// renames it into place, so a failed write never leaves a partial file
// at path. Parent directories are not created.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
