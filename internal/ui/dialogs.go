package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qrstudio/qrstudio/internal/form"
	"github.com/qrstudio/qrstudio/internal/qr"
)

// PathChooser picks the output path for the next generation. ok is
// false when the user cancels.
type PathChooser interface {
	Choose(defaultPath string) (path string, ok bool, err error)
}

// ColorPicker picks a color for the given role. ok is false when the
// user cancels.
type ColorPicker interface {
	Pick(role form.ColorRole, current qr.RGB) (qr.RGB, bool, error)
}

// promptPathChooser asks for a path on the terminal. Empty input keeps
// the default; "cancel" or end of input cancels. A leading ~ expands to
// the home directory.
type promptPathChooser struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptPathChooser) Choose(defaultPath string) (string, bool, error) {
	fmt.Fprintf(p.out, "Save to [%s]: ", defaultPath)

	line, err := readLine(p.in)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}

	path := line
	if path == "" {
		path = defaultPath
	}
	if strings.EqualFold(path, "cancel") {
		return "", false, nil
	}

	return expandHome(path), true, nil
}

// promptColorPicker asks for a hex value or color name, re-prompting on
// invalid input. Empty input keeps the current color.
type promptColorPicker struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptColorPicker) Pick(role form.ColorRole, current qr.RGB) (qr.RGB, bool, error) {
	fmt.Fprintf(p.out, "Colors: %s\n", strings.Join(qr.ColorNames(), ", "))
	fmt.Fprintf(p.out, "Enter %s color (hex or name) [%s]: ", role, current)

	for {
		line, err := readLine(p.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return qr.RGB{}, false, nil
			}
			return qr.RGB{}, false, err
		}

		if line == "" {
			return current, true, nil
		}
		if strings.EqualFold(line, "cancel") {
			return qr.RGB{}, false, nil
		}

		c, err := qr.ParseRGB(line)
		if err != nil {
			fmt.Fprintf(p.out, "❌ %v\n", err)
			fmt.Fprintf(p.out, "Enter %s color [%s]: ", role, current)
			continue
		}
		return c, true, nil
	}
}

// readLine reads one line and strips surrounding whitespace. A final
// unterminated line before EOF is still returned.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// DefaultOutputPath builds the initial save path: the configured
// directory if set, else the user's Dokumente or Documents folder when
// one exists, else the home directory.
func DefaultOutputPath(dir, filename string) string {
	if dir == "" {
		dir = documentsDir()
	}
	return filepath.Join(dir, filename)
}

func documentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	for _, name := range []string{"Dokumente", "Documents"} {
		p := filepath.Join(home, name)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return home
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
