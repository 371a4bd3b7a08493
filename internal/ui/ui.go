package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	apperr "github.com/qrstudio/qrstudio/internal/errors"
	"github.com/qrstudio/qrstudio/internal/form"
	"github.com/qrstudio/qrstudio/internal/logging"
	"github.com/qrstudio/qrstudio/internal/qr"
)

// Options configures a UI. Zero-value readers and writers fall back to
// the process streams; nil Chooser and Picker fall back to terminal
// prompts sharing the UI's input.
type Options struct {
	Input   io.Reader
	Output  io.Writer
	Logger  *slog.Logger
	Ring    *logging.Ring
	Form    *form.Form
	Initial form.Model
	Chooser PathChooser
	Picker  ColorPicker

	PreviewEnabled bool
	PreviewWidth   int
}

// UI runs the interactive form: a menu loop that edits the model
// through messages and hands generation off to the form's command.
type UI struct {
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
	ring    *logging.Ring
	form    *form.Form
	model   form.Model
	chooser PathChooser
	picker  ColorPicker

	previewEnabled bool
	previewWidth   int
}

func New(opts Options) *UI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = 72
	}

	in := bufio.NewReader(opts.Input)
	u := &UI{
		in:             in,
		out:            opts.Output,
		logger:         opts.Logger.With("component", "ui"),
		ring:           opts.Ring,
		form:           opts.Form,
		model:          opts.Initial,
		chooser:        opts.Chooser,
		picker:         opts.Picker,
		previewEnabled: opts.PreviewEnabled,
		previewWidth:   opts.PreviewWidth,
	}
	if u.chooser == nil {
		u.chooser = &promptPathChooser{in: in, out: u.out}
	}
	if u.picker == nil {
		u.picker = &promptColorPicker{in: in, out: u.out}
	}
	return u
}

// Model returns the current form model.
func (u *UI) Model() form.Model {
	return u.model
}

// Run drives the menu loop until the user quits or input ends.
func (u *UI) Run(ctx context.Context) error {
	u.logger.Info("session_started")
	fmt.Fprintln(u.out, "qrstudio")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.printMenu()
		fmt.Fprint(u.out, "> ")

		line, err := readLine(u.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				u.quit()
				return nil
			}
			return err
		}

		switch strings.ToLower(line) {
		case "":
			// reprint the menu
		case "1", "text":
			u.editContent()
		case "2", "fill":
			u.pickColor(form.RoleFill)
		case "3", "background":
			u.pickColor(form.RoleBackground)
		case "4", "format":
			u.chooseFormat()
		case "5", "path":
			u.choosePath()
		case "g", "generate":
			u.generate()
		case "q", "quit", "exit":
			u.quit()
			return nil
		default:
			fmt.Fprintf(u.out, "❌ Unknown choice %q\n", line)
		}
	}
}

func (u *UI) printMenu() {
	m := u.model
	content := truncate(m.Content, 48)
	if content == "" {
		content = "(empty)"
	}

	fmt.Fprintln(u.out)
	fmt.Fprintf(u.out, "  [1] Text:       %s\n", content)
	fmt.Fprintf(u.out, "  [2] Fill:       %s\n", m.Fill)
	fmt.Fprintf(u.out, "  [3] Background: %s\n", m.Background)
	fmt.Fprintf(u.out, "  [4] Format:     %s\n", strings.ToUpper(m.Format.String()))
	fmt.Fprintf(u.out, "  [5] Save to:    %s\n", m.OutputPath)
	fmt.Fprintln(u.out, "  [g] Generate  [q] Quit")
}

func (u *UI) editContent() {
	fmt.Fprint(u.out, "Enter text to encode: ")
	line, err := readLine(u.in)
	if err != nil {
		return
	}
	if line == "" {
		fmt.Fprintln(u.out, "❌ Nothing entered, keeping current text")
		return
	}
	u.dispatch(form.SetContentMsg{Text: line})
}

func (u *UI) pickColor(role form.ColorRole) {
	current := u.model.Fill
	if role == form.RoleBackground {
		current = u.model.Background
	}

	c, ok, err := u.picker.Pick(role, current)
	if err != nil {
		fmt.Fprintf(u.out, "❌ %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(u.out, "Canceled")
		return
	}
	u.dispatch(form.SetColorMsg{Role: role, Color: c})
}

func (u *UI) chooseFormat() {
	formats := qr.Formats()
	fmt.Fprintln(u.out, "Formats:")
	for i, f := range formats {
		fmt.Fprintf(u.out, "  [%d] %s\n", i+1, strings.ToUpper(f.String()))
	}
	fmt.Fprintf(u.out, "Choose format [%s]: ", u.model.Format)

	line, err := readLine(u.in)
	if err != nil || line == "" {
		return
	}

	var f qr.Format
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(formats) {
			fmt.Fprintf(u.out, "❌ Unknown format %q\n", line)
			return
		}
		f = formats[n-1]
	} else {
		parsed, err := qr.ParseFormat(line)
		if err != nil {
			fmt.Fprintf(u.out, "❌ %v\n", err)
			return
		}
		f = parsed
	}
	u.dispatch(form.SetFormatMsg{Format: f})
}

// choosePath runs the chooser and applies the result. It reports
// whether a path was chosen.
func (u *UI) choosePath() bool {
	path, ok, err := u.chooser.Choose(u.model.OutputPath)
	if err != nil {
		fmt.Fprintf(u.out, "❌ %v\n", err)
		return false
	}
	if !ok || path == "" {
		fmt.Fprintln(u.out, "Canceled")
		return false
	}
	u.dispatch(form.SetOutputPathMsg{Path: path})
	return true
}

// generate submits the form. When the target file already exists the
// user decides: overwrite it, pick another location, or abort.
func (u *UI) generate() {
	for {
		path := u.model.OutputPath
		if path == "" {
			if !u.choosePath() {
				return
			}
			continue
		}
		if _, err := os.Stat(path); err != nil {
			break
		}

		answer := u.confirmOverwrite(path)
		if answer == answerCancel {
			fmt.Fprintln(u.out, "Canceled")
			return
		}
		if answer == answerYes {
			break
		}
		if !u.choosePath() {
			return
		}
	}

	fmt.Fprintln(u.out, "Generating...")
	u.dispatch(form.SubmitMsg{})

	switch u.model.State {
	case form.StateSuccess:
		a := u.model.Artifact
		fmt.Fprintf(u.out, "✅ Saved %s (%d bytes)\n", a.Path, len(a.Data))
		if !a.Verified {
			fmt.Fprintln(u.out, "⚠️  Could not confirm the code scans, check the color contrast")
		}
		u.showPreview(a)
	case form.StateError:
		fmt.Fprintf(u.out, "❌ %s\n", apperr.UserMessage(u.model.Err))
	}
}

type overwriteAnswer int

const (
	answerYes overwriteAnswer = iota
	answerNo
	answerCancel
)

func (u *UI) confirmOverwrite(path string) overwriteAnswer {
	fmt.Fprintf(u.out, "%s exists. Overwrite? [y/n/cancel]: ", path)
	for {
		line, err := readLine(u.in)
		if err != nil {
			return answerCancel
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return answerYes
		case "n", "no":
			return answerNo
		case "c", "cancel":
			return answerCancel
		default:
			fmt.Fprint(u.out, "Overwrite? [y/n/cancel]: ")
		}
	}
}

// dispatch feeds msg through the form and runs any returned command on
// a worker goroutine, delivering its result back into the form before
// returning.
func (u *UI) dispatch(msg form.Msg) {
	m, cmd := u.form.Update(u.model, msg)
	u.model = m
	if cmd == nil {
		return
	}

	results := make(chan form.Msg, 1)
	go func() { results <- cmd() }()
	u.model, _ = u.form.Update(u.model, <-results)
}

func (u *UI) showPreview(a *qr.Artifact) {
	if !u.previewEnabled || a.Image == nil {
		return
	}
	cols := a.Modules + 2*u.model.Border
	if cols > u.previewWidth {
		cols = u.previewWidth
	}
	fmt.Fprint(u.out, RenderPreview(a.Image, cols))
}

func (u *UI) quit() {
	if u.ring != nil && u.ring.Len() > 0 {
		recent := u.ring.Recent(1)
		fmt.Fprintf(u.out, "⚠️  %d warning(s) this session, last: %s\n", u.ring.Len(), recent[0].Message)
	}
	u.logger.Info("session_ended")
	fmt.Fprintln(u.out, "Bye")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
