package testutil

import (
	"context"
	"sync"

	"github.com/qrstudio/qrstudio/internal/form"
	"github.com/qrstudio/qrstudio/internal/qr"
)

// MockCall records a method invocation with its arguments.
type MockCall struct {
	Method string
	Args   []any
}

// MockGenerator implements form.Generator for testing.
type MockGenerator struct {
	mu    sync.Mutex
	Calls []MockCall

	GenerateFn func(ctx context.Context, req qr.Request) (*qr.Artifact, error)
}

func (m *MockGenerator) Generate(ctx context.Context, req qr.Request) (*qr.Artifact, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Generate", Args: []any{req}})
	m.mu.Unlock()
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return &qr.Artifact{
		Format:   req.Format,
		Path:     req.OutputPath,
		Verified: true,
	}, nil
}

// CallCount returns the number of recorded calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockPathChooser implements ui.PathChooser for testing.
type MockPathChooser struct {
	mu    sync.Mutex
	Calls []MockCall

	ChooseFn func(defaultPath string) (string, bool, error)
}

func (m *MockPathChooser) Choose(defaultPath string) (string, bool, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Choose", Args: []any{defaultPath}})
	m.mu.Unlock()
	if m.ChooseFn != nil {
		return m.ChooseFn(defaultPath)
	}
	return defaultPath, true, nil
}

// MockColorPicker implements ui.ColorPicker for testing.
type MockColorPicker struct {
	mu    sync.Mutex
	Calls []MockCall

	PickFn func(role form.ColorRole, current qr.RGB) (qr.RGB, bool, error)
}

func (m *MockColorPicker) Pick(role form.ColorRole, current qr.RGB) (qr.RGB, bool, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Pick", Args: []any{role, current}})
	m.mu.Unlock()
	if m.PickFn != nil {
		return m.PickFn(role, current)
	}
	return current, true, nil
}
