package mocks

import (
	"image"
	"sync"

	"github.com/Jia-cheng-Lin/Photo-Editor/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	ProjectJSON []byte
	Sources     map[string]image.Image
	Composites  map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:    enabled,
		Sources:    make(map[string]image.Image),
		Composites: make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveProjectJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProjectJSON = data
	return nil
}

func (m *DebugSink) SaveSource(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sources[name] = img
	return nil
}

func (m *DebugSink) SaveComposite(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Composites[name] = img
	return nil
}

// CompositeCount returns how many composites were saved.
func (m *DebugSink) CompositeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Composites)
}

var _ ports.DebugSink = (*DebugSink)(nil)
