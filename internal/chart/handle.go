package chart

import (
	"fmt"
	"sync"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

// Instance is a live chart drawn on a surface.
type Instance interface {
	Destroy()
}

// Surface draws charts onto a canvas.
type Surface interface {
	Draw(canvasID string, cfg Config) (Instance, error)
}

// Handle owns at most one live chart instance.
type Handle struct {
	mu      sync.Mutex
	surface Surface
	active  Instance
}

// NewHandle binds a handle to the surface it draws on.
func NewHandle(surface Surface) *Handle {
	return &Handle{surface: surface}
}

// Render destroys the current chart, if any, then draws a new bar chart from data.
// If drawing fails the handle is left empty.
func (h *Handle) Render(data dto.ChartData) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.releaseLocked()

	instance, err := h.surface.Draw(CanvasID, BarConfig(data))
	if err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}
	h.active = instance
	return nil
}

// Release destroys the current chart, if any.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.releaseLocked()
}

// Active reports whether a chart is currently live.
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active != nil
}

func (h *Handle) releaseLocked() {
	if h.active == nil {
		return
	}
	h.active.Destroy()
	h.active = nil
}
