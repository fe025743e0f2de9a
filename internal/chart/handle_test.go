package chart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-dashboard/internal/dto"
)

type fakeSurface struct {
	live    int
	created int
	configs []Config
	fail    bool
}

type fakeInstance struct {
	surface   *fakeSurface
	destroyed bool
}

func (i *fakeInstance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.surface.live--
}

func (s *fakeSurface) Draw(canvasID string, cfg Config) (Instance, error) {
	if s.fail {
		return nil, errors.New("canvas gone")
	}
	if canvasID != CanvasID {
		return nil, errors.New("unexpected canvas")
	}
	s.live++
	s.created++
	s.configs = append(s.configs, cfg)
	return &fakeInstance{surface: s}, nil
}

func sampleData() dto.ChartData {
	return dto.ChartData{
		Labels:   []string{"ana", "ben"},
		Datasets: []dto.ChartDataset{{Label: "Physics", Data: []float64{14, 18}}},
	}
}

func TestRenderTwiceKeepsOneLiveInstance(t *testing.T) {
	surface := &fakeSurface{}
	handle := NewHandle(surface)

	require.NoError(t, handle.Render(sampleData()))
	require.NoError(t, handle.Render(sampleData()))

	require.Equal(t, 2, surface.created)
	require.Equal(t, 1, surface.live)
	require.True(t, handle.Active())
}

func TestReleaseDestroysInstance(t *testing.T) {
	surface := &fakeSurface{}
	handle := NewHandle(surface)

	handle.Release()
	require.False(t, handle.Active())

	require.NoError(t, handle.Render(sampleData()))
	handle.Release()
	require.Zero(t, surface.live)
	require.False(t, handle.Active())
}

func TestRenderFailureLeavesHandleEmpty(t *testing.T) {
	surface := &fakeSurface{}
	handle := NewHandle(surface)
	require.NoError(t, handle.Render(sampleData()))

	surface.fail = true
	require.Error(t, handle.Render(sampleData()))
	require.Zero(t, surface.live)
	require.False(t, handle.Active())
}

func TestBarConfigFixedOptions(t *testing.T) {
	surface := &fakeSurface{}
	handle := NewHandle(surface)
	require.NoError(t, handle.Render(sampleData()))

	cfg := surface.configs[0]
	require.Equal(t, "bar", cfg.Type)
	require.Equal(t, sampleData(), cfg.Data)
	require.True(t, cfg.Options.Scales.Y.BeginAtZero)
	require.Equal(t, "Average Score", cfg.Options.Scales.Y.Title.Text)
	require.Equal(t, "top", cfg.Options.Plugins.Legend.Position)
	require.Equal(t, "Class Performance by Subject", cfg.Options.Plugins.Title.Text)

	encoded, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"beginAtZero":true`)
	require.Contains(t, string(encoded), `"position":"top"`)
}
