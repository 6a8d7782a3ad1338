package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingService appends its lifecycle calls to a shared log
type recordingService struct {
	name       string
	startError error
	calls      *[]string
}

func (s *recordingService) Start(ctx context.Context) error {
	*s.calls = append(*s.calls, "start "+s.name)
	return s.startError
}

func (s *recordingService) Stop() {
	*s.calls = append(*s.calls, "stop "+s.name)
}

func newRecordingRegistry(calls *[]string, startErrors map[string]error, names ...string) *Registry {
	registry := NewRegistry()
	for _, name := range names {
		registry.Register(name, &recordingService{name: name, startError: startErrors[name], calls: calls})
	}
	return registry
}

func TestRegistry_Names(t *testing.T) {
	var calls []string
	registry := newRecordingRegistry(&calls, nil, "markets", "dashboard", "api")

	assert.Equal(t, []string{"markets", "dashboard", "api"}, registry.Names())
	assert.Empty(t, calls)
}

func TestRegistry_StartAllThenStopAll(t *testing.T) {
	var calls []string
	registry := newRecordingRegistry(&calls, nil, "markets", "dashboard", "api")

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()

	assert.Equal(t, []string{
		"start markets", "start dashboard", "start api",
		"stop api", "stop dashboard", "stop markets",
	}, calls)
}

func TestRegistry_StartAllRollsBackOnFailure(t *testing.T) {
	var calls []string
	startErr := errors.New("port in use")
	registry := newRecordingRegistry(&calls, map[string]error{"jobs": startErr}, "markets", "dashboard", "jobs", "api")

	err := registry.StartAll(context.Background())

	require.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "starting jobs")
	// Only services that started are stopped, newest first; api is never touched
	assert.Equal(t, []string{
		"start markets", "start dashboard", "start jobs",
		"stop dashboard", "stop markets",
	}, calls)

	// Nothing left running
	registry.StopAll()
	assert.Len(t, calls, 5)
}

func TestRegistry_StopAllWithoutStart(t *testing.T) {
	var calls []string
	registry := newRecordingRegistry(&calls, nil, "markets", "api")

	registry.StopAll()

	assert.Empty(t, calls)
}

func TestRegistry_StopAllTwice(t *testing.T) {
	var calls []string
	registry := newRecordingRegistry(&calls, nil, "markets")

	require.NoError(t, registry.StartAll(context.Background()))
	registry.StopAll()
	registry.StopAll()

	assert.Equal(t, []string{"start markets", "stop markets"}, calls)
}
