// Package host is the slice of a game host the generator plugs into: a
// registry of process-wide resources keyed by type, filled by plugins at
// startup.
package host

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrDuplicatePlugin = errors.New("host: plugin already added")
	ErrMissingResource = errors.New("host: resource not found")
)

// Plugin configures an App when it is added.
type Plugin interface {
	Build(app *App) error
}

type App struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
	plugins   map[reflect.Type]struct{}
	logger    *zap.Logger
}

func NewApp(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		resources: make(map[reflect.Type]any),
		plugins:   make(map[reflect.Type]struct{}),
		logger:    logger,
	}
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

// AddPlugins builds each plugin in order.  A plugin type can only be added
// once per App.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		t := reflect.TypeOf(p)

		a.mu.Lock()
		if _, ok := a.plugins[t]; ok {
			a.mu.Unlock()
			return fmt.Errorf("%w: %v", ErrDuplicatePlugin, t)
		}
		a.plugins[t] = struct{}{}
		a.mu.Unlock()

		if err := p.Build(a); err != nil {
			return fmt.Errorf("build plugin %v: %w", t, err)
		}
		a.logger.Debug("plugin added", zap.Stringer("plugin", t))
	}
	return nil
}

// Insert stores v in the slot for T, replacing any previous value.
func Insert[T any](a *App, v T) {
	a.mu.Lock()
	a.resources[reflect.TypeFor[T]()] = v
	a.mu.Unlock()
}

// Resource returns the value in the slot for T.
func Resource[T any](a *App) (T, bool) {
	a.mu.RLock()
	v, ok := a.resources[reflect.TypeFor[T]()]
	a.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResource is Resource for slots filled at startup.
// Panics with an error wrapping ErrMissingResource if the slot is empty.
func MustResource[T any](a *App) T {
	v, ok := Resource[T](a)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrMissingResource, reflect.TypeFor[T]()))
	}
	return v
}
