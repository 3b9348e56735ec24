package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"openpick/domain"
)

// Handler is an external-open interceptor registered into the registry.
// A false result means "not handled, fall back to the default".
type Handler interface {
	OpenExternal(ctx context.Context, href string) (bool, error)
}

// LaunchFunc is the registry's default behavior for a link nothing
// intercepted, typically the system browser.
type LaunchFunc func(ctx context.Context, href string) error

// Registry is the dispatch point every external-open request goes
// through. At most one handler is registered at a time; the coordinator
// registers itself once at startup.
type Registry struct {
	launch LaunchFunc
	log    *zap.Logger

	mu      sync.Mutex
	handler Handler
}

// NewRegistry creates a registry with the given default launcher.
func NewRegistry(launch LaunchFunc, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{launch: launch, log: log}
}

// HandlerRegistration deregisters its handler when disposed.
type HandlerRegistration struct {
	once    sync.Once
	dispose func()
}

// Dispose deregisters the handler. Only the first call has any effect.
func (r *HandlerRegistration) Dispose() {
	r.once.Do(r.dispose)
}

// RegisterHandler installs h as the external-open interceptor,
// replacing any previous one.
func (r *Registry) RegisterHandler(h Handler) *HandlerRegistration {
	r.mu.Lock()
	r.handler = h
	r.mu.Unlock()

	return &HandlerRegistration{dispose: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.handler == h {
			r.handler = nil
		}
	}}
}

func (r *Registry) currentHandler() Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handler
}

// Open routes href through the registered handler, falling back to the
// default launcher when no handler claims it.
func (r *Registry) Open(ctx context.Context, href string) error {
	if href == "" {
		return domain.ErrMissingURL
	}

	if h := r.currentHandler(); h != nil {
		handled, err := h.OpenExternal(ctx, href)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	r.log.Debug("falling back to default launcher", zap.String("url", href))
	return r.launch(ctx, href)
}
