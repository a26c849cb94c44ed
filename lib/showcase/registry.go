package showcase

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pthm/bulma/lib/encoding"
	"github.com/pthm/bulma/lib/logger"
)

// Registry routes demo operations. Mount its Handler at Prefix.
type Registry struct {
	mu      sync.RWMutex
	codec   *encoding.Codec
	demos   map[string]DemoHandler
	prefix  string
	metrics *Metrics
	log     *logger.Logger

	// OnError writes the response for a failed operation.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry sealing demo state with codec.
func NewRegistry(codec *encoding.Codec, metrics *Metrics, log *logger.Logger) *Registry {
	reg := &Registry{
		codec:   codec,
		demos:   make(map[string]DemoHandler),
		prefix:  "/demo/",
		metrics: metrics,
		log:     log,
	}
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "Not found", http.StatusNotFound)
		case errors.Is(err, ErrBadState):
			http.Error(w, "Bad request", http.StatusBadRequest)
		default:
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}
	return reg
}

// Prefix is the path the registry's routes live under.
func (reg *Registry) Prefix() string {
	return reg.prefix
}

// Add registers demos. It panics on a duplicate name.
func (reg *Registry) Add(demos ...DemoHandler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, d := range demos {
		if _, exists := reg.demos[d.Name()]; exists {
			panic(fmt.Sprintf("showcase: duplicate demo %q", d.Name()))
		}
		d.bind(reg.codec, reg.prefix)
		reg.demos[d.Name()] = d
	}
}

// Names lists the registered demos, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.demos))
	for name := range reg.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (reg *Registry) lookup(name string) (DemoHandler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	d, ok := reg.demos[name]
	return d, ok
}

// Handler serves POST {prefix}{demo}/{op}. Operations must come from htmx:
// requests without HX-Request are rejected, which also keeps plain
// cross-site form posts out.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("HX-Request") != "true" {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}

		name, op, ok := strings.Cut(strings.TrimPrefix(r.URL.Path, reg.prefix), "/")
		if !ok || name == "" || op == "" {
			reg.OnError(w, r, fmt.Errorf("%w: %s", ErrNotFound, r.URL.Path))
			return
		}
		d, found := reg.lookup(name)
		if !found {
			reg.OnError(w, r, fmt.Errorf("%w: demo %s", ErrNotFound, name))
			return
		}

		start := time.Now()
		out, err := d.serve(w, r, op)
		label := op
		if errors.Is(err, ErrNotFound) {
			label = "unknown"
		}
		reg.metrics.DemoOperation(name, label, time.Since(start), out.flashes, err)
		if err != nil {
			reg.log.WithFields(map[string]any{"demo": name, "op": op}).Error(err, "demo operation failed")
			reg.OnError(w, r, err)
		}
	})
}
