// Package showcase serves a gallery of the bulma components together with
// interactive demos driven by htmx.
package showcase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/config"
	"github.com/pthm/bulma/lib/encoding"
	"github.com/pthm/bulma/lib/logger"
)

// AppID is the id of the element swapped by in-gallery navigation.
const AppID = "app"

// Showcase is the gallery application.
type Showcase struct {
	cfg      atomic.Pointer[config.Config]
	registry *Registry
	demos    []DemoHandler
	pages    []Page
	metrics  *Metrics
	log      *logger.Logger
}

// New builds the gallery for cfg. metrics may be nil.
func New(cfg *config.Config, log *logger.Logger, metrics *Metrics) (*Showcase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := encoding.Signed
	if cfg.EncryptState {
		mode = encoding.Encrypted
	}
	codec, err := encoding.NewCodec([]byte(cfg.StateKey), mode)
	if err != nil {
		return nil, fmt.Errorf("showcase: state codec: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Showcase{
		metrics: metrics,
		log:     log,
		pages:   pages(),
	}
	s.cfg.Store(cfg)
	s.registry = NewRegistry(codec, metrics, log)
	s.demos = Demos(func() bulma.Color { return s.Config().AccentValue() })
	s.registry.Add(s.demos...)
	return s, nil
}

// Config returns the configuration in effect.
func (s *Showcase) Config() *config.Config {
	return s.cfg.Load()
}

// SetConfig swaps the configuration used by subsequent renders. The state
// key and listen address are fixed at startup; changes to them are logged
// and ignored until restart.
func (s *Showcase) SetConfig(cfg *config.Config) {
	old := s.cfg.Load()
	if cfg.StateKey != old.StateKey || cfg.EncryptState != old.EncryptState {
		s.log.Warn("state key changes take effect after restart")
		next := *cfg
		next.StateKey, next.EncryptState = old.StateKey, old.EncryptState
		cfg = &next
	}
	if cfg.Addr != old.Addr {
		s.log.Warn("listen address changes take effect after restart")
	}
	s.cfg.Store(cfg)
	s.log.WithFields(map[string]any{"theme": cfg.Theme, "accent": cfg.Accent}).Info("configuration reloaded")
}

// Pages lists the gallery pages in menu order.
func (s *Showcase) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Registry is the demo router.
func (s *Showcase) Registry() *Registry {
	return s.registry
}

func (s *Showcase) lookup(slug string) (Page, bool) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Page renders the complete HTML document for the page slug.
func (s *Showcase) Page(slug string) (templ.Component, error) {
	p, ok := s.lookup(slug)
	if !ok {
		return nil, fmt.Errorf("%w: page %s", ErrNotFound, slug)
	}
	return s.document(p), nil
}

func (s *Showcase) document(p Page) templ.Component {
	cfg := s.Config()
	return bulma.Document(bulma.DocumentProps{
		Title:      p.Title + " · " + cfg.Title,
		Theme:      cfg.ThemeValue(),
		Stylesheet: cfg.Stylesheet,
		Icons:      true,
	},
		s.navbar(),
		bulma.Section(bulma.SectionProps{}, s.app(p)),
		ToastContainer(),
	)
}

func (s *Showcase) navbar() templ.Component {
	cfg := s.Config()
	return bulma.Navbar(bulma.NavbarProps{Color: cfg.AccentValue()},
		bulma.NavbarBrand(bulma.Base{},
			bulma.NavbarItem(bulma.NavbarItemProps{To: pageLink("/")},
				bulma.Title(bulma.TitleProps{Size: bulma.H5, Base: bulma.Base{Class: "has-text-white"}}, bulma.Text(cfg.Title)),
			),
			bulma.NavbarBurger(bulma.NavbarBurgerProps{Target: "main-navbar"}),
		),
		bulma.NavbarMenu(bulma.NavbarMenuProps{Base: bulma.Base{ID: "main-navbar"}},
			bulma.NavbarEnd(bulma.Base{},
				bulma.NavbarItem(bulma.NavbarItemProps{To: pageLink("/docs")}, bulma.Text("Guide")),
				bulma.NavbarItem(bulma.NavbarItemProps{Href: "https://bulma.io/documentation/"}, bulma.Text("Bulma docs")),
			),
		),
	)
}

// app is the part of the page replaced on navigation: the menu and the
// page body.
func (s *Showcase) app(current Page) templ.Component {
	items := make([]templ.Component, 0, len(s.pages))
	for _, p := range s.pages {
		items = append(items, bulma.MenuItem(bulma.MenuItemProps{Active: p.Slug == current.Slug, To: pageLink(p.Path())},
			bulma.Icon(bulma.IconProps{Name: p.Icon, Size: bulma.SizeSmall}),
			bulma.Text(p.Title),
		))
	}
	return bulma.Columns(bulma.ColumnsProps{Base: bulma.Base{ID: AppID}},
		bulma.Column(bulma.ColumnProps{Size: bulma.ColumnOneFifth},
			bulma.Menu(bulma.Base{},
				bulma.MenuLabel(bulma.Base{}, bulma.Text("Gallery")),
				bulma.MenuList(bulma.Base{}, items...),
			),
		),
		bulma.Column(bulma.ColumnProps{},
			bulma.Title(bulma.TitleProps{Size: bulma.H2}, bulma.Text(current.Title)),
			current.body(s),
		),
	)
}

// pageLink navigates within the gallery by swapping the app element.
func pageLink(path string) bulma.Link {
	return bulma.To(path).Into("#" + AppID).With(bulma.SwapOuter)
}

// Handler serves the gallery pages, the demo operations and, when
// enabled, Prometheus metrics.
func (s *Showcase) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.registry.Prefix(), s.registry.Handler())
	mux.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Config().Metrics || s.metrics == nil {
			http.NotFound(w, r)
			return
		}
		s.metrics.Handler().ServeHTTP(w, r)
	}))
	mux.HandleFunc("/", s.servePage)
	return mux
}

func (s *Showcase) servePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	slug := strings.Trim(r.URL.Path, "/")
	if slug == "" {
		slug = "home"
	}
	p, ok := s.lookup(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Navigation inside the gallery only needs the app element; history
	// restores and direct loads get the whole document.
	w.Header().Set("Vary", "HX-Request, HX-Target, HX-History-Restore-Request")
	var c templ.Component
	if bulma.IsHTMX(r) && !bulma.IsHistoryRestore(r) && bulma.TargetID(r) == AppID {
		c = s.app(p)
	} else {
		c = s.document(p)
	}

	start := time.Now()
	err := s.render(r.Context(), w, c)
	s.metrics.PageRendered(p.Slug, time.Since(start), err)
	if err != nil {
		s.log.WithFields(map[string]any{"page": p.Slug}).Error(err, "page render failed")
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

func (s *Showcase) render(ctx context.Context, w http.ResponseWriter, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}
