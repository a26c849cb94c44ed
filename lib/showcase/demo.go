package showcase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/a-h/templ"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/encoding"
)

// Errors returned by demo routing.
var (
	// ErrNotFound is returned for unknown demos and operations.
	ErrNotFound = errors.New("showcase: not found")
	// ErrBadState is returned when the state token is missing or was tampered with.
	ErrBadState = errors.New("showcase: invalid demo state")
)

// StateField is the form field carrying a demo's sealed state.
const StateField = "state"

// Op changes a demo's state in response to a request.
type Op[S any] func(ctx context.Context, state S, r *http.Request) Result[S]

// View renders a demo for one state. It is handed the state and builds
// the Actions that call back into the demo.
type View[S any] func(v *Frame[S]) templ.Component

// Demo is an interactive example whose state lives in the page.
//
// The server keeps nothing between requests. Every rendering seals the
// state into the Actions it emits, and each operation opens it, applies a
// change and renders the demo again in place.
type Demo[S any] struct {
	name    string
	title   string
	initial S
	ops     map[string]Op[S]
	view    View[S]
	codec   *encoding.Codec
	prefix  string
}

// NewDemo creates a demo called name, rendered by view.
func NewDemo[S any](name, title string, initial S, view View[S]) *Demo[S] {
	return &Demo[S]{
		name:    name,
		title:   title,
		initial: initial,
		ops:     make(map[string]Op[S]),
		view:    view,
		prefix:  "/demo/",
	}
}

// On registers an operation.
func (d *Demo[S]) On(op string, fn Op[S]) *Demo[S] {
	d.ops[op] = fn
	return d
}

// Name returns the demo's route name.
func (d *Demo[S]) Name() string { return d.name }

// Title returns the demo's display title.
func (d *Demo[S]) Title() string { return d.title }

// Ops lists the registered operations, sorted.
func (d *Demo[S]) Ops() []string {
	ops := make([]string, 0, len(d.ops))
	for op := range d.ops {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// ElementID is the id of the demo's root element, the target of its Actions.
func (d *Demo[S]) ElementID() string {
	return "demo-" + d.name
}

func (d *Demo[S]) bind(codec *encoding.Codec, prefix string) {
	d.codec = codec
	d.prefix = prefix
}

// Initial renders the demo in its initial state.
func (d *Demo[S]) Initial() templ.Component {
	return d.Render(d.initial)
}

// Render renders the demo for state.
func (d *Demo[S]) Render(state S) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.codec == nil {
			return fmt.Errorf("showcase: demo %q is not registered", d.name)
		}
		token, err := d.codec.Seal(state)
		if err != nil {
			return err
		}
		frame := &Frame[S]{State: state, demo: d, token: token}
		return bulma.Box(bulma.Base{ID: d.ElementID()}, d.view(frame)).Render(ctx, w)
	})
}

// serve opens the state, runs op and writes the re-rendered demo.
func (d *Demo[S]) serve(w http.ResponseWriter, r *http.Request, op string) (demoOutcome, error) {
	fn, ok := d.ops[op]
	if !ok {
		return demoOutcome{}, fmt.Errorf("%w: %s/%s", ErrNotFound, d.name, op)
	}
	if err := r.ParseForm(); err != nil {
		return demoOutcome{}, fmt.Errorf("%w: %v", ErrBadState, err)
	}
	var state S
	if err := d.codec.Open(r.PostForm.Get(StateField), &state); err != nil {
		return demoOutcome{}, fmt.Errorf("%w: %v", ErrBadState, err)
	}

	res := fn(r.Context(), state, r)
	if res.err != nil {
		return demoOutcome{}, res.err
	}
	// Render into a buffer so a failed render can still become an error response.
	var buf bytes.Buffer
	if err := bulma.Group(d.Render(res.state), flashesOOB(res.flashes)).Render(r.Context(), &buf); err != nil {
		return demoOutcome{}, err
	}
	res.apply(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if res.status != 0 {
		w.WriteHeader(res.status)
	}
	_, err := w.Write(buf.Bytes())
	return demoOutcome{flashes: len(res.flashes)}, err
}

type demoOutcome struct {
	flashes int
}

// Frame is what a View sees: the current state and the means to act on it.
type Frame[S any] struct {
	State S
	demo  *Demo[S]
	token string
}

// Do returns the Action running op on the current state. The response
// replaces the whole demo.
func (f *Frame[S]) Do(op string) bulma.Action {
	return f.DoWith(op, nil)
}

// DoWith is Do with extra form values, read by the operation from the request.
func (f *Frame[S]) DoWith(op string, vals map[string]any) bulma.Action {
	all := map[string]any{StateField: f.token}
	for k, v := range vals {
		all[k] = v
	}
	return bulma.Post(f.demo.prefix+f.demo.name+"/"+op).
		Vals(all).
		Target("#" + f.demo.ElementID()).
		Swap(bulma.SwapOuter)
}

// Token is the sealed current state.
func (f *Frame[S]) Token() string {
	return f.token
}

// DemoHandler is the type-erased view of a Demo held by the registry. Only
// *Demo implements it.
type DemoHandler interface {
	Name() string
	Title() string
	Ops() []string
	Initial() templ.Component
	bind(codec *encoding.Codec, prefix string)
	serve(w http.ResponseWriter, r *http.Request, op string) (demoOutcome, error)
}

var _ DemoHandler = (*Demo[struct{}])(nil)
