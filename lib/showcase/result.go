package showcase

import (
	"net/http"

	"github.com/pthm/bulma"
)

// Result is returned by an Op. It carries the new state and the side
// effects of the response.
//
//	return showcase.OK(state)
//	return showcase.OK(state).Flash(bulma.ColorSuccess, "Counter reset")
//	return showcase.OK(state).Trigger("page:changed", map[string]any{"page": 3})
type Result[S any] struct {
	state       S
	err         error
	flashes     []Flash
	trigger     string
	triggerData map[string]any
	headers     map[string]string
	status      int
}

// OK re-renders the demo with state.
func OK[S any](state S) Result[S] {
	return Result[S]{state: state}
}

// Err fails the request. The registry's OnError writes the response.
func Err[S any](state S, err error) Result[S] {
	return Result[S]{state: state, err: err}
}

// Flash adds a toast, rendered out of band into the ToastContainer.
func (r Result[S]) Flash(color bulma.Color, message string) Result[S] {
	r.flashes = append(r.flashes, Flash{Color: color, Message: message})
	return r
}

// Trigger emits an event via HX-Trigger.
func (r Result[S]) Trigger(event string, data ...map[string]any) Result[S] {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// Header sets a response header.
func (r Result[S]) Header(key, value string) Result[S] {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status sets the HTTP status code. The default is 200.
func (r Result[S]) Status(code int) Result[S] {
	r.status = code
	return r
}

// State returns the new state.
func (r Result[S]) State() S {
	return r.state
}

// Flashes returns the queued toasts.
func (r Result[S]) Flashes() []Flash {
	return r.flashes
}

func (r Result[S]) apply(h http.Header) {
	for k, v := range r.headers {
		h.Set(k, v)
	}
	if r.trigger != "" {
		h.Set("HX-Trigger", bulma.TriggerHeader(r.trigger, r.triggerData))
	}
}
