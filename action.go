package bulma

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Action is what happens when a user activates an element: an htmx request
// to the server, an inline script, or a set of ready-made attributes.
//
// Components take Actions wherever a client-side library would take an
// event callback:
//
//	bulma.Button(bulma.ButtonProps{
//	    OnClick: bulma.Post("/cart/add").Target("#cart").Swap(bulma.SwapOuter),
//	}, bulma.Text("Add"))
//
// The zero Action does nothing and binds nothing.
//
// Action is a value type. Each method returns an updated copy, so a base
// action can be shared and refined:
//
//	save := bulma.Post("/doc/save").Target("#doc")
//	bulma.Button(bulma.ButtonProps{OnClick: save.Confirm("Overwrite?")})
type Action struct {
	method  string
	url     string
	target  string
	swap    SwapMode
	sel     string
	vals    map[string]any
	include string
	confirm string
	pushURL bool
	script  string
	attrs   templ.Attributes
}

// Get returns an action issuing an htmx GET to url.
func Get(url string) Action {
	return Request(http.MethodGet, url)
}

// Post returns an action issuing an htmx POST to url.
func Post(url string) Action {
	return Request(http.MethodPost, url)
}

// Request returns an action issuing an htmx request with any method.
//
//	bulma.Request(http.MethodDelete, "/items/42").Swap(bulma.SwapDelete)
func Request(method, url string) Action {
	return Action{method: strings.ToUpper(method), url: url}
}

// Script returns an action running inline JavaScript, rendered as an
// on<event> attribute.
//
//	bulma.Script("this.closest('.modal').classList.remove('is-active')")
func Script(js string) Action {
	return Action{script: js}
}

// Attrs returns an action contributing prebuilt attributes, such as those
// built by another htmx helper library. hx-trigger is set to the bound event
// unless attrs already carries one.
func Attrs(attrs templ.Attributes) Action {
	return Action{attrs: attrs}
}

// Target sets hx-target.
func (a Action) Target(selector string) Action {
	a.target = selector
	return a
}

// Swap sets hx-swap.
func (a Action) Swap(mode SwapMode) Action {
	a.swap = mode
	return a
}

// Select sets hx-select, picking a fragment out of the response.
func (a Action) Select(selector string) Action {
	a.sel = selector
	return a
}

// Vals sets hx-vals, extra values sent with the request.
func (a Action) Vals(vals map[string]any) Action {
	a.vals = vals
	return a
}

// Include sets hx-include.
func (a Action) Include(selector string) Action {
	a.include = selector
	return a
}

// Confirm asks the user before issuing the request.
func (a Action) Confirm(message string) Action {
	a.confirm = message
	return a
}

// PushURL pushes the request URL into browser history.
func (a Action) PushURL() Action {
	a.pushURL = true
	return a
}

// IsZero reports whether the action does nothing.
func (a Action) IsZero() bool {
	return a.url == "" && a.script == "" && len(a.attrs) == 0
}

// Method returns the HTTP method, or "" for script and attribute actions.
func (a Action) Method() string {
	if a.url == "" {
		return ""
	}
	return a.method
}

// URL returns the request URL.
func (a Action) URL() string {
	return a.url
}

// HTMX returns the htmx attributes that issue this action when event fires.
// Useful when writing markup by hand in templ files:
//
//	<tr { bulma.Get("/rows/1").HTMX("click")... }>
func (a Action) HTMX(event string) templ.Attributes {
	attrs := templ.Attributes{}
	for _, kv := range bindings(nil).add(event, a).attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func (a Action) isRequest() bool {
	return a.url != ""
}

// sameRequest reports whether a and b would issue identical requests.
func (a Action) sameRequest(b Action) bool {
	if a.method != b.method || a.url != b.url || a.target != b.target ||
		a.swap != b.swap || a.sel != b.sel || a.include != b.include ||
		a.confirm != b.confirm || a.pushURL != b.pushURL {
		return false
	}
	return jsonOf(a.vals) == jsonOf(b.vals)
}

// requestAttrs builds the native hx-* attributes for a request action.
// GET and DELETE carry vals in hx-vals like other methods; htmx moves them
// into the query string itself.
func (a Action) requestAttrs() templ.OrderedAttributes {
	verb := "hx-" + strings.ToLower(a.method)
	if a.method == "" {
		verb = "hx-get"
	}
	out := templ.OrderedAttributes{templ.KV[string, any](verb, a.url)}
	add := func(k, v string) {
		if v != "" {
			out = append(out, templ.KV[string, any](k, v))
		}
	}
	add("hx-target", a.target)
	add("hx-swap", string(a.swap))
	add("hx-select", a.sel)
	if len(a.vals) > 0 {
		add("hx-vals", jsonOf(a.vals))
	}
	add("hx-include", a.include)
	add("hx-confirm", a.confirm)
	if a.pushURL {
		add("hx-push-url", "true")
	}
	return out
}

// ajax renders the request as an htmx.ajax call, for elements whose native
// hx-* slot is already taken by another request.
func (a Action) ajax() string {
	method := a.method
	if method == "" {
		method = http.MethodGet
	}
	opts := map[string]any{"source": "this"}
	if a.target != "" {
		opts["target"] = a.target
	}
	if a.swap != "" {
		opts["swap"] = string(a.swap)
	}
	if a.sel != "" {
		opts["select"] = a.sel
	}
	if len(a.vals) > 0 {
		opts["values"] = a.vals
	}
	// source must be the element itself, not a string.
	js := "htmx.ajax(" + jsonOf(method) + "," + jsonOf(a.url) + "," +
		strings.Replace(jsonOf(opts), `"source":"this"`, `"source":this`, 1) + ")"
	if a.confirm != "" {
		js = "if(confirm(" + jsonOf(a.confirm) + "))" + js
	}
	return js
}

func jsonOf(v any) string {
	if v == nil {
		return ""
	}
	s, err := templ.JSONString(v)
	if err != nil {
		return ""
	}
	return s
}

// binding is one action attached to one or more events of an element.
type binding struct {
	events []string
	action Action
}

// bindings collects the actions bound to a single element.
//
// At most one request can use the element's native hx-* attributes. The
// first request action (or attribute action) claims it, and repeated
// identical requests on other events merge into its hx-trigger list.
// Further distinct requests are emitted as hx-on:<event> handlers calling
// htmx.ajax. Script actions render as on<event> attributes.
type bindings []binding

func (bs bindings) add(event string, a Action) bindings {
	if a.IsZero() {
		return bs
	}
	if a.isRequest() {
		for i := range bs {
			if bs[i].action.isRequest() && bs[i].action.sameRequest(a) {
				bs[i].events = append(bs[i].events, event)
				return bs
			}
		}
	}
	return append(bs, binding{events: []string{event}, action: a})
}

func (bs bindings) attributes() []templ.KeyValue[string, any] {
	var (
		out     []templ.KeyValue[string, any]
		native  bool
		scripts = map[string][]string{}
		order   []string
	)
	pushScript := func(attr, js string) {
		if _, ok := scripts[attr]; !ok {
			order = append(order, attr)
		}
		scripts[attr] = append(scripts[attr], js)
	}

	// Attribute actions first: their attributes are fixed and cannot be
	// rewritten as htmx.ajax calls.
	for _, b := range bs {
		if len(b.action.attrs) == 0 {
			continue
		}
		native = true
		keys := make([]string, 0, len(b.action.attrs))
		for _, kv := range b.action.attrs.Items() {
			keys = append(keys, kv.Key)
			out = append(out, kv)
		}
		if !containsKey(keys, "hx-trigger") {
			out = append(out, templ.KV[string, any]("hx-trigger", strings.Join(b.events, ", ")))
		}
	}

	for _, b := range bs {
		a := b.action
		switch {
		case a.script != "":
			for _, ev := range b.events {
				pushScript("on"+ev, a.script)
			}
		case a.isRequest() && !native:
			native = true
			out = append(out, a.requestAttrs()...)
			out = append(out, templ.KV[string, any]("hx-trigger", strings.Join(b.events, ", ")))
		case a.isRequest():
			for _, ev := range b.events {
				pushScript("hx-on:"+ev, a.ajax())
			}
		}
	}

	for _, attr := range order {
		out = append(out, templ.KV[string, any](attr, strings.Join(scripts[attr], ";")))
	}
	return out
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
