package bulma

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a component to an HTTP response as HTML.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    bulma.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from htmx.
//
// Handlers behind Actions and Links use this to return a fragment instead
// of a full page:
//
//	if bulma.IsHTMX(r) {
//	    return bulma.Render(w, r, content)
//	}
//	return bulma.Render(w, r, layout(content))
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// IsHistoryRestore returns true when htmx is restoring a page that was
// missing from its history cache. Such requests need the full page.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get("HX-History-Restore-Request") == "true"
}

// CurrentURL returns the browser's current URL from HX-Current-URL.
// Returns "" for non-htmx requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name attribute of the element that triggered the request.
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id attribute of the element that triggered the request.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id attribute of the element receiving the response.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// TriggerHeader builds an HX-Trigger response header value.
//
// Without data the bare event name is returned. With data the JSON form
// {"event": data} is used so listeners receive it as evt.detail.
func TriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	return jsonOf(map[string]any{event: data})
}
