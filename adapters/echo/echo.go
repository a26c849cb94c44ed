// Package bulmaecho provides Echo framework integration for bulma
// components and the showcase.
//
// Render components from Echo handlers:
//
//	func handler(c echo.Context) error {
//	    return bulmaecho.Render(c, bulma.Notification(bulma.NotificationProps{}, bulma.Text("Saved")))
//	}
//
// Mount a plain http.Handler, such as the showcase, under a path:
//
//	e := echo.New()
//	e.Use(bulmaecho.RequestLogger(log))
//	bulmaecho.Mount(e, app.Handler(), bulmaecho.WithPath("/ui/"))
package bulmaecho

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Option configures Mount and MountGroup.
type Option func(*options)

type options struct {
	path string
}

// WithPath sets the URL path prefix the handler is mounted at.
// Defaults to "/". The prefix is stripped before the handler sees the request.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func newOptions(opts []Option) *options {
	o := &options{path: "/"}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasPrefix(o.path, "/") {
		o.path = "/" + o.path
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}
	return o
}

// Mount serves h for every method below the configured path on an Echo instance.
//
//	e := echo.New()
//	bulmaecho.Mount(e, app.Handler())
func Mount(e *echo.Echo, h http.Handler, opts ...Option) {
	o := newOptions(opts)
	e.Any(o.path+"*", wrap(h))
}

// MountGroup is Mount for an Echo group, so the handler shares the
// group's middleware. The group prefix is stripped too.
//
//	g := e.Group("/admin", authMiddleware)
//	bulmaecho.MountGroup(g, app.Handler())
func MountGroup(g *echo.Group, h http.Handler, opts ...Option) {
	o := newOptions(opts)
	g.Any(o.path+"*", wrap(h))
}

// wrap hands h the request with its path rewritten to the wildcard part
// of the route.
func wrap(h http.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		if rest := "/" + c.Param("*"); rest != r.URL.Path {
			u := *r.URL
			u.Path, u.RawPath = rest, ""
			r2 := new(http.Request)
			*r2 = *r
			r2.URL = &u
			r = r2
		}
		h.ServeHTTP(c.Response(), r)
		return nil
	}
}

// Render writes a templ component to the Echo response with status 200.
//
//	func handler(c echo.Context) error {
//	    return bulmaecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	return RenderStatus(c, http.StatusOK, component)
}

// RenderStatus writes a templ component with the given status. The
// component is rendered before anything is written, so a failed render
// leaves the response untouched for Echo's error handler.
func RenderStatus(c echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
