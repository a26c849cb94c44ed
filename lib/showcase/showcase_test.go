package showcase

import (
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/config"
	"github.com/pthm/bulma/lib/encoding"
	"github.com/pthm/bulma/lib/logger"
)

func newShowcase(t *testing.T) (*Showcase, *config.Config) {
	t.Helper()
	cfg := config.Default()
	s, err := New(cfg, logger.Nop(), NewMetrics(prom.NewRegistry()))
	require.NoError(t, err)
	return s, cfg
}

func seal(t *testing.T, cfg *config.Config, v any) string {
	t.Helper()
	codec, err := encoding.NewCodec([]byte(cfg.StateKey), encoding.Signed)
	require.NoError(t, err)
	token, err := codec.Seal(v)
	require.NoError(t, err)
	return token
}

func get(h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func post(h http.Handler, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var hxVals = regexp.MustCompile(`hx-vals="([^"]+)"`)

// stateFrom pulls the sealed state out of the first hx-vals in body.
func stateFrom(t *testing.T, body string) string {
	t.Helper()
	m := hxVals.FindStringSubmatch(body)
	require.NotNil(t, m, "no hx-vals in %s", body)
	var vals map[string]any
	require.NoError(t, json.Unmarshal([]byte(html.UnescapeString(m[1])), &vals))
	token, ok := vals[StateField].(string)
	require.True(t, ok)
	return token
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.StateKey = "short"
	_, err := New(cfg, nil, nil)
	assert.Error(t, err)
}

func TestPagesRender(t *testing.T) {
	s, _ := newShowcase(t)
	h := s.Handler()
	for _, p := range s.Pages() {
		t.Run(p.Slug, func(t *testing.T) {
			rec := get(h, p.Path(), nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
			assert.Contains(t, body, `id="app"`)
			assert.Contains(t, body, `id="toasts"`)
			assert.Contains(t, body, "<title>"+p.Title)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestPageMenuMarksCurrent(t *testing.T) {
	s, _ := newShowcase(t)
	p, ok := s.lookup("forms")
	require.True(t, ok)
	result, err := bulma.TestRender(s.app(p))
	require.NoError(t, err)

	active := result.Find("a.is-active")
	require.Len(t, active, 1)
	for attr, want := range map[string]string{"href": "/forms", "hx-target": "#app", "hx-swap": "outerHTML", "aria-current": "page"} {
		got, _ := active[0].Attr(attr)
		assert.Equal(t, want, got, attr)
	}
}

func TestPageUnknown(t *testing.T) {
	s, _ := newShowcase(t)
	_, err := s.Page("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	rec := get(s.Handler(), "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPageMethodNotAllowed(t *testing.T) {
	s, _ := newShowcase(t)
	rec := post(s.Handler(), "/forms", url.Values{}, true)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPageFragmentForNavigation(t *testing.T) {
	s, _ := newShowcase(t)
	rec := get(s.Handler(), "/layout", map[string]string{"HX-Request": "true", "HX-Target": AppID})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="app" class="columns">`), body)
	assert.NotContains(t, body, "<html")
	assert.Equal(t, pageVary, rec.Header().Get("Vary"))
}

const pageVary = "HX-Request, HX-Target, HX-History-Restore-Request"

func TestPageVaryOnEveryResponse(t *testing.T) {
	s, _ := newShowcase(t)
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"direct load", nil},
		{"other target", map[string]string{"HX-Request": "true", "HX-Target": "elsewhere"}},
		{"fragment", map[string]string{"HX-Request": "true", "HX-Target": AppID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(s.Handler(), "/layout", tt.headers)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, pageVary, rec.Header().Get("Vary"))
		})
	}
}

func TestPageHistoryRestoreGetsDocument(t *testing.T) {
	s, _ := newShowcase(t)
	rec := get(s.Handler(), "/layout", map[string]string{
		"HX-Request":                 "true",
		"HX-Target":                  AppID,
		"HX-History-Restore-Request": "true",
	})
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Equal(t, pageVary, rec.Header().Get("Vary"))
}

func TestDocsPageRendersMarkdown(t *testing.T) {
	s, _ := newShowcase(t)
	rec := get(s.Handler(), "/docs", nil)
	body := rec.Body.String()
	assert.Contains(t, body, `<h2 id="class-composition">Class composition</h2>`)
	assert.Contains(t, body, `<table class="table">`)
	assert.Contains(t, body, `href="#events"`)
}

func TestCounterRoundTrip(t *testing.T) {
	s, _ := newShowcase(t)
	h := s.Handler()

	d, ok := s.Registry().lookup("counter")
	require.True(t, ok)
	var initial strings.Builder
	require.NoError(t, d.Initial().Render(context.Background(), &initial))
	assert.Contains(t, initial.String(), `id="demo-counter"`)

	token := stateFrom(t, initial.String())
	for want := 1; want <= 2; want++ {
		rec := post(h, "/demo/counter/inc", url.Values{StateField: {token}}, true)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := rec.Body.String()
		assert.Contains(t, body, `id="demo-counter"`)
		assert.Contains(t, body, ">"+strconv.Itoa(want)+"</span>")
		token = stateFrom(t, body)
	}
}

func TestCounterResetFlashes(t *testing.T) {
	s, cfg := newShowcase(t)
	rec := post(s.Handler(), "/demo/counter/reset", url.Values{StateField: {seal(t, cfg, CounterState{Count: 4})}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hx-swap-oob="beforeend"`)
	assert.Contains(t, body, "Counter reset from 4")
	assert.Contains(t, body, ">0</span>")
}

func TestPagerTriggersEvent(t *testing.T) {
	s, cfg := newShowcase(t)
	form := url.Values{StateField: {seal(t, cfg, PagerState{Page: 1})}, "page": {"99"}}
	rec := post(s.Handler(), "/demo/pager/page", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"page:changed":{"page":10}}`, rec.Header().Get("HX-Trigger"))
	assert.Contains(t, rec.Body.String(), "Row 46 of 47")
}

func TestDemoErrors(t *testing.T) {
	s, cfg := newShowcase(t)
	h := s.Handler()
	valid := seal(t, cfg, CounterState{Count: 1})

	tests := []struct {
		name string
		path string
		form url.Values
		htmx bool
		want int
	}{
		{"not htmx", "/demo/counter/inc", url.Values{StateField: {valid}}, false, http.StatusForbidden},
		{"unknown demo", "/demo/nope/inc", url.Values{StateField: {valid}}, true, http.StatusNotFound},
		{"unknown op", "/demo/counter/explode", url.Values{StateField: {valid}}, true, http.StatusNotFound},
		{"missing op", "/demo/counter", url.Values{StateField: {valid}}, true, http.StatusNotFound},
		{"missing state", "/demo/counter/inc", url.Values{}, true, http.StatusBadRequest},
		{"tampered state", "/demo/counter/inc", url.Values{StateField: {valid + "x"}}, true, http.StatusBadRequest},
		{"invalid choice", "/demo/dropdown/pick", url.Values{StateField: {seal(t, cfg, DropdownState{})}, "choice": {"huge"}}, true, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.path, tt.form, tt.htmx)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDemoRequiresPost(t *testing.T) {
	s, _ := newShowcase(t)
	rec := get(s.Handler(), "/demo/counter/inc", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	s, _ := newShowcase(t)
	assert.Panics(t, func() { s.Registry().Add(pagerDemo()) })
	assert.Equal(t, []string{"counter", "dropdown", "modal", "notification", "pager", "tabs"}, s.Registry().Names())
}

func TestMetricsEndpoint(t *testing.T) {
	s, cfg := newShowcase(t)
	h := s.Handler()
	get(h, "/", nil)
	post(h, "/demo/counter/reset", url.Values{StateField: {seal(t, cfg, CounterState{Count: 1})}}, true)
	post(h, "/demo/counter/bogus", url.Values{StateField: {seal(t, cfg, CounterState{})}}, true)

	rec := get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `bulma_showcase_page_renders_total{page="home",result="ok"} 1`)
	assert.Contains(t, body, `bulma_showcase_demo_operations_total{demo="counter",op="reset",result="ok"} 1`)
	assert.Contains(t, body, `op="unknown"`)
	assert.Contains(t, body, "bulma_showcase_flashes_total 1")
}

func TestMetricsDisabled(t *testing.T) {
	s, cfg := newShowcase(t)
	next := *cfg
	next.Metrics = false
	s.SetConfig(&next)
	assert.Equal(t, http.StatusNotFound, get(s.Handler(), "/metrics", nil).Code)
}

func TestSetConfigAppliesToNextRender(t *testing.T) {
	s, cfg := newShowcase(t)
	next := *cfg
	next.Title = "Reloaded"
	next.Theme = "dark"
	next.StateKey = "a-completely-different-key"
	s.SetConfig(&next)

	assert.Equal(t, cfg.StateKey, s.Config().StateKey)
	body := get(s.Handler(), "/", nil).Body.String()
	assert.Contains(t, body, "Reloaded")
	assert.Contains(t, body, "theme-dark")

	// Tokens sealed with the startup key still open.
	rec := post(s.Handler(), "/demo/counter/inc", url.Values{StateField: {seal(t, cfg, CounterState{})}}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
}
