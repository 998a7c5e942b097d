package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/metadata"
	"github.com/yanizio/headmeta/internal/page"
)

type mapStore map[string]*page.Page

func (m mapStore) Get(_ context.Context, slug string) (*page.Page, error) {
	slug, err := page.NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}
	if slug == "boom" {
		return nil, io.ErrUnexpectedEOF
	}
	p, ok := m[slug]
	if !ok {
		return nil, page.ErrNotFound
	}
	return p, nil
}

func newTestServer(t *testing.T, exts ...metadata.Extension) *httptest.Server {
	t.Helper()
	store := mapStore{
		"home":       {Slug: "home", Title: "Home"},
		"blog/hello": {Slug: "blog/hello", Title: "Hello", Twitter: &page.Twitter{}},
		"bad":        {Slug: "bad", Twitter: &page.Twitter{Type: "app"}},
	}
	srv := httptest.NewServer(NewRouter(Deps{
		Store: store,
		Site: func() config.Site {
			return config.Site{BaseURL: "https://x", TwitterSite: "@x"}
		},
		Log:        zap.NewNop().Sugar(),
		Extensions: exts,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	code, body, hdr := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
	assert.Equal(t, "nosniff", hdr.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, hdr.Get("Content-Security-Policy"))
}

func TestGetPage(t *testing.T) {
	srv := newTestServer(t)

	code, body, hdr := get(t, srv.URL+"/pages/home")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "application/json; charset=utf-8", hdr.Get("Content-Type"))
	assert.Equal(t,
		`{"title":"Home","link":[{"hid":"canonical","rel":"canonical","href":"https://x/home"}],"meta":[{"hid":"description","name":"description","content":""}]}`,
		body)

	code, body, _ = get(t, srv.URL+"/pages/blog/hello")
	require.Equal(t, http.StatusOK, code, body)
	assert.Contains(t, body, `{"hid":"2a735453","name":"twitter:site","content":"@x"}`)
}

func TestGetPageErrors(t *testing.T) {
	srv := newTestServer(t)
	cases := map[string]int{
		"/pages/missing":  http.StatusNotFound,
		"/pages/Bad_Slug": http.StatusBadRequest,
		"/pages/bad":      http.StatusUnprocessableEntity,
		"/pages/boom":     http.StatusInternalServerError,
		"/nowhere":        http.StatusNotFound,
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			code, body, _ := get(t, srv.URL+path)
			assert.Equal(t, want, code)
			var e map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &e))
			assert.NotEmpty(t, e["error"])
		})
	}
}

func TestRender(t *testing.T) {
	style := func(_ *metadata.VueMetaData, doc *metadata.Document) error {
		return doc.AddExtra("style", []string{})
	}
	srv := newTestServer(t, style)

	resp, err := http.Post(srv.URL+"/render", "application/yaml",
		strings.NewReader("title: Posted\ndescription: <b>raw</b>\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t,
		`{"title":"Posted","link":[{"hid":"canonical","rel":"canonical","href":""}],"meta":[{"hid":"description","name":"description","content":"<b>raw</b>"}],"style":[]}`,
		string(body))
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t)
	cases := map[string]struct {
		body string
		want int
	}{
		"unknown field":   {"titel: x\n", http.StatusUnprocessableEntity},
		"malformed":       {"title: [\n", http.StatusUnprocessableEntity},
		"invalid":         {"twitter:\n  type: app\n", http.StatusUnprocessableEntity},
		"int jsonLD keys": {"jsonLD:\n  1: x\n", http.StatusOK},
		"too large":       {"title: " + strings.Repeat("x", maxBodyBytes) + "\n", http.StatusRequestEntityTooLarge},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/render", "application/yaml", strings.NewReader(tc.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	resp, err := http.Get(srv.URL + "/render")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHid(t *testing.T) {
	srv := newTestServer(t)

	code, body, _ := get(t, srv.URL+"/hid?value=og:title")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"value":"og:title","hid":"0cd7b7c3"}`, body)

	code, body, _ = get(t, srv.URL+"/hid?value=")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"value":"","hid":""}`, body)

	code, _, _ = get(t, srv.URL+"/hid")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)
	get(t, srv.URL+"/pages/home")
	code, body, _ := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "headmeta_documents_rendered_total")
}

func TestNewServerTimeouts(t *testing.T) {
	s := New(":0", http.NotFoundHandler())
	assert.NotZero(t, s.ReadHeaderTimeout)
	assert.NotZero(t, s.WriteTimeout)
}
