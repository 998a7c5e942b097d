package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/head"
)

var testSite = config.Site{
	Name:        "Example",
	BaseURL:     "https://example.com",
	Language:    "en-GB",
	Robots:      "index,follow",
	TwitterSite: "@example",
}

func TestRenderSample(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	doc, err := Render(p, testSite)
	require.NoError(t, err)
	got, err := doc.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{
	  "title": "Hello | Example",
	  "htmlAttrs": {"lang": "en"},
	  "bodyAttrs": {"class": "post"},
	  "link": [
	    {"hid": "baec6461", "rel": "icon", "href": "/favicon.ico"},
	    {"hid": "canonical", "rel": "canonical", "href": "https://example.com/blog/hello"}
	  ],
	  "meta": [
	    {"charset": "utf-8"},
	    {"hid": "02bd92fa", "name": "author", "content": "Ann"},
	    {"hid": "description", "name": "description", "content": "First post."},
	    {"hid": "robots", "name": "robots", "content": "noindex"},
	    {"hid": "0cd7b7c3", "property": "og:title", "content": "Hello | Example"},
	    {"hid": "12660533", "property": "og:description", "content": "First post."},
	    {"hid": "6974a09d", "property": "og:site_name", "content": "Example"},
	    {"hid": "80f48865", "property": "og:url", "content": "https://example.com/blog/hello"},
	    {"hid": "e6424ef2", "property": "og:image", "content": "https://example.com/a.png"},
	    {"hid": "39784fa0", "property": "og:image:width", "content": "1200"},
	    {"hid": "39784fa0", "property": "og:image:height", "content": "630"},
	    {"hid": "6a96581e", "name": "twitter:card", "content": "summary_large_image"},
	    {"hid": "2a735453", "name": "twitter:site", "content": "@example"},
	    {"hid": "06a95253", "name": "twitter:creator", "content": "@ann"},
	    {"hid": "01c11f81", "name": "twitter:title", "content": "Hello | Example"},
	    {"hid": "a0e89b4a", "name": "twitter:description", "content": "First post."}
	  ],
	  "script": [
	    {"src": "/app.js", "type": "text/javascript", "defer": true},
	    {"type": "application/ld+json", "json": {"@type": "BlogPosting", "headline": "Hello"}}
	  ],
	  "noscript": [{"innerHTML": "<p>JS needed</p>"}],
	  "__dangerouslyDisableSanitizers": ["script"]
	}`, string(got))
}

func TestVueMetaDataSiteDefaults(t *testing.T) {
	p := &Page{Slug: "about", Title: "About"}

	m, err := p.VueMetaData(testSite)
	require.NoError(t, err)

	assert.Equal(t, "en-GB", m.HTMLAttributes.Language())
	assert.Equal(t, "index,follow", m.Robots)
	assert.Equal(t, "https://example.com/about", m.CanonicalURL)
	assert.Nil(t, m.OpenGraph, "og:site_name must not appear without an openGraph block")
	assert.Nil(t, m.TwitterCard)
}

func TestVueMetaDataPageWins(t *testing.T) {
	p := &Page{
		Slug:         "about",
		Lang:         "fr",
		CanonicalURL: "https://cdn.example.com/about",
		Links:        []Link{{Rel: "alternate", Href: "/de/about", Hid: "alt-de"}},
		Meta:         []Meta{{Property: "fb:app_id", Content: "1"}},
		Twitter:      &Twitter{Site: "@page"},
	}

	m, err := p.VueMetaData(testSite)
	require.NoError(t, err)

	assert.Equal(t, "fr", m.HTMLAttributes.Language())
	assert.Equal(t, "https://cdn.example.com/about", m.CanonicalURL)
	assert.Equal(t, "alt-de", m.Links[0].Hid)
	assert.Equal(t, head.Hid("fb:app_id"), m.Meta[0].Hid)
	assert.Equal(t, "@page", m.TwitterCard.SiteHandle())
	assert.Equal(t, "summary", m.TwitterCard.Type())
}

func TestVueMetaDataNoBaseURL(t *testing.T) {
	m, err := (&Page{Slug: "x"}).VueMetaData(config.Site{})
	require.NoError(t, err)
	assert.Equal(t, "", m.CanonicalURL)
	assert.Equal(t, 0, m.HTMLAttributes.Len())
}

func TestVueMetaDataJSONLDList(t *testing.T) {
	p, err := Decode(strings.NewReader("jsonLD:\n  - {\"@type\": A}\n  - {\"@type\": B}\n"))
	require.NoError(t, err)

	m, err := p.VueMetaData(config.Site{})
	require.NoError(t, err)
	require.Len(t, m.Scripts, 2)
	assert.Equal(t, head.JSONLDScriptType, m.Scripts[1].Type)
}

func TestRenderJSONLDNonStringKeys(t *testing.T) {
	p, err := Decode(strings.NewReader("jsonLD:\n  1: x\n  items:\n    - {2: y, true: z}\n"))
	require.NoError(t, err)

	doc, err := Render(p, config.Site{})
	require.NoError(t, err)
	got, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(got), `"json":{"1":"x","items":[{"2":"y","true":"z"}]}`)
}

func TestRenderRejectsInvalid(t *testing.T) {
	_, err := Render(&Page{Twitter: &Twitter{Type: "app"}}, testSite)
	assert.ErrorIs(t, err, ErrInvalidPage)
}
