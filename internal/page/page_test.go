package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
slug: blog/hello
lang: en
title: Hello | Example
description: First post.
robots: noindex
links:
  - rel: icon
    href: /favicon.ico
meta:
  - charset: utf-8
  - name: author
    content: Ann
scripts:
  - src: /app.js
    defer: true
noscripts:
  - innerHTML: <p>JS needed</p>
openGraph:
  images:
    - url: https://example.com/a.png
      width: 1200
      height: 630
twitter:
  type: summary_large_image
  creator: "@ann"
jsonLD:
  "@type": BlogPosting
  headline: Hello
bodyAttrs:
  - name: class
    value: post
disableSanitizers: [script]
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, "blog/hello", p.Slug)
	assert.Len(t, p.Meta, 2)
	assert.Equal(t, "utf-8", p.Meta[0].Charset)
	assert.Equal(t, 1200, p.OpenGraph.Images[0].Width)
	assert.Equal(t, "summary_large_image", p.Twitter.Type)
	assert.Equal(t, map[string]any{"@type": "BlogPosting", "headline": "Hello"}, p.JSONLD)
	assert.Equal(t, []Attr{{Name: "class", Value: "post"}}, p.BodyAttrs)
}

func TestDecodeJSON(t *testing.T) {
	p, err := Decode(strings.NewReader(`{"slug":"home","title":"Home","canonicalURL":"https://x/"}`))
	require.NoError(t, err)
	assert.Equal(t, "https://x/", p.CanonicalURL)
}

func TestDecodeErrors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":         "",
		"unknown field": "slug: a\ntitel: typo\n",
		"bad yaml":      "slug: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			assert.True(t, errors.Is(err, ErrInvalidPage), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	bad := map[string]string{
		"slug":           "slug: Not/Normal\n",
		"lang":           "lang: not a tag!\n",
		"canonical":      "canonicalURL: nope\n",
		"link rel":       "links:\n  - href: /x\n",
		"meta key":       "meta:\n  - content: orphan\n",
		"script src":     "scripts:\n  - defer: true\n",
		"og image url":   "openGraph:\n  images:\n    - width: 10\n",
		"twitter type":   "twitter:\n  type: player\n",
		"twitter site":   "twitter:\n  site: example\n",
		"attr name":      "htmlAttrs:\n  - value: x\n",
		"sanitizer name": "disableSanitizers: ['']\n",
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(in))
			require.NoError(t, err)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPage)
		})
	}
}

func TestSlugTagRegistered(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NoError(t, validate.Var("blog/hello", "slug"))
		assert.Error(t, validate.Var("Blog/Hello", "slug"))
		assert.Error(t, validate.Var("a/../b", "slug"))
	})
}
