// internal/metadata/metadata.go
//
// Page metadata aggregate.
//
// Context
// -------
// One MetaData value holds everything destined for a page's <head> during a
// single render: title, canonical URL, description, robots, element lists,
// Open Graph properties, and a Twitter card.  VueMetaData adds the parts
// only vue-meta understands: root element attributes and the list of
// properties the renderer must not sanitize.
//
// Lifecycle
// ---------
//  1. Page setup fills the aggregate (directly or through Builder).
//  2. Serialize turns it into a Document once.
//  3. The aggregate is dropped with the request.
//
// The aggregate is not safe for concurrent mutation.
package metadata

import (
	"github.com/yanizio/headmeta/internal/head"
	"github.com/yanizio/headmeta/internal/opengraph"
	"github.com/yanizio/headmeta/internal/twitter"
)

// MetaData is the framework-neutral part of the aggregate.
type MetaData struct {
	// Title is the <title> value, usually page name plus site name.
	Title        string
	CanonicalURL string

	// MetaTitle is kept for integrations that want a separate share title.
	// It is not emitted by Serialize.
	MetaTitle       string
	MetaDescription string

	// Robots is the robots directive, e.g. "index,follow".
	Robots string

	Base      *head.Base
	Links     []head.Link
	Meta      []head.Meta
	Scripts   []head.Script
	NoScripts []head.NoScript

	OpenGraph   *opengraph.Properties
	TwitterCard twitter.Card
}

// VueMetaData is MetaData plus the vue-meta specific sections.
type VueMetaData struct {
	MetaData

	HTMLAttributes head.HTMLAttributeList
	HeadAttributes head.AttributeList
	BodyAttributes head.AttributeList

	// DangerouslyDisableSanitizers names document properties the renderer
	// must inject without escaping, e.g. "script".
	DangerouslyDisableSanitizers []string
}

// NewVueMetaData returns an empty aggregate.  A non-empty lang becomes the
// `lang` attribute of the <html> element.
func NewVueMetaData(lang string) *VueMetaData {
	m := &VueMetaData{}
	m.HTMLAttributes.SetLanguage(lang)
	return m
}
