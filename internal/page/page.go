// internal/page/page.go
//
// Page descriptors.
//
// Context
// -------
// A descriptor is a YAML (or JSON) document naming everything one page
// wants in its <head>.  Stores hand descriptors out, VueMetaData turns one
// into a metadata aggregate, and Render serializes it for vue-meta.
//
//	slug: blog/hello-world
//	title: Hello | Example
//	description: First post.
//	openGraph:
//	  images:
//	    - url: https://example.com/hello.png
//	twitter:
//	  type: summary_large_image
//
// Unknown keys are rejected so typos surface at load time instead of
// silently dropping tags.
package page

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when no descriptor exists for a slug.
	ErrNotFound = errors.New("page not found")
	// ErrInvalidSlug marks slugs that fail NormalizeSlug.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrInvalidPage wraps decode and validation failures.
	ErrInvalidPage = errors.New("invalid page")
)

// Page is one decoded descriptor.  Stores may share a *Page between
// callers; treat it as read-only.
type Page struct {
	Slug         string `yaml:"slug"         validate:"omitempty,slug"`
	Lang         string `yaml:"lang"         validate:"omitempty,bcp47_language_tag"`
	Title        string `yaml:"title"`
	CanonicalURL string `yaml:"canonicalURL" validate:"omitempty,url"`
	MetaTitle    string `yaml:"metaTitle"`
	Description  string `yaml:"description"`
	Robots       string `yaml:"robots"`

	Base      *Base      `yaml:"base"`
	Links     []Link     `yaml:"links"     validate:"dive"`
	Meta      []Meta     `yaml:"meta"      validate:"dive"`
	Scripts   []Script   `yaml:"scripts"   validate:"dive"`
	NoScripts []NoScript `yaml:"noscripts"`

	OpenGraph *OpenGraph `yaml:"openGraph"`
	Twitter   *Twitter   `yaml:"twitter"`

	// JSONLD is emitted as an application/ld+json script.  Any YAML value
	// is accepted; a list yields one script per item.
	JSONLD any `yaml:"jsonLD"`

	HTMLAttrs []Attr `yaml:"htmlAttrs" validate:"dive"`
	HeadAttrs []Attr `yaml:"headAttrs" validate:"dive"`
	BodyAttrs []Attr `yaml:"bodyAttrs" validate:"dive"`

	DisableSanitizers []string `yaml:"disableSanitizers" validate:"dive,required"`
}

// Base mirrors the <base> element.
type Base struct {
	Href   string `yaml:"href"`
	Target string `yaml:"target"`
}

// Link is a <link> entry.  An empty Hid is derived from Rel.
type Link struct {
	Hid   string `yaml:"hid"`
	ID    string `yaml:"id"`
	Rel   string `yaml:"rel"   validate:"required"`
	Href  string `yaml:"href"`
	Type  string `yaml:"type"`
	Media string `yaml:"media"`
	Sizes string `yaml:"sizes"`
}

// Meta is a <meta> entry.  An empty Hid is derived from Name, Property, or
// HTTPEquiv, whichever is set first.
type Meta struct {
	Hid       string `yaml:"hid"`
	ID        string `yaml:"id"`
	Charset   string `yaml:"charset"`
	HTTPEquiv string `yaml:"httpEquiv"`
	Name      string `yaml:"name"      validate:"required_without_all=Property HTTPEquiv Charset"`
	Property  string `yaml:"property"`
	Content   string `yaml:"content"`
}

// Script is a <script> entry.
type Script struct {
	Hid       string `yaml:"hid"`
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Src       string `yaml:"src"       validate:"required_without=InnerHTML"`
	Type      string `yaml:"type"`
	InnerHTML string `yaml:"innerHTML"`
	Body      bool   `yaml:"body"`
	Defer     bool   `yaml:"defer"`
	Async     bool   `yaml:"async"`
}

// NoScript is a <noscript> entry.
type NoScript struct {
	Hid       string `yaml:"hid"`
	InnerHTML string `yaml:"innerHTML"`
}

// OpenGraph holds og:* values.  Blank title, description, and url fall back
// to the page's own values.
type OpenGraph struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	URL         string  `yaml:"url"    validate:"omitempty,url"`
	Images      []Image `yaml:"images" validate:"dive"`
}

// Image is one og:image.
type Image struct {
	URL    string `yaml:"url"    validate:"required,url"`
	Width  int    `yaml:"width"  validate:"gte=0"`
	Height int    `yaml:"height" validate:"gte=0"`
}

// Twitter holds twitter:* values.  Type defaults to "summary"; a blank
// site falls back to the configured site handle.
type Twitter struct {
	Type        string `yaml:"type"     validate:"omitempty,oneof=summary summary_large_image"`
	Site        string `yaml:"site"     validate:"omitempty,startswith=@"`
	Creator     string `yaml:"creator"  validate:"omitempty,startswith=@"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"    validate:"omitempty,url"`
	ImageAlt    string `yaml:"imageAlt" validate:"max=420"`
}

// Attr is one attribute of <html>, <head>, or <body>.  A list keeps the
// author's order in the output.
type Attr struct {
	Name  string `yaml:"name"  validate:"required"`
	Value string `yaml:"value"`
}

// Decode reads one descriptor from r.  Unknown keys are an error.
func Decode(r io.Reader) (*Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPage)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPage, err)
	}
	return &p, nil
}

// Validate checks field rules.  The error wraps ErrInvalidPage.
func (p *Page) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPage, err)
	}
	return nil
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPage, fmt.Sprintf(format, args...))
}
