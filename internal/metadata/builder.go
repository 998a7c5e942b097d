// internal/metadata/builder.go
//
// The Builder collects everything that should appear inside a page's <head>
// element.  It is scoped to a single request (or render call).  Page setup
// code pushes values into the builder, then Build hands the finished
// aggregate to Serialize.
//
// Features
// --------
//   - Title, CanonicalURL, MetaTitle, MetaDescription, Robots, Base
//     single values (last call wins).
//   - AddLink, AddMeta, AddScript, AddNoScript append elements; the *Func
//     variants build a fresh element and let a configurator fill it.
//   - OpenGraph, TwitterCard own the social vocabularies.
//   - HTMLAttr, HeadAttr, BodyAttr, Language, DisableSanitizers for the
//     vue-meta specific sections.
//
// Errors
// ------
// The first invalid argument (nil configurator, nil card) is kept and every
// later call becomes a no-op.  Build reports it.  A Builder is never nil,
// so chains never need nil checks.
package metadata

import (
	"fmt"

	"github.com/yanizio/headmeta/internal/head"
	"github.com/yanizio/headmeta/internal/opengraph"
	"github.com/yanizio/headmeta/internal/twitter"
)

// Builder is not safe for concurrent use.  Typical use is one goroutine per
// request.
type Builder struct {
	data *VueMetaData
	err  error
}

// NewBuilder starts an aggregate whose <html lang> is lang (may be empty).
func NewBuilder(lang string) *Builder {
	return &Builder{data: NewVueMetaData(lang)}
}

// Edit wraps an existing aggregate.  A nil aggregate is recorded as an
// invalid argument.
func Edit(m *VueMetaData) *Builder {
	if m == nil {
		return &Builder{data: NewVueMetaData(""), err: invalid("metadata is nil")}
	}
	return &Builder{data: m}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", head.ErrInvalidArgument, msg)
}

// do runs fn unless an error is already recorded.
func (b *Builder) do(fn func(m *VueMetaData) error) *Builder {
	if b.err != nil {
		return b
	}
	b.err = fn(b.data)
	return b
}

// Err returns the first recorded error.
func (b *Builder) Err() error { return b.err }

// Build returns the aggregate, or the first recorded error.
func (b *Builder) Build() (*VueMetaData, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.data, nil
}

// ------------------------------------------------------------------
// Single-value setters
// ------------------------------------------------------------------

func (b *Builder) Title(v string) *Builder {
	return b.do(func(m *VueMetaData) error { m.Title = v; return nil })
}

func (b *Builder) CanonicalURL(v string) *Builder {
	return b.do(func(m *VueMetaData) error { m.CanonicalURL = v; return nil })
}

func (b *Builder) MetaTitle(v string) *Builder {
	return b.do(func(m *VueMetaData) error { m.MetaTitle = v; return nil })
}

func (b *Builder) MetaDescription(v string) *Builder {
	return b.do(func(m *VueMetaData) error { m.MetaDescription = v; return nil })
}

// Robots sets the robots directive, e.g. "noindex,nofollow".
func (b *Builder) Robots(v string) *Builder {
	return b.do(func(m *VueMetaData) error { m.Robots = v; return nil })
}

func (b *Builder) Base(href, target string) *Builder {
	return b.do(func(m *VueMetaData) error {
		m.Base = &head.Base{Href: href, Target: target}
		return nil
	})
}

// ------------------------------------------------------------------
// Element appends
// ------------------------------------------------------------------

// AddLink appends l as given.
func (b *Builder) AddLink(l head.Link) *Builder {
	return b.do(func(m *VueMetaData) error { m.Links = append(m.Links, l); return nil })
}

// AddLinkFunc appends a new link filled in by fn.
func (b *Builder) AddLinkFunc(fn func(*head.Link)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("link configurator is nil")
		}
		var l head.Link
		fn(&l)
		m.Links = append(m.Links, l)
		return nil
	})
}

// AddMeta appends a name/content meta.
func (b *Builder) AddMeta(name, content string) *Builder {
	return b.AddMetaElement(head.NewMeta(name, content))
}

// AddMetaElement appends me as given.
func (b *Builder) AddMetaElement(me head.Meta) *Builder {
	return b.do(func(m *VueMetaData) error { m.Meta = append(m.Meta, me); return nil })
}

// AddMetaFunc appends a new meta filled in by fn.
func (b *Builder) AddMetaFunc(fn func(*head.Meta)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("meta configurator is nil")
		}
		var me head.Meta
		fn(&me)
		m.Meta = append(m.Meta, me)
		return nil
	})
}

// AddScript appends a script loading src.
func (b *Builder) AddScript(src string) *Builder {
	return b.AddScriptElement(head.NewScript(src))
}

// AddScriptElement appends s as given.
func (b *Builder) AddScriptElement(s head.Script) *Builder {
	return b.do(func(m *VueMetaData) error { m.Scripts = append(m.Scripts, s); return nil })
}

// AddScriptFunc appends a new script, defaulting to text/javascript, filled
// in by fn.
func (b *Builder) AddScriptFunc(fn func(*head.Script)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("script configurator is nil")
		}
		s := head.Script{Type: head.DefaultScriptType}
		fn(&s)
		m.Scripts = append(m.Scripts, s)
		return nil
	})
}

// AddJSONLD appends a structured-data script.
func (b *Builder) AddJSONLD(payload any) *Builder {
	return b.AddScriptElement(head.JSONLD(payload))
}

// AddNoScript appends a <noscript> with the given inner HTML.
func (b *Builder) AddNoScript(innerHTML string) *Builder {
	return b.AddNoScriptElement(head.NoScript{InnerHTML: innerHTML})
}

func (b *Builder) AddNoScriptElement(ns head.NoScript) *Builder {
	return b.do(func(m *VueMetaData) error { m.NoScripts = append(m.NoScripts, ns); return nil })
}

func (b *Builder) AddNoScriptFunc(fn func(*head.NoScript)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("noscript configurator is nil")
		}
		var ns head.NoScript
		fn(&ns)
		m.NoScripts = append(m.NoScripts, ns)
		return nil
	})
}

// ------------------------------------------------------------------
// Social vocabularies
// ------------------------------------------------------------------

// OpenGraph replaces the Open Graph properties with fresh ones filled in by
// fn.
func (b *Builder) OpenGraph(fn func(*opengraph.Properties)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("open graph configurator is nil")
		}
		p := &opengraph.Properties{}
		fn(p)
		m.OpenGraph = p
		return nil
	})
}

// SetOpenGraph stores p as is.  Nil clears the properties.
func (b *Builder) SetOpenGraph(p *opengraph.Properties) *Builder {
	return b.do(func(m *VueMetaData) error { m.OpenGraph = p; return nil })
}

// TwitterCard sets the card.  Nil clears it.
func (b *Builder) TwitterCard(c twitter.Card) *Builder {
	return b.do(func(m *VueMetaData) error { m.TwitterCard = c; return nil })
}

// TwitterSummary sets a summary card filled in by fn.
func (b *Builder) TwitterSummary(fn func(*twitter.Summary)) *Builder {
	return b.do(func(m *VueMetaData) error {
		if fn == nil {
			return invalid("twitter card configurator is nil")
		}
		c := &twitter.Summary{}
		fn(c)
		m.TwitterCard = c
		return nil
	})
}

// ------------------------------------------------------------------
// vue-meta sections
// ------------------------------------------------------------------

func (b *Builder) HTMLAttr(name, value string) *Builder {
	return b.do(func(m *VueMetaData) error { m.HTMLAttributes.Set(name, value); return nil })
}

func (b *Builder) HeadAttr(name, value string) *Builder {
	return b.do(func(m *VueMetaData) error { m.HeadAttributes.Set(name, value); return nil })
}

func (b *Builder) BodyAttr(name, value string) *Builder {
	return b.do(func(m *VueMetaData) error { m.BodyAttributes.Set(name, value); return nil })
}

// Language sets <html lang>.  Empty removes it.
func (b *Builder) Language(tag string) *Builder {
	return b.do(func(m *VueMetaData) error { m.HTMLAttributes.SetLanguage(tag); return nil })
}

// DisableSanitizers appends property names the renderer must not escape.
func (b *Builder) DisableSanitizers(names ...string) *Builder {
	return b.do(func(m *VueMetaData) error {
		m.DangerouslyDisableSanitizers = append(m.DangerouslyDisableSanitizers, names...)
		return nil
	})
}
