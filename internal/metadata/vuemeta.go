// internal/metadata/vuemeta.go
//
// vue-meta document serializer.
//
// Context
// -------
// NewDocument merges a VueMetaData aggregate into the object shape vue-meta
// expects.  Keys appear in this fixed order, each only when non-empty except
// `title`:
//
//	title, htmlAttrs, headAttrs, bodyAttrs, base,
//	link, meta, script, noscript, __dangerouslyDisableSanitizers
//
// Merge order
// -----------
//  1. Copy the caller's link, meta, script, and noscript lists.
//  2. Append the canonical link (hid "canonical", always present).
//  3. Append the description meta (hid "description", always present), then
//     the robots meta (hid "robots", only when set).
//  4. Append the Open Graph tags, then the Twitter card tags.
//
// Caller-added entries are never reordered or modified.  The aggregate is
// left untouched.
//
// Notes
// -----
//   - Extensions run after the fixed sections and may add further top-level
//     keys through Document.AddExtra (e.g. `style`).
//   - Output is deterministic: equal aggregates produce equal bytes.
package metadata

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/yanizio/headmeta/internal/head"
	"github.com/yanizio/headmeta/internal/twitter"
)

// Property is one extra top-level key of a Document.
type Property struct {
	Key   string
	Value any
}

// Document is the serialized form of a VueMetaData aggregate.
type Document struct {
	Title     string
	HTMLAttrs *head.AttributeList
	HeadAttrs *head.AttributeList
	BodyAttrs *head.AttributeList
	Base      *head.Base
	Link      []head.Link
	Meta      []head.Meta
	Script    []head.Script
	NoScript  []head.NoScript

	DangerouslyDisableSanitizers []string

	// Extra holds keys added by extensions, emitted after the fixed keys.
	Extra []Property
}

// Extension adjusts a Document after the fixed sections are built.
type Extension func(src *VueMetaData, doc *Document) error

var fixedKeys = map[string]struct{}{
	"title": {}, "htmlAttrs": {}, "headAttrs": {}, "bodyAttrs": {}, "base": {},
	"link": {}, "meta": {}, "script": {}, "noscript": {},
	"__dangerouslyDisableSanitizers": {},
}

// AddExtra appends a top-level key.  Fixed keys and duplicates are rejected.
func (d *Document) AddExtra(key string, value any) error {
	if _, ok := fixedKeys[key]; ok || head.IsBlank(key) {
		return fmt.Errorf("%w: reserved or blank document key %q", head.ErrInvalidArgument, key)
	}
	for _, p := range d.Extra {
		if p.Key == key {
			return fmt.Errorf("%w: duplicate document key %q", head.ErrInvalidArgument, key)
		}
	}
	d.Extra = append(d.Extra, Property{Key: key, Value: value})
	return nil
}

// NewDocument builds the Document for m.  A nil aggregate is an invalid
// argument.
func NewDocument(m *VueMetaData, exts ...Extension) (*Document, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: metadata is nil", head.ErrInvalidArgument)
	}

	doc := &Document{Title: m.Title}

	if m.HTMLAttributes.Len() > 0 {
		doc.HTMLAttrs = m.HTMLAttributes.Clone()
	}
	if m.HeadAttributes.Len() > 0 {
		doc.HeadAttrs = m.HeadAttributes.Clone()
	}
	if m.BodyAttributes.Len() > 0 {
		doc.BodyAttrs = m.BodyAttributes.Clone()
	}
	if m.Base != nil {
		b := *m.Base
		doc.Base = &b
	}

	links := slices.Clone(m.Links)
	meta := slices.Clone(m.Meta)
	scripts := slices.Clone(m.Scripts)
	noscripts := slices.Clone(m.NoScripts)

	links = head.AddLinkHref(links, "canonical", m.CanonicalURL,
		head.WithHid("canonical"), head.Mandatory())

	var err error
	meta, err = head.AddMetaContent(meta, "description", m.MetaDescription,
		head.WithHid("description"), head.Mandatory())
	if err != nil {
		return nil, err
	}
	meta, err = head.AddMetaContent(meta, "robots", m.Robots, head.WithHid("robots"))
	if err != nil {
		return nil, err
	}

	if m.OpenGraph != nil {
		meta = append(meta, m.OpenGraph.MetaTags()...)
	}
	if m.TwitterCard != nil {
		meta = append(meta, twitter.MetaTags(m.TwitterCard)...)
	}

	if len(links) > 0 {
		doc.Link = links
	}
	if len(meta) > 0 {
		doc.Meta = meta
	}
	if len(scripts) > 0 {
		doc.Script = scripts
	}
	if len(noscripts) > 0 {
		doc.NoScript = noscripts
	}
	if len(m.DangerouslyDisableSanitizers) > 0 {
		doc.DangerouslyDisableSanitizers = slices.Clone(m.DangerouslyDisableSanitizers)
	}

	for _, ext := range exts {
		if ext == nil {
			continue
		}
		if err := ext(m, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Serialize returns the vue-meta JSON for m.
func Serialize(m *VueMetaData, exts ...Extension) ([]byte, error) {
	doc, err := NewDocument(m, exts...)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

func (d Document) MarshalJSON() ([]byte, error) {
	fixed, err := head.EncodeJSON(struct {
		Title     string              `json:"title"`
		HTMLAttrs *head.AttributeList `json:"htmlAttrs,omitempty"`
		HeadAttrs *head.AttributeList `json:"headAttrs,omitempty"`
		BodyAttrs *head.AttributeList `json:"bodyAttrs,omitempty"`
		Base      *head.Base          `json:"base,omitempty"`
		Link      []head.Link         `json:"link,omitempty"`
		Meta      []head.Meta         `json:"meta,omitempty"`
		Script    []head.Script       `json:"script,omitempty"`
		NoScript  []head.NoScript     `json:"noscript,omitempty"`
		Sanitize  []string            `json:"__dangerouslyDisableSanitizers,omitempty"`
	}{
		d.Title, d.HTMLAttrs, d.HeadAttrs, d.BodyAttrs, d.Base,
		d.Link, d.Meta, d.Script, d.NoScript, d.DangerouslyDisableSanitizers,
	})
	if err != nil || len(d.Extra) == 0 {
		return fixed, err
	}

	// Splice the extra keys in before the closing brace.
	var buf bytes.Buffer
	buf.Write(fixed[:len(fixed)-1])
	for _, p := range d.Extra {
		kb, err := head.EncodeJSON(p.Key)
		if err != nil {
			return nil, err
		}
		vb, err := head.EncodeJSON(p.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Count returns the number of entries per array section.
func (d *Document) Count() map[string]int {
	return map[string]int{
		"link":     len(d.Link),
		"meta":     len(d.Meta),
		"script":   len(d.Script),
		"noscript": len(d.NoScript),
	}
}
