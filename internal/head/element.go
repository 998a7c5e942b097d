// internal/head/element.go
//
// Element records for the vue-meta document.
//
// Context
// -------
// Each record maps to one entry of a vue-meta array (`meta`, `link`,
// `script`, `noscript`) or to the single `base` object.  Field order in the
// JSON output is fixed: `hid`, then `id`, then the variant fields in the
// order they are declared below.  Empty strings are omitted, and boolean
// script flags are omitted while false.
//
// Notes
// -----
//   - `Mandatory` on Meta and Link is not serialized.  It keeps an empty
//     `content` / `href` key in the output, which the append primitives use
//     for entries the consumer must always see (canonical, description).
//   - Values are never escaped here.  The consuming renderer owns that.
package head

// DefaultScriptType is used for scripts that do not name a type.
const DefaultScriptType = "text/javascript"

// JSONLDScriptType marks structured-data scripts.
const JSONLDScriptType = "application/ld+json"

// Element carries the attributes shared by every element variant.
//
// Hid is the vue-meta identity key and is unrelated to the HTML id
// attribute held in ID.
type Element struct {
	Hid string `json:"hid,omitempty"`
	ID  string `json:"id,omitempty"`
}

/*──────────────────────────────── meta ─────────────────────────────────────*/

// Meta is a <meta> element.  Name and Property are not exclusive; callers
// set whichever the vocabulary needs.
type Meta struct {
	Element
	Charset   string
	HTTPEquiv string
	Name      string
	Property  string
	Content   string

	// Mandatory emits `content` even when it is empty.
	Mandatory bool
}

// NewMeta returns a name/content pair.
func NewMeta(name, content string) Meta {
	return Meta{Name: name, Content: content}
}

func (m Meta) MarshalJSON() ([]byte, error) {
	return EncodeJSON(struct {
		Element
		Charset   string  `json:"charset,omitempty"`
		HTTPEquiv string  `json:"http-equiv,omitempty"`
		Name      string  `json:"name,omitempty"`
		Property  string  `json:"property,omitempty"`
		Content   *string `json:"content,omitempty"`
	}{m.Element, m.Charset, m.HTTPEquiv, m.Name, m.Property, keep(m.Content, m.Mandatory)})
}

/*──────────────────────────────── link ─────────────────────────────────────*/

// Link is a <link> element.
type Link struct {
	Element
	Rel   string
	Href  string
	Type  string
	Media string
	Sizes string

	// Mandatory emits `href` even when it is empty.
	Mandatory bool
}

func (l Link) MarshalJSON() ([]byte, error) {
	return EncodeJSON(struct {
		Element
		Rel   string  `json:"rel,omitempty"`
		Href  *string `json:"href,omitempty"`
		Type  string  `json:"type,omitempty"`
		Media string  `json:"media,omitempty"`
		Sizes string  `json:"sizes,omitempty"`
	}{l.Element, l.Rel, keep(l.Href, l.Mandatory), l.Type, l.Media, l.Sizes})
}

/*─────────────────────────────── script ────────────────────────────────────*/

// Script is a <script> element.  The zero value serializes with the default
// type "text/javascript".
type Script struct {
	Element

	// Title is not a standard script attribute, but some integrations read
	// it to label the script in a UI.
	Title     string
	Source    string
	Type      string
	InnerHTML string

	AppendToBody bool
	Defer        bool
	Async        bool

	// JSON is embedded verbatim under the `json` key, e.g. a JSON-LD
	// payload.  Any value encoding/json accepts is allowed.
	JSON any
}

// NewScript returns a script loading src.
func NewScript(src string) Script {
	return Script{Source: src, Type: DefaultScriptType}
}

// JSONLD returns a structured-data script carrying payload.
func JSONLD(payload any) Script {
	return Script{Type: JSONLDScriptType, JSON: payload}
}

func (s Script) MarshalJSON() ([]byte, error) {
	typ := s.Type
	if typ == "" {
		typ = DefaultScriptType
	}
	return EncodeJSON(struct {
		Element
		Title        string `json:"title,omitempty"`
		Source       string `json:"src,omitempty"`
		Type         string `json:"type"`
		InnerHTML    string `json:"innerHTML,omitempty"`
		AppendToBody bool   `json:"body,omitempty"`
		Defer        bool   `json:"defer,omitempty"`
		Async        bool   `json:"async,omitempty"`
		JSON         any    `json:"json,omitempty"`
	}{s.Element, s.Title, s.Source, typ, s.InnerHTML, s.AppendToBody, s.Defer, s.Async, s.JSON})
}

/*────────────────────────────── noscript ───────────────────────────────────*/

// NoScript is a <noscript> element.
type NoScript struct {
	Element
	InnerHTML string `json:"innerHTML,omitempty"`
}

/*──────────────────────────────── base ─────────────────────────────────────*/

// Base describes the <base> element.
type Base struct {
	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
}

// keep returns a pointer to v when it should appear in the output.
func keep(v string, mandatory bool) *string {
	if v == "" && !mandatory {
		return nil
	}
	return &v
}
