// internal/head/attributes.go
//
// Ordered attribute maps for the <html>, <head>, and <body> elements.
//
// Context
// -------
// vue-meta reads `htmlAttrs`, `headAttrs`, and `bodyAttrs` as plain JSON
// objects.  Output must be stable between renders, so the list remembers
// insertion order and serializes keys in that order rather than sorted or
// random map order.
package head

import "bytes"

// AttributeList is an insertion-ordered string map.  The zero value is an
// empty list ready to use.  Not safe for concurrent writes.
type AttributeList struct {
	keys   []string
	values map[string]string
}

// Set stores value under name.  An existing name keeps its position.
func (a *AttributeList) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Get returns the value for name and whether it was present.
func (a *AttributeList) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Delete removes name.  Missing names are ignored.
func (a *AttributeList) Delete(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len reports the number of attributes.
func (a *AttributeList) Len() int { return len(a.keys) }

// Keys returns the attribute names in insertion order.
func (a *AttributeList) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every attribute in insertion order.
func (a *AttributeList) Each(fn func(name, value string)) {
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

// Clone returns an independent copy.
func (a *AttributeList) Clone() *AttributeList {
	c := &AttributeList{}
	a.Each(c.Set)
	return c
}

func (a *AttributeList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := EncodeJSON(k)
		if err != nil {
			return nil, err
		}
		vb, err := EncodeJSON(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// HTMLAttributeList adds the `lang` accessor used on the <html> element.
type HTMLAttributeList struct {
	AttributeList
}

// langKey is the attribute that carries the page language.
const langKey = "lang"

// Language returns the `lang` attribute, or "" when unset.
func (h *HTMLAttributeList) Language() string {
	v, _ := h.Get(langKey)
	return v
}

// SetLanguage stores tag under `lang`.  An empty tag removes the attribute.
func (h *HTMLAttributeList) SetLanguage(tag string) {
	if tag == "" {
		h.Delete(langKey)
		return
	}
	h.Set(langKey, tag)
}
