// internal/head/list.go
//
// Append helpers for element slices.
//
// Context
// -------
// Two layers exist:
//
//   - AddMeta / AddLink append a caller-built element and, unless told not
//     to, derive its hid from the element's semantic key.  They never drop
//     an element.
//   - AddMetaContent / AddMetaProperty / AddLinkHref are the primitives the
//     serializer uses for injected entries.  They drop entries whose primary
//     value is blank unless Mandatory() is passed, and only set a hid when
//     one is given or AutoHid(true) is passed.
//
// All helpers return the (possibly grown) slice, append style.
package head

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks programmer errors such as a blank discriminator.
var ErrInvalidArgument = errors.New("invalid argument")

// AddOption tunes one append call.
type AddOption func(*addOptions)

type addOptions struct {
	hid       string
	autoHid   bool
	mandatory bool
}

// WithHid sets an explicit hid.  It wins over AutoHid.
func WithHid(hid string) AddOption {
	return func(o *addOptions) { o.hid = hid }
}

// AutoHid toggles hid derivation from the element's semantic key.
func AutoHid(on bool) AddOption {
	return func(o *addOptions) { o.autoHid = on }
}

// Mandatory keeps an entry whose primary value is blank.
func Mandatory() AddOption {
	return func(o *addOptions) { o.mandatory = true }
}

func resolve(autoHid bool, opts []AddOption) addOptions {
	o := addOptions{autoHid: autoHid}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

/*──────────────────────────── element appends ──────────────────────────────*/

// AddMeta appends m.  Unless m already has a hid, WithHid is given, or
// AutoHid(false) is passed, the hid becomes Hid of the first non-blank of
// name, property, and http-equiv.
func AddMeta(list []Meta, m Meta, opts ...AddOption) []Meta {
	o := resolve(true, opts)
	switch {
	case o.hid != "":
		m.Hid = o.hid
	case m.Hid == "" && o.autoHid:
		m.Hid = Hid(FirstNonBlank(m.Name, m.Property, m.HTTPEquiv))
	}
	if o.mandatory {
		m.Mandatory = true
	}
	return append(list, m)
}

// AddLink appends l, deriving the hid from rel the same way AddMeta does.
func AddLink(list []Link, l Link, opts ...AddOption) []Link {
	o := resolve(true, opts)
	switch {
	case o.hid != "":
		l.Hid = o.hid
	case l.Hid == "" && o.autoHid:
		l.Hid = Hid(FirstNonBlank(l.Rel))
	}
	if o.mandatory {
		l.Mandatory = true
	}
	return append(list, l)
}

/*─────────────────────────────── primitives ────────────────────────────────*/

// AddMetaContent appends a name/content meta.  A blank name is an invalid
// argument.  Blank content drops the entry unless Mandatory() is passed.
func AddMetaContent(list []Meta, name, content string, opts ...AddOption) ([]Meta, error) {
	if IsBlank(name) {
		return list, fmt.Errorf("%w: meta name is blank", ErrInvalidArgument)
	}
	o := resolve(false, opts)
	if IsBlank(content) && !o.mandatory {
		return list, nil
	}
	m := Meta{Name: name, Content: content, Mandatory: o.mandatory}
	m.Hid = primitiveHid(o, name)
	return append(list, m), nil
}

// AddMetaProperty appends a property/content meta with the same rules as
// AddMetaContent.
func AddMetaProperty(list []Meta, property, content string, opts ...AddOption) ([]Meta, error) {
	if IsBlank(property) {
		return list, fmt.Errorf("%w: meta property is blank", ErrInvalidArgument)
	}
	o := resolve(false, opts)
	if IsBlank(content) && !o.mandatory {
		return list, nil
	}
	m := Meta{Property: property, Content: content, Mandatory: o.mandatory}
	m.Hid = primitiveHid(o, property)
	return append(list, m), nil
}

// AddMetaPropertyValue formats value with fmt.Sprint and defers to
// AddMetaProperty.  A nil value counts as blank.
func AddMetaPropertyValue(list []Meta, property string, value any, opts ...AddOption) ([]Meta, error) {
	content := ""
	if value != nil {
		content = fmt.Sprint(value)
	}
	return AddMetaProperty(list, property, content, opts...)
}

// AddLinkHref appends a rel/href link.  Blank href drops the entry unless
// Mandatory() is passed.
func AddLinkHref(list []Link, rel, href string, opts ...AddOption) []Link {
	o := resolve(false, opts)
	if IsBlank(href) && !o.mandatory {
		return list
	}
	l := Link{Rel: rel, Href: href, Mandatory: o.mandatory}
	l.Hid = primitiveHid(o, rel)
	return append(list, l)
}

func primitiveHid(o addOptions, key string) string {
	if !IsBlank(o.hid) {
		return o.hid
	}
	if o.autoHid && !IsBlank(key) {
		return Hid(key)
	}
	return ""
}

/*──────────────────────────────── auto hid ─────────────────────────────────*/

// AutoHidMeta sets m.Hid from its first non-blank name, property, or
// http-equiv.  With hash false the raw key is stored.  A blank key leaves m
// unchanged.
func AutoHidMeta(m *Meta, hash bool) {
	if m == nil {
		return
	}
	key := FirstNonBlank(m.Name, m.Property, m.HTTPEquiv)
	if key == "" {
		return
	}
	if hash {
		key = Hid(key)
	}
	m.Hid = key
}

// AutoHidLink is AutoHidMeta for links, keyed on rel.
func AutoHidLink(l *Link, hash bool) {
	if l == nil {
		return
	}
	key := FirstNonBlank(l.Rel)
	if key == "" {
		return
	}
	if hash {
		key = Hid(key)
	}
	l.Hid = key
}

// AutoHidMetas applies AutoHidMeta to every element of list in place.
func AutoHidMetas(list []Meta, hash bool) {
	for i := range list {
		AutoHidMeta(&list[i], hash)
	}
}
