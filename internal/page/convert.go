// internal/page/convert.go
//
// Descriptor → metadata aggregate.
//
// Defaults from the site config
// -----------------------------
//   - lang          ← site.language when the page sets none.
//   - robots        ← site.robots when the page sets none.
//   - canonicalURL  ← site.base_url + "/" + slug when the page sets none.
//   - og:site_name  ← site.name, only when the page has an openGraph block.
//   - og:title, og:description, og:url ← page title, description, canonical.
//   - twitter:site  ← site.twitter_site when the card names none.
//
// Elements keep the descriptor's order.  Link and meta entries without a hid
// get one derived from their semantic key.
package page

import (
	"fmt"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/head"
	"github.com/yanizio/headmeta/internal/metadata"
	"github.com/yanizio/headmeta/internal/opengraph"
	"github.com/yanizio/headmeta/internal/twitter"
)

// VueMetaData builds the aggregate for p with site defaults applied.  p is
// not modified.
func (p *Page) VueMetaData(site config.Site) (*metadata.VueMetaData, error) {
	canonical := p.CanonicalURL
	if head.IsBlank(canonical) && site.BaseURL != "" && p.Slug != "" {
		canonical = joinURL(site.BaseURL, p.Slug)
	}

	b := metadata.NewBuilder(head.FirstNonBlank(p.Lang, site.Language)).
		Title(p.Title).
		CanonicalURL(canonical).
		MetaTitle(p.MetaTitle).
		MetaDescription(p.Description).
		Robots(head.FirstNonBlank(p.Robots, site.Robots))

	if p.Base != nil {
		b.Base(p.Base.Href, p.Base.Target)
	}

	for _, l := range p.Links {
		el := head.Link{
			Element: head.Element{Hid: l.Hid, ID: l.ID},
			Rel:     l.Rel, Href: l.Href, Type: l.Type, Media: l.Media, Sizes: l.Sizes,
		}
		if el.Hid == "" {
			head.AutoHidLink(&el, true)
		}
		b.AddLink(el)
	}
	for _, m := range p.Meta {
		el := head.Meta{
			Element:   head.Element{Hid: m.Hid, ID: m.ID},
			Charset:   m.Charset,
			HTTPEquiv: m.HTTPEquiv,
			Name:      m.Name,
			Property:  m.Property,
			Content:   m.Content,
		}
		if el.Hid == "" {
			head.AutoHidMeta(&el, true)
		}
		b.AddMetaElement(el)
	}
	for _, s := range p.Scripts {
		b.AddScriptElement(head.Script{
			Element:      head.Element{Hid: s.Hid, ID: s.ID},
			Title:        s.Title,
			Source:       s.Src,
			Type:         head.FirstNonBlank(s.Type, head.DefaultScriptType),
			InnerHTML:    s.InnerHTML,
			AppendToBody: s.Body,
			Defer:        s.Defer,
			Async:        s.Async,
		})
	}
	for _, ld := range jsonLDItems(p.JSONLD) {
		b.AddJSONLD(ld)
	}
	for _, ns := range p.NoScripts {
		b.AddNoScriptElement(head.NoScript{Element: head.Element{Hid: ns.Hid}, InnerHTML: ns.InnerHTML})
	}

	if og := p.OpenGraph; og != nil {
		b.OpenGraph(func(props *opengraph.Properties) {
			props.Title = head.FirstNonBlank(og.Title, p.Title)
			props.Description = head.FirstNonBlank(og.Description, p.Description)
			props.SiteName = site.Name
			props.URL = head.FirstNonBlank(og.URL, canonical)
			for _, img := range og.Images {
				props.AppendImageSize(img.URL, img.Width, img.Height)
			}
		})
	}

	if p.Twitter != nil {
		b.TwitterCard(p.twitterCard(site))
	}

	for _, a := range p.HTMLAttrs {
		b.HTMLAttr(a.Name, a.Value)
	}
	for _, a := range p.HeadAttrs {
		b.HeadAttr(a.Name, a.Value)
	}
	for _, a := range p.BodyAttrs {
		b.BodyAttr(a.Name, a.Value)
	}
	b.DisableSanitizers(p.DisableSanitizers...)

	return b.Build()
}

func (p *Page) twitterCard(site config.Site) twitter.Card {
	tw := p.Twitter
	s := twitter.Summary{
		Site:        head.FirstNonBlank(tw.Site, site.TwitterSite),
		Creator:     tw.Creator,
		Title:       head.FirstNonBlank(tw.Title, p.Title),
		Description: head.FirstNonBlank(tw.Description, p.Description),
		Image:       tw.Image,
		ImageText:   tw.ImageAlt,
	}
	if tw.Type == twitter.TypeSummaryLargeImage {
		return &twitter.SummaryLargeImage{Summary: s}
	}
	return &s
}

// jsonLDItems splits a top-level list into separate payloads.
func jsonLDItems(v any) []any {
	switch t := stringKeys(v).(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

// stringKeys rewrites YAML mappings with non-string keys (`1: x`) into
// string-keyed maps so the payload always encodes as a JSON object.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = stringKeys(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = stringKeys(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = stringKeys(e)
		}
		return out
	default:
		return v
	}
}

// Render validates p and builds its vue-meta document.
func Render(p *Page, site config.Site, exts ...metadata.Extension) (*metadata.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := p.VueMetaData(site)
	if err != nil {
		return nil, err
	}
	return metadata.NewDocument(m, exts...)
}
