// internal/opengraph/opengraph.go
//
// Open Graph properties and their <meta property="og:*"> expansion.
//
// Context
// -------
// MetaTags emits, in order: og:title, og:description, og:site_name, og:url
// (each only when non-blank), then one group per image.  Images with a blank
// URL are skipped and do not consume a position.  Image hids are keyed on
// the 1-based position, zero padded to three digits, so a re-render with the
// same images yields the same hids.
//
// Notes
// -----
//   - og:image:height reuses the og:image:width key for its hid.  Consumers
//     already match on those values, so the key is kept as is.
package opengraph

import (
	"fmt"
	"strconv"

	"github.com/yanizio/headmeta/internal/head"
)

// Image is one og:image entry.  Width and Height are emitted only when
// greater than zero.
type Image struct {
	URL    string `json:"url" yaml:"url"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// Properties holds the Open Graph data of one page.
type Properties struct {
	Title       string
	Description string
	SiteName    string
	URL         string
	Images      []Image
}

// AppendImage adds an image without dimensions.  Blank URLs are ignored.
func (p *Properties) AppendImage(url string) {
	if head.IsBlank(url) {
		return
	}
	p.Images = append(p.Images, Image{URL: url})
}

// AppendImageSize adds an image with dimensions.  Blank URLs are ignored.
func (p *Properties) AppendImageSize(url string, width, height int) {
	if head.IsBlank(url) {
		return
	}
	p.Images = append(p.Images, Image{URL: url, Width: width, Height: height})
}

// AppendImages adds one image per URL as given.  Blank entries are kept in
// the list and skipped by MetaTags.
func (p *Properties) AppendImages(urls ...string) {
	for _, u := range urls {
		p.Images = append(p.Images, Image{URL: u})
	}
}

// MetaTags returns the meta elements describing p.  A nil receiver yields
// nil.
func (p *Properties) MetaTags() []head.Meta {
	if p == nil {
		return nil
	}

	var out []head.Meta
	add := func(property, content string) {
		if head.IsBlank(content) {
			return
		}
		out = head.AddMeta(out, head.Meta{Property: property, Content: content})
	}

	add("og:title", p.Title)
	add("og:description", p.Description)
	add("og:site_name", p.SiteName)
	add("og:url", p.URL)

	i := 1
	for _, img := range p.Images {
		if head.IsBlank(img.URL) {
			continue
		}

		out = append(out, imageMeta("og:image", img.URL, imageHid("og:image", i)))
		if img.Width > 0 {
			out = append(out, imageMeta("og:image:width", strconv.Itoa(img.Width), imageHid("og:image:width", i)))
		}
		if img.Height > 0 {
			out = append(out, imageMeta("og:image:height", strconv.Itoa(img.Height), imageHid("og:image:width", i)))
		}

		i++
	}

	return out
}

func imageMeta(property, content, hid string) head.Meta {
	return head.Meta{Element: head.Element{Hid: hid}, Property: property, Content: content}
}

// imageHid hashes "<prefix>:<position as %03d>".
func imageHid(prefix string, position int) string {
	return head.Hid(fmt.Sprintf("%s:%03d", prefix, position))
}
