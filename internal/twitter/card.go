// internal/twitter/card.go
//
// Twitter cards and their <meta name="twitter:*"> expansion.
//
// Context
// -------
// Card is a closed union: only types in this package implement it.  The
// expansion lives in MetaTags, which switches on the concrete variant, so
// callers never inspect card types themselves.
//
// Summary emission order
// ----------------------
//  1. twitter:card    always, content = card type.
//  2. twitter:site    always, even when Site is blank.
//  3. twitter:creator, twitter:title, twitter:description, twitter:image,
//     twitter:image:alt, each only when its field is non-blank.
//
// Every hid is derived from the meta name.
package twitter

import "github.com/yanizio/headmeta/internal/head"

// Card type discriminators.
const (
	TypeSummary           = "summary"
	TypeSummaryLargeImage = "summary_large_image"
)

// Card is implemented by the card variants of this package.
type Card interface {
	// Type returns the twitter:card discriminator.
	Type() string
	// SiteHandle is the @username of the site.
	SiteHandle() string
	// CreatorHandle is the @username the content is attributed to.
	CreatorHandle() string

	card()
}

// Summary is the default card: title, description, and a thumbnail.
type Summary struct {
	Site        string
	Creator     string
	Title       string
	Description string
	Image       string

	// ImageText is the image alt text, at most 420 characters.
	ImageText string
}

func (Summary) Type() string            { return TypeSummary }
func (s Summary) SiteHandle() string    { return s.Site }
func (s Summary) CreatorHandle() string { return s.Creator }
func (Summary) card()                   {}

// SummaryLargeImage has the Summary fields and renders a prominent image.
type SummaryLargeImage struct {
	Summary
}

func (SummaryLargeImage) Type() string { return TypeSummaryLargeImage }

// New returns an empty card for the given discriminator, or nil when the
// type is unknown.
func New(typ string) Card {
	switch typ {
	case TypeSummary:
		return &Summary{}
	case TypeSummaryLargeImage:
		return &SummaryLargeImage{}
	}
	return nil
}

// MetaTags returns the meta elements describing c.  A nil card yields nil.
func MetaTags(c Card) []head.Meta {
	switch v := c.(type) {
	case *Summary:
		if v == nil {
			return nil
		}
		return summaryTags(v.Type(), *v)
	case Summary:
		return summaryTags(v.Type(), v)
	case *SummaryLargeImage:
		if v == nil {
			return nil
		}
		return summaryTags(v.Type(), v.Summary)
	case SummaryLargeImage:
		return summaryTags(v.Type(), v.Summary)
	}
	return nil
}

func summaryTags(typ string, s Summary) []head.Meta {
	var out []head.Meta
	always := func(name, content string) {
		out = head.AddMeta(out, head.Meta{Name: name, Content: content}, head.Mandatory())
	}
	optional := func(name, content string) {
		if !head.IsBlank(content) {
			out = head.AddMeta(out, head.Meta{Name: name, Content: content})
		}
	}

	always("twitter:card", typ)
	always("twitter:site", s.Site)
	optional("twitter:creator", s.Creator)
	optional("twitter:title", s.Title)
	optional("twitter:description", s.Description)
	optional("twitter:image", s.Image)
	optional("twitter:image:alt", s.ImageText)
	return out
}
