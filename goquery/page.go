// Package goquery implements the markup probe: selector-based and
// pattern-based query primitives over parsed HTML, plus structured
// data discovery. Every extractor in the system is built on these
// primitives; none touches raw markup directly.
package goquery

import (
	"bytes"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/storeintel/storeintel"
)

// Link is an outbound anchor with its visible text.
type Link struct {
	Href string
	Text string
}

// Page wraps a parsed HTML document and the URL it was fetched from.
// It is not safe for concurrent mutation (StripChrome); each
// extraction run owns its pages exclusively.
type Page struct {
	doc  *goquery.Document
	base *url.URL
}

// ParsePage parses an HTML body fetched from baseURL.
func ParsePage(body []byte, baseURL string) (*Page, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, storeintel.Errorf(storeintel.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, storeintel.Errorf(storeintel.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Page{doc: doc, base: base}, nil
}

// Select returns all elements matching the CSS selector, in document
// order.
func (p *Page) Select(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// SelectFirst returns the first element matching the selector, or an
// empty selection.
func (p *Page) SelectFirst(selector string) *goquery.Selection {
	return p.doc.Find(selector).First()
}

// Text returns the visible text of the whole document with
// whitespace collapsed.
func (p *Page) Text() string {
	return CollapseSpace(p.doc.Text())
}

// Links returns every anchor with a non-empty href, in document
// order. Hrefs are returned as written, not resolved.
func (p *Page) Links() []Link {
	var links []Link
	p.doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		links = append(links, Link{
			Href: href,
			Text: strings.TrimSpace(sel.Text()),
		})
	})
	return links
}

// StructuredData returns every machine-readable linked-data block
// (script[type="application/ld+json"]) decoded as a JSON object.
// Malformed blocks are skipped; a broken block never aborts the page.
func (p *Page) StructuredData() []map[string]any {
	var blocks []map[string]any
	p.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var data map[string]any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return
		}
		blocks = append(blocks, data)
	})
	return blocks
}

// MetaContent returns the content attribute of the first matching
// meta tag, trying name= then property=.
func (p *Page) MetaContent(key string) string {
	for _, attr := range []string{"name", "property"} {
		sel := p.doc.Find(`meta[` + attr + `="` + key + `"]`).First()
		if content, ok := sel.Attr("content"); ok && content != "" {
			return content
		}
	}
	return ""
}

// StripChrome removes script, style, nav, header, and footer elements
// in place so that subsequent text extraction sees only page content.
func (p *Page) StripChrome() {
	p.doc.Find("script, style, nav, header, footer").Remove()
}

// ResolveURL resolves an href against the page's base URL. Returns
// the empty string for unparseable hrefs.
func (p *Page) ResolveURL(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return p.base.ResolveReference(ref).String()
}

// TextMatch is a regex hit inside a single text node, paired with the
// element that contains it.
type TextMatch struct {
	Text   string             // full trimmed content of the text node
	Match  string             // the matched token
	Parent *goquery.Selection // enclosing element
}

// ScanText scans every text node in document order for the pattern
// and returns up to limit matches (no limit when limit <= 0). Used by
// extractors that anchor on textual tokens (prices) and then inspect
// the surrounding DOM.
func (p *Page) ScanText(re *regexp.Regexp, limit int) []TextMatch {
	var matches []TextMatch
	p.doc.Find("*").Contents().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if goquery.NodeName(sel) != "#text" {
			return true
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		match := re.FindString(text)
		if match == "" {
			return true
		}
		matches = append(matches, TextMatch{
			Text:   text,
			Match:  match,
			Parent: sel.Parent(),
		})
		return limit <= 0 || len(matches) < limit
	})
	return matches
}

// CollapseSpace trims the string and collapses every whitespace run
// to a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SelectionText returns the trimmed, space-collapsed text of a
// selection.
func SelectionText(sel *goquery.Selection) string {
	return CollapseSpace(sel.Text())
}
