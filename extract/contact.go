package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/storeintel/storeintel"
	"github.com/storeintel/storeintel/goquery"
)

// contactPaths are the conventional contact page candidates probed
// for address information; the first reachable page wins.
var contactPaths = []string{"/pages/contact", "/contact", "/contact-us", "/pages/contact-us"}

// addressSelectors locate address-styled elements on the contact
// page; one candidate is taken per selector.
var addressSelectors = []string{".address", ".contact-address", `[class*="address"]`}

const (
	maxEmails     = 5
	maxPhones     = 5
	minAddressLen = 10
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phoneRes match common phone formats, with optional country code.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\d{10,}`),
}

// ContactDetails harvests emails and phone numbers from the homepage
// text and address strings from the conventional contact pages.
// Emails and phones are deduplicated and capped.
func (e *Extractor) ContactDetails(ctx context.Context, baseURL string) *storeintel.ContactInfo {
	info := &storeintel.ContactInfo{
		Emails:    []string{},
		Phones:    []string{},
		Addresses: []string{},
	}

	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return info
	}
	text := page.Text()

	info.Emails = dedupeCapped(emailRe.FindAllString(text, -1), maxEmails)

	var phones []string
	for _, re := range phoneRes {
		phones = append(phones, re.FindAllString(text, -1)...)
	}
	info.Phones = dedupeCapped(phones, maxPhones)

	for _, path := range contactPaths {
		contactPage := e.fetchPage(ctx, joinPath(baseURL, path))
		if contactPage == nil {
			continue
		}
		for _, selector := range addressSelectors {
			address := goquery.SelectionText(contactPage.SelectFirst(selector))
			if len(address) > minAddressLen {
				info.Addresses = append(info.Addresses, address)
			}
		}
		break
	}

	return info
}

// dedupeCapped trims, deduplicates preserving first-seen order, and
// caps the list.
func dedupeCapped(values []string, limit int) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
