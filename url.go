package storeintel

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// normalizeFlags is the purell flag set applied to every site URL.
// Fragment removal matters: the same page must normalize to the same
// URL regardless of anchors.
const normalizeFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveFragment |
	purell.FlagDecodeUnnecessaryEscapes |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveDotSegments

// NormalizeURL validates and normalizes a site URL. Input without a
// scheme is assumed to be https. Returns EINVALID if no valid host can
// be parsed.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "URL required")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	normalized, err := purell.NormalizeURLString(raw, normalizeFlags)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL format: %v", err)
	}

	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Host == "" {
		return "", Errorf(EINVALID, "invalid URL format")
	}

	return normalized, nil
}

// SiteName derives a display name for a site from its URL: the host
// with any www prefix dropped. Used to key per-site rows in
// competitive summaries. Returns the input unchanged if it cannot be
// parsed.
func SiteName(siteURL string) string {
	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Host == "" {
		return siteURL
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
