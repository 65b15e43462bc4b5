package extract

import (
	"context"
	"regexp"

	"github.com/storeintel/storeintel"
)

// socialPatterns maps each platform to its ordered regex candidates.
// For every platform, link targets are scanned before visible text,
// and the first capture wins; platforms are independent.
var socialPatterns = []struct {
	platform string
	patterns []*regexp.Regexp
}{
	{"instagram", compileAll(`instagram\.com/([^/\s"']+)`, `@([a-zA-Z0-9_.]+)`)},
	{"facebook", compileAll(`facebook\.com/([^/\s"']+)`, `fb\.com/([^/\s"']+)`)},
	{"twitter", compileAll(`twitter\.com/([^/\s"']+)`, `x\.com/([^/\s"']+)`)},
	{"tiktok", compileAll(`tiktok\.com/@([^/\s"']+)`)},
	{"youtube", compileAll(`youtube\.com/(?:channel/|user/|c/)?([^/\s"']+)`)},
	{"linkedin", compileAll(`linkedin\.com/(?:company/|in/)?([^/\s"']+)`)},
	{"pinterest", compileAll(`pinterest\.com/([^/\s"']+)`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// SocialHandles extracts the first handle matched per platform from
// the homepage. Returns an empty map when the homepage is
// unreachable.
func (e *Extractor) SocialHandles(ctx context.Context, baseURL string) storeintel.SocialHandles {
	handles := storeintel.SocialHandles{}

	page := e.fetchPage(ctx, baseURL)
	if page == nil {
		return handles
	}

	links := page.Links()
	text := page.Text()

	for _, entry := range socialPatterns {
		for _, pattern := range entry.patterns {
			for _, link := range links {
				if m := pattern.FindStringSubmatch(link.Href); m != nil {
					handles[entry.platform] = m[1]
					break
				}
			}
			if _, ok := handles[entry.platform]; !ok {
				if m := pattern.FindStringSubmatch(text); m != nil {
					handles[entry.platform] = m[1]
				}
			}
			if _, ok := handles[entry.platform]; ok {
				break
			}
		}
	}

	return handles
}
