package extract_test

import (
	"context"
	"testing"

	"github.com/storeintel/storeintel/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ContactDetails(t *testing.T) {
	t.Parallel()

	t.Run("harvests emails and phones from the homepage", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<p>Write to support@example.com or sales@example.com.</p>
			<p>Call us on 555-123-4567.</p>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		info := e.ContactDetails(context.Background(), base)

		assert.Equal(t, []string{"support@example.com", "sales@example.com"}, info.Emails)
		assert.Contains(t, info.Phones, "555-123-4567")
	})

	t.Run("deduplicates and caps emails", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<p>a@x.com b@x.com a@x.com c@x.com d@x.com e@x.com f@x.com g@x.com</p>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		info := e.ContactDetails(context.Background(), base)

		assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}, info.Emails)
	})

	t.Run("collects addresses from the first reachable contact page", func(t *testing.T) {
		t.Parallel()

		contact := `<html><body>
			<div class="address">123 Commerce Street, Springfield</div>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base:               `<html><body>home</body></html>`,
			base + "/contact":  contact,
			base + "/contact-us": `<html><body><div class="address">Should never be read</div></body></html>`,
		})}

		info := e.ContactDetails(context.Background(), base)

		require.Len(t, info.Addresses, 2)
		assert.Equal(t, "123 Commerce Street, Springfield", info.Addresses[0])
	})

	t.Run("stops at the first reachable contact page even without addresses", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base:              `<html><body>home</body></html>`,
			base + "/contact": `<html><body><p>no address markup here at all</p></body></html>`,
			base + "/contact-us": `<html><body>
				<div class="address">456 Fallback Avenue, Shelbyville</div>
			</body></html>`,
		})}

		info := e.ContactDetails(context.Background(), base)
		assert.Empty(t, info.Addresses)
	})

	t.Run("skips address candidates below the minimum length", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{
			base:                   `<html><body>home</body></html>`,
			base + "/pages/contact": `<html><body><div class="address">too short</div></body></html>`,
		})}

		info := e.ContactDetails(context.Background(), base)
		assert.Empty(t, info.Addresses)
	})

	t.Run("empty slices when the homepage is unreachable", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Fetcher: downFetcher()}
		info := e.ContactDetails(context.Background(), base)

		assert.NotNil(t, info.Emails)
		assert.Empty(t, info.Emails)
		assert.NotNil(t, info.Phones)
		assert.Empty(t, info.Phones)
		assert.NotNil(t, info.Addresses)
		assert.Empty(t, info.Addresses)
	})
}
