package extract_test

import (
	"context"
	"testing"

	"github.com/storeintel/storeintel/extract"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_SocialHandles(t *testing.T) {
	t.Parallel()

	t.Run("extracts handles from link targets", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<a href="https://instagram.com/acmestore">Instagram</a>
			<a href="https://facebook.com/acmestorefb">Facebook</a>
			<a href="https://twitter.com/acmetweets">Twitter</a>
			<a href="https://tiktok.com/@acmetok">TikTok</a>
			<a href="https://pinterest.com/acmepins">Pinterest</a>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		handles := e.SocialHandles(context.Background(), base)

		assert.Equal(t, "acmestore", handles["instagram"])
		assert.Equal(t, "acmestorefb", handles["facebook"])
		assert.Equal(t, "acmetweets", handles["twitter"])
		assert.Equal(t, "acmetok", handles["tiktok"])
		assert.Equal(t, "acmepins", handles["pinterest"])
	})

	t.Run("strips channel prefixes for youtube and linkedin", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<a href="https://youtube.com/c/acmetube">YouTube</a>
			<a href="https://linkedin.com/company/acme-co">LinkedIn</a>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		handles := e.SocialHandles(context.Background(), base)

		assert.Equal(t, "acmetube", handles["youtube"])
		assert.Equal(t, "acme-co", handles["linkedin"])
	})

	t.Run("first matching link wins per platform", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<a href="https://instagram.com/primary">Main</a>
			<a href="https://instagram.com/secondary">Alt</a>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		handles := e.SocialHandles(context.Background(), base)

		assert.Equal(t, "primary", handles["instagram"])
	})

	t.Run("falls back to visible text when no link matches", func(t *testing.T) {
		t.Parallel()

		homepage := `<html><body>
			<p>Find us at twitter.com/textonlyhandle for updates.</p>
		</body></html>`

		e := &extract.Extractor{Fetcher: siteFetcher(map[string]string{base: homepage})}
		handles := e.SocialHandles(context.Background(), base)

		assert.Equal(t, "textonlyhandle", handles["twitter"])
	})

	t.Run("empty map when homepage is unreachable", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{Fetcher: downFetcher()}
		handles := e.SocialHandles(context.Background(), base)

		assert.NotNil(t, handles)
		assert.Empty(t, handles)
	})
}
