package goquery

import (
	"regexp"
	"strings"
)

// DefaultCurrency is returned when nothing on the page identifies a
// currency, or when the page was unreachable.
const DefaultCurrency = "USD"

// currencyEntry pairs a currency code with the symbol and keyword
// patterns that identify it in page text.
type currencyEntry struct {
	code     string
	patterns []*regexp.Regexp
}

// currencyTable lists the recognized currencies in fixed priority
// order. Text scanning walks the table top to bottom and the first
// code with any pattern hit wins. The order is a deliberate,
// documented tie-break (JPY before CNY for a bare yen sign, for
// example), not a confidence ranking.
var currencyTable = buildCurrencyTable([]struct {
	code     string
	patterns []string
}{
	{"USD", []string{`\$`, `usd`, `dollar`, `united states`}},
	{"EUR", []string{`€`, `eur`, `euro`}},
	{"GBP", []string{`£`, `gbp`, `pound`, `sterling`}},
	{"INR", []string{`₹`, `inr`, `rupee`, `rs\.`, `rs `, `india`}},
	{"CAD", []string{`cad`, `c\$`, `canada`}},
	{"AUD", []string{`aud`, `a\$`, `australia`}},
	{"JPY", []string{`¥`, `jpy`, `yen`, `japan`}},
	{"CNY", []string{`¥`, `cny`, `yuan`, `china`}},
	{"KRW", []string{`₩`, `krw`, `won`, `korea`}},
	{"THB", []string{`฿`, `thb`, `baht`, `thailand`}},
	{"SGD", []string{`sgd`, `s\$`, `singapore`}},
	{"MYR", []string{`myr`, `rm`, `malaysia`}},
	{"PHP", []string{`₱`, `php`, `peso`, `philippines`}},
	{"VND", []string{`₫`, `vnd`, `dong`, `vietnam`}},
	{"BRL", []string{`r\$`, `brl`, `real`, `brazil`}},
	{"MXN", []string{`mxn`, `peso`, `mexico`}},
	{"ZAR", []string{`zar`, `rand`, `south africa`}},
})

func buildCurrencyTable(entries []struct {
	code     string
	patterns []string
}) []currencyEntry {
	table := make([]currencyEntry, 0, len(entries))
	for _, e := range entries {
		compiled := make([]*regexp.Regexp, 0, len(e.patterns))
		for _, p := range e.patterns {
			compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
		}
		table = append(table, currencyEntry{code: e.code, patterns: compiled})
	}
	return table
}

// DetectCurrency classifies the page's trading currency. Priority
// order, first match wins:
//
//  1. an explicit currency meta tag,
//  2. a priceCurrency field inside a structured-data offers block
//     (first element if the block holds an array),
//  3. pattern scan of visible text against the currency table.
//
// Returns DefaultCurrency if nothing matches.
func DetectCurrency(page *Page) string {
	if c := page.MetaContent("currency"); c != "" {
		return strings.ToUpper(c)
	}
	if c := page.MetaContent("product:price:currency"); c != "" {
		return strings.ToUpper(c)
	}

	if c := currencyFromStructuredData(page); c != "" {
		return c
	}

	text := strings.ToLower(page.Text())
	for _, entry := range currencyTable {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(text) {
				return entry.code
			}
		}
	}

	return DefaultCurrency
}

// currencyFromStructuredData pulls priceCurrency out of a JSON-LD
// offers block. Offers can be a single object or an array; the first
// element wins.
func currencyFromStructuredData(page *Page) string {
	for _, block := range page.StructuredData() {
		offers, ok := block["offers"]
		if !ok {
			continue
		}

		if list, ok := offers.([]any); ok {
			if len(list) == 0 {
				continue
			}
			offers = list[0]
		}

		offer, ok := offers.(map[string]any)
		if !ok {
			continue
		}
		if currency, ok := offer["priceCurrency"].(string); ok && currency != "" {
			return strings.ToUpper(currency)
		}
	}
	return ""
}
