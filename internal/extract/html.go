package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// block elements end a line of text; inline elements run on
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "br": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true, "figure": true,
	"footer": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

// elements whose content is never prose
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "head": true,
}

// FromHTML extracts the readable text of an HTML document, one block per line.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector to restrict the text (empty string for main content extraction)
//   - includeAll: if true, skips readability extraction and keeps the whole body
//   - baseURL: optional URL for context during readability extraction (can be nil)
func FromHTML(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	// a selector overrides includeAll
	if selector != "" {
		return textWithSelector(content, selector)
	}

	if includeAll {
		doc, err := goquery.NewDocumentFromReader(content)
		if err != nil {
			return "", fmt.Errorf("failed to parse HTML: %w", err)
		}
		return normalize(textOf(doc.Selection)), nil
	}

	return mainContentText(content, baseURL)
}

// mainContentText uses go-readability to find the article and flattens its HTML
func mainContentText(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse extracted content: %w", err)
	}
	return normalize(textOf(doc.Selection)), nil
}

func textWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, textOf(s))
	})
	return normalize(strings.Join(parts, "\n")), nil
}

// textOf flattens a selection to text. Whitespace inside text nodes collapses
// to single spaces and block elements are separated by newlines.
func textOf(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			switch {
			case name == "#text":
				// keep one space at each edge so inline neighbours stay apart
				text := c.Text()
				if strings.TrimLeftFunc(text, unicode.IsSpace) != text {
					b.WriteByte(' ')
				}
				b.WriteString(strings.Join(strings.Fields(text), " "))
				if strings.TrimRightFunc(text, unicode.IsSpace) != text {
					b.WriteByte(' ')
				}
			case skippedElements[name]:
			case blockElements[name]:
				b.WriteByte('\n')
				walk(c)
				b.WriteByte('\n')
			default:
				walk(c)
			}
		})
	}
	walk(s)
	return b.String()
}

// normalize trims every line and drops blank ones
func normalize(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
