package content

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// boilerplate elements removed before text extraction
const boilerplate = "script, style, noscript, header, footer, nav"

// extractParagraphs returns the text of all non-empty <p> elements separated by blank lines.
// Without paragraphs the whole body text is used.
func extractParagraphs(r io.Reader, contentType string) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", fmt.Errorf("decode html: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find(boilerplate).Remove()

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := selectionText(s); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n"), nil
	}

	// fallback: get text from body
	if text := selectionText(doc.Find("body")); text != "" {
		return text, nil
	}
	return "", errors.New("no paragraph text found")
}

// selectionText joins all text nodes under the selection with single spaces
func selectionText(s *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// extractMainContent uses trafilatura to pull the main article text
func extractMainContent(r io.Reader, contentType string, originalURL *url.URL) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", fmt.Errorf("decode html: %w", err)
	}

	// configure trafilatura options
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     originalURL,
	}

	result, err := trafilatura.Extract(decoded, opts)
	if err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}
	if result == nil {
		return "", errors.New("no content extracted")
	}

	content := strings.TrimSpace(result.ContentText)
	if content == "" {
		return "", errors.New("no text content extracted")
	}
	return content, nil
}
