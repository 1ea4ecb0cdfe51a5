// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webpage

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Untitled is the title used when a page has no usable <title>.
const Untitled = "untitled"

// Article is the text extracted from an HTML page.
type Article struct {
	Title string
	Text  string
}

// Extract parses an HTML document, drops <script> and <style> elements, and
// returns the page title and its text with whitespace collapsed to single
// spaces.
func Extract(input []byte) (Article, error) {
	// Scripting disabled so <noscript> content parses as markup, not raw text.
	doc, err := html.ParseWithOptions(bytes.NewReader(input), html.ParseOptionEnableScripting(false))
	if err != nil {
		return Article{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var parts []string
	collectText(doc, &parts)

	return Article{
		Title: findTitle(doc),
		Text:  strings.Join(strings.Fields(strings.Join(parts, " ")), " "),
	}, nil
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// findTitle returns the trimmed text of the first <title> element, or
// Untitled when it is missing or empty.
func findTitle(n *html.Node) string {
	t := findFirst(n, atom.Title)
	if t == nil {
		return Untitled
	}
	var b strings.Builder
	for c := t.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	title := strings.TrimSpace(b.String())
	if title == "" {
		return Untitled
	}
	return title
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// Stem turns a page title into a filename stem: spaces become underscores,
// and so do path separators so the file stays in the output directory.
func Stem(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return Untitled
	}
	return strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(title)
}
