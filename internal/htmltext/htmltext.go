// Package htmltext reduces HTML documents to the plain text fed to the
// tokenizer.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract returns the visible text of an HTML document. Block elements are
// separated by a space; script and style contents are dropped.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			buf.WriteByte(' ')
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}

// String is Extract for in-memory markup. Unparseable input is returned as is.
func String(s string) string {
	text, err := Extract(strings.NewReader(s))
	if err != nil {
		return s
	}
	return text
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Br, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Tr, atom.Td, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Title, atom.Hr, atom.Dd, atom.Dt:
		return true
	}
	return false
}
