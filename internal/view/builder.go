// Package view renders validated payloads into markup fragments. Output is
// built as an html.Node tree, so every text and attribute value is escaped by
// html.Render.
package view

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a markup fragment. A nil Node renders nothing.
type Node = *html.Node

// El builds an element. attrs alternates name and value; nil children are skipped.
func El(tag string, attrs []html.Attribute, children ...Node) Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Type == html.DocumentNode {
			// fragments are flattened into the parent
			for _, kid := range detach(c) {
				n.AppendChild(kid)
			}
			continue
		}
		n.AppendChild(c)
	}
	return n
}

// A builds an attribute list from name/value pairs.
func A(pairs ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs = append(attrs, html.Attribute{Key: pairs[i], Val: pairs[i+1]})
	}
	return attrs
}

// Class is shorthand for A("class", name).
func Class(name string) []html.Attribute {
	return A("class", name)
}

func Text(s string) Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Fragment groups sibling nodes without a wrapping element.
func Fragment(children ...Node) Node {
	root := &html.Node{Type: html.DocumentNode}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Type == html.DocumentNode {
			for _, kid := range detach(c) {
				root.AppendChild(kid)
			}
			continue
		}
		root.AppendChild(c)
	}
	return root
}

// If returns n when cond holds, nil otherwise.
func If(cond bool, n func() Node) Node {
	if !cond {
		return nil
	}
	return n()
}

// Each maps items to nodes and groups them.
func Each[T any](items []T, fn func(T) Node) Node {
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, fn(it))
	}
	return Fragment(nodes...)
}

func Div(attrs []html.Attribute, children ...Node) Node { return El("div", attrs, children...) }
func P(attrs []html.Attribute, children ...Node) Node   { return El("p", attrs, children...) }
func H3(attrs []html.Attribute, children ...Node) Node  { return El("h3", attrs, children...) }
func H4(attrs []html.Attribute, children ...Node) Node  { return El("h4", attrs, children...) }
func Span(attrs []html.Attribute, children ...Node) Node {
	return El("span", attrs, children...)
}
func Small(attrs []html.Attribute, children ...Node) Node {
	return El("small", attrs, children...)
}
func Button(attrs []html.Attribute, children ...Node) Node {
	return El("button", attrs, children...)
}
func Img(attrs []html.Attribute) Node { return El("img", attrs) }
func I(class string) Node             { return El("i", Class(class)) }

// Render serializes n. A nil node renders as the empty string.
func Render(n Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			_ = html.Render(&sb, c)
		}
		return sb.String()
	}
	_ = html.Render(&sb, n)
	return sb.String()
}

func detach(n Node) []Node {
	var kids []Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		kids = append(kids, c)
		c = next
	}
	return kids
}
