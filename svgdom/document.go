// Package svgdom provides a small mutable DOM for SVG documents.
//
// The pipeline's transforms are attribute-level tree rewrites, so the model
// favors faithful round-tripping over convenience: attribute order is
// preserved, unknown attributes survive untouched, and character data is
// kept in the ElementTree text/tail style. Tag and attribute names are
// matched by local name so that namespaced and bare SVG both work.
package svgdom

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Attr is a single element attribute. Name is the qualified name as it
// appeared in the source document (for example "xlink:href" or "fill").
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the document tree. Text is the character data
// immediately after the start tag; Tail is the character data following the
// element's end tag, inside its parent (the ElementTree convention, which
// round-trips mixed content without a separate text-node type).
type Element struct {
	// Tag is the local tag name with any namespace prefix stripped.
	Tag string
	// Prefix is the namespace prefix the tag carried in the source, if any.
	Prefix string

	Text string
	Tail string

	attrs    []Attr
	children []*Element
	parent   *Element
}

// Document is a parsed SVG document.
type Document struct {
	Root *Element
}

// NewElement creates a detached element with the given local tag name.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Parent returns the element's parent, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's child elements in document order. The
// returned slice is the element's own; callers that remove children while
// iterating should iterate over a copy (see Document.Walk).
func (e *Element) Children() []*Element { return e.children }

// Append adds child as the last child of e.
func (e *Element) Append(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild removes child (and implicitly its whole subtree) from e.
// It reports whether the child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes e from its parent, if it has one.
func (e *Element) Detach() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Attr returns the value of the named attribute. Lookup first tries an
// exact match on the qualified name, then falls back to matching the local
// part, so Attr("href") also finds "xlink:href".
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	for _, a := range e.attrs {
		if local(a.Name) == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue is Attr without the presence flag; absent attributes read as "".
func (e *Element) AttrValue(name string) string {
	v, _ := e.Attr(name)
	return v
}

// SetAttr sets the named attribute, preserving its position if it already
// exists and appending it otherwise.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name || local(a.Name) == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute. It reports whether it was present.
func (e *Element) RemoveAttr(name string) bool {
	for i, a := range e.attrs {
		if a.Name == name || local(a.Name) == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Attrs returns a copy of the element's attributes in document order.
func (e *Element) Attrs() []Attr {
	return append([]Attr(nil), e.attrs...)
}

// Href returns the element's href, accepting both the SVG 2 bare "href"
// and the legacy namespaced "xlink:href".
func (e *Element) Href() (string, bool) {
	return e.Attr("href")
}

// Clone returns a deep copy of the element and its subtree, detached from
// any parent.
func (e *Element) Clone() *Element {
	c := &Element{
		Tag:    e.Tag,
		Prefix: e.Prefix,
		Text:   e.Text,
		Tail:   e.Tail,
		attrs:  append([]Attr(nil), e.attrs...),
	}
	for _, child := range e.children {
		c.Append(child.Clone())
	}
	return c
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone()}
}

// local strips a namespace prefix from a qualified name.
func local(name string) string {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Parse reads an SVG document from r. Input in encodings other than UTF-8
// is transcoded via the encoding declared in the XML header.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	// prefix declarations seen so far, URI -> prefix; SVG exporters declare
	// namespaces on the root, so document-global scope is sufficient.
	prefixes := map[string]string{
		"http://www.w3.org/XML/1998/namespace": "xml",
	}

	var root *Element
	var cur *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing SVG: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					prefixes[a.Value] = a.Name.Local
				}
			}
			el := &Element{Tag: t.Name.Local}
			if p, ok := prefixes[t.Name.Space]; ok && p != "" && t.Name.Space != "" {
				// Only keep an explicit prefix for non-default namespaces;
				// the default SVG namespace serializes as bare tags.
				if !isDefaultSpace(t.Name.Space, prefixes) {
					el.Prefix = p
				}
			}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, Attr{Name: qualify(a.Name, prefixes), Value: a.Value})
			}
			if cur == nil {
				root = el
			} else {
				cur.Append(el)
			}
			cur = el

		case xml.EndElement:
			if cur != nil {
				cur = cur.parent
			}

		case xml.CharData:
			if cur == nil {
				continue
			}
			s := string(t)
			if n := len(cur.children); n > 0 {
				cur.children[n-1].Tail += s
			} else {
				cur.Text += s
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parsing SVG: document has no root element")
	}
	return &Document{Root: root}, nil
}

// ParseFile parses the SVG document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening SVG: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseBytes parses an SVG document held in memory.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(strings.NewReader(string(data)))
}

// qualify reconstructs the serialized attribute name from a resolved
// xml.Name using the prefix declarations collected so far.
func qualify(n xml.Name, prefixes map[string]string) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	}
	if p, ok := prefixes[n.Space]; ok && p != "" {
		return p + ":" + n.Local
	}
	return n.Local
}

// isDefaultSpace reports whether uri was declared as the default namespace
// (bound to the empty prefix, i.e. a plain xmlns attribute).
func isDefaultSpace(uri string, prefixes map[string]string) bool {
	p, ok := prefixes[uri]
	return !ok || p == "" || uri == "http://www.w3.org/2000/svg"
}
