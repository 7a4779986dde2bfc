package svgdom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteTo serializes the document to w as UTF-8 XML with a declaration.
func (d *Document) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n"); err != nil {
		return err
	}
	if err := writeElement(bw, d.Root); err != nil {
		return err
	}
	return bw.Flush()
}

// Bytes serializes the document to a byte slice.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the document and writes it to path. Serialization
// happens fully in memory first, so a failure never leaves a partial file
// behind.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("serializing SVG: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

// ElementString serializes a single element subtree, without an XML
// declaration and without its tail text.
func ElementString(e *Element) (string, error) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	if err := writeElement(bw, e); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeElement(w *bufio.Writer, e *Element) error {
	name := e.Tag
	if e.Prefix != "" {
		name = e.Prefix + ":" + e.Tag
	}

	w.WriteByte('<')
	w.WriteString(name)
	for _, a := range e.attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(escape(a.Value, true))
		w.WriteByte('"')
	}

	if e.Text == "" && len(e.children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}

	w.WriteByte('>')
	w.WriteString(escape(e.Text, false))
	for _, c := range e.children {
		if err := writeElement(w, c); err != nil {
			return err
		}
		w.WriteString(escape(c.Tail, false))
	}
	w.WriteString("</")
	w.WriteString(name)
	_, err := w.WriteString(">")
	return err
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

func escape(s string, attr bool) string {
	if attr {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}
