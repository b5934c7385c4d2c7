package xmlutil

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// NewDocument returns an empty document with an XML declaration.
func NewDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

// Marshal serializes doc.
func Marshal(doc *etree.Document) ([]byte, error) {
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "write xml document")
	}
	return b, nil
}

// WriteString adds <name>value</name> to parent unconditionally.
func WriteString(parent *etree.Element, name, value string) {
	parent.CreateElement(name).SetText(value)
}

// WriteStringIfPresent adds <name>value</name> to parent unless value is empty.
func WriteStringIfPresent(parent *etree.Element, name, value string) {
	WriteIfPresent(parent, name, value, func(s string) bool { return s != "" }, func(s string) string { return s })
}

// WriteIfPresent adds <name> to parent when present(value) holds, using
// format to render the text.
func WriteIfPresent[T any](parent *etree.Element, name string, value T, present func(T) bool, format func(T) string) {
	if !present(value) {
		return
	}
	WriteString(parent, name, format(value))
}

// WriteIfCollectionHasAny wraps items in a <collection> element, writing one
// child per item. Nothing is written for an empty slice.
func WriteIfCollectionHasAny[T any](parent *etree.Element, collection string, items []T, name func(T) string, value func(T) string) {
	if len(items) == 0 {
		return
	}
	el := parent.CreateElement(collection)
	for _, item := range items {
		WriteString(el, name(item), value(item))
	}
}
