// Copyright (c) 2026 The EpLibrary Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xmlfile wraps an XML document tree with load/save operations
// and bulk attribute-conditioned value replacement.
//
// The DOM itself belongs to github.com/beevik/etree; this package only
// walks it. Elements returned by [XMLFile.FindAll] are references into
// the wrapped document, not copies. Encoding conversion is out of
// scope: documents are read and written as etree emits them, and the
// [XMLFile.Load]/[XMLFile.Save] reader/writer forms exist for callers
// that transcode themselves.
package xmlfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ErrNoDocument reports a save or search on a wrapper that has not
// loaded or been given a document.
var ErrNoDocument = errors.New("xmlfile: no document")

// XMLFile holds one XML document tree.
type XMLFile struct {
	doc *etree.Document
}

// New returns an empty wrapper. Load a document before saving.
func New() *XMLFile {
	return &XMLFile{}
}

// FromDocument wraps an existing etree document. The wrapper does not
// copy the tree; the caller must not free it out from under the wrapper.
func FromDocument(doc *etree.Document) *XMLFile {
	return &XMLFile{doc: doc}
}

// Document exposes the wrapped tree, or nil before any load.
func (x *XMLFile) Document() *etree.Document {
	return x.doc
}

// LoadFile parses the XML file at path and replaces the wrapped tree.
func (x *XMLFile) LoadFile(path string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("xmlfile: load %s: %w", path, err)
	}
	x.doc = doc
	return nil
}

// Load parses XML from r and replaces the wrapped tree.
func (x *XMLFile) Load(r io.Reader) error {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return fmt.Errorf("xmlfile: load: %w", err)
	}
	x.doc = doc
	return nil
}

// SaveFile writes the wrapped tree to the file at path.
func (x *XMLFile) SaveFile(path string) error {
	if x.doc == nil {
		return ErrNoDocument
	}
	if err := x.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("xmlfile: save %s: %w", path, err)
	}
	return nil
}

// Save writes the wrapped tree to w.
func (x *XMLFile) Save(w io.Writer) error {
	if x.doc == nil {
		return ErrNoDocument
	}
	if _, err := x.doc.WriteTo(w); err != nil {
		return fmt.Errorf("xmlfile: save: %w", err)
	}
	return nil
}

// Clear drops the wrapped tree.
func (x *XMLFile) Clear() {
	x.doc = nil
}

// FindAll returns every element named name, searching the whole tree
// recursively in document order. The references are non-owning.
func (x *XMLFile) FindAll(name string) []*etree.Element {
	if x.doc == nil {
		return nil
	}
	var found []*etree.Element
	for _, child := range x.doc.ChildElements() {
		findAll(child, name, &found)
	}
	return found
}

func findAll(el *etree.Element, name string, out *[]*etree.Element) {
	if el.Tag == name {
		*out = append(*out, el)
	}
	for _, child := range el.ChildElements() {
		findAll(child, name, out)
	}
}

// SetNodeValue sets the text of every element named nodeName whose
// attrName attribute equals attrVal. It returns the number of elements
// changed; zero matches is not an error.
func (x *XMLFile) SetNodeValue(nodeName, attrName, attrVal, nodeVal string) int {
	n := 0
	for _, el := range x.FindAll(nodeName) {
		attr := el.SelectAttr(attrName)
		if attr != nil && attr.Value == attrVal {
			el.SetText(nodeVal)
			n++
		}
	}
	return n
}
