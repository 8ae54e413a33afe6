// Package document models the two trade document variants and their typed
// tabular cells.
package document

import "github.com/clearstone-io/tradematch/internal/domain/fieldstore"

// Kind discriminates the document variants.
type Kind string

// Document kinds.
const (
	// KindNarrative is a free-text source, originally a PDF-rendered
	// trade agreement.
	KindNarrative Kind = "narrative"
	// KindTabular is a row/column source, originally a spreadsheet term
	// sheet.
	KindTabular Kind = "tabular"
)

// Document is a closed union over the narrative and tabular variants. It is
// an immutable value object: extraction does not mutate a document, it
// derives a new one via WithFields.
type Document struct {
	name   string
	kind   Kind
	text   string
	rows   [][]Cell
	fields fieldstore.Store
}

// NewNarrative creates a narrative document from decoded text. The field
// store is empty until an extraction pass derives a populated copy.
func NewNarrative(name, text string) Document {
	return Document{name: name, kind: KindNarrative, text: text}
}

// NewTabular creates a tabular document from decoded rows.
func NewTabular(name string, rows [][]Cell) Document {
	return Document{name: name, kind: KindTabular, rows: rows}
}

// Name returns the file-system-independent display name.
func (d Document) Name() string { return d.name }

// Kind returns the document variant tag.
func (d Document) Kind() Kind { return d.kind }

// Text returns the raw text of a narrative document.
func (d Document) Text() string { return d.text }

// Rows returns the rows of a tabular document.
func (d Document) Rows() [][]Cell { return d.rows }

// Fields returns the extracted field store.
func (d Document) Fields() fieldstore.Store { return d.fields }

// WithFields returns a copy carrying the given field store.
func (d Document) WithFields(fields fieldstore.Store) Document {
	d.fields = fields
	return d
}
