package extract

import (
	"strings"

	"github.com/clearstone-io/tradematch/internal/domain/document"
	"github.com/clearstone-io/tradematch/internal/domain/field"
	"github.com/clearstone-io/tradematch/internal/domain/fieldstore"
)

// Tabular walks rows of (label, value) cells and returns a fresh field
// store. Cell 0 is the label, cell 1 the value; rows with fewer than two
// cells or a blank label are skipped and trailing cells are ignored.
// Labels are canonicalized so term sheet columns converge on the same keys
// the narrative extractor produces.
func Tabular(rows [][]document.Cell) fieldstore.Store {
	b := fieldstore.NewBuilder()
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0].String())
		if label == "" {
			continue
		}
		b.Set(field.Canonicalize(label), row[1].String())
	}
	return b.Build()
}
