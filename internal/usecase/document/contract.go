package document

import (
	"context"

	domdoc "github.com/clearstone-io/tradematch/internal/domain/document"
)

// Catalog enumerates document files by folder and extension.
type Catalog interface {
	List(ctx context.Context, dir, ext string) ([]string, error)
}

// AgreementSource decodes a trade agreement file into plain text.
type AgreementSource interface {
	ReadText(ctx context.Context, path string) (string, error)
}

// TermSheetSource decodes a term sheet file into typed rows.
type TermSheetSource interface {
	ReadRows(ctx context.Context, path string) ([][]domdoc.Cell, error)
}
