package domain

import "errors"

var (
	// ErrFolderNotFound signals a missing document folder.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrSourceNotFound signals a missing document file.
	ErrSourceNotFound = errors.New("document not found")
	// ErrSourceUnreadable signals a document file that could not be decoded.
	ErrSourceUnreadable = errors.New("document unreadable")
	// ErrNilDocument signals a comparison invoked without both documents.
	ErrNilDocument = errors.New("both documents are required for comparison")
	// ErrScoringProviderError signals a scoring provider failure.
	ErrScoringProviderError = errors.New("scoring provider error")
)
