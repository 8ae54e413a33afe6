// Package document orchestrates loading, extraction and comparison of
// trade documents.
package document

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/clearstone-io/tradematch/internal/domain/comparison"
	domdoc "github.com/clearstone-io/tradematch/internal/domain/document"
	"github.com/clearstone-io/tradematch/internal/domain/field"
	"github.com/clearstone-io/tradematch/internal/logger"
	"github.com/clearstone-io/tradematch/internal/metrics"
	"github.com/clearstone-io/tradematch/internal/usecase/compare"
	"github.com/clearstone-io/tradematch/internal/usecase/extract"
)

const (
	agreementExt = ".pdf"
	termSheetExt = ".xlsx"
)

// Service loads trade documents, runs extraction and delegates to the
// comparison engine. All state is request-scoped; the service itself is
// safe for concurrent use.
type Service struct {
	catalog       Catalog
	agreements    AgreementSource
	termSheets    TermSheetSource
	engine        *compare.Service
	agreementsDir string
	termSheetsDir string
}

// New creates a document service.
func New(catalog Catalog, agreements AgreementSource, termSheets TermSheetSource, engine *compare.Service) *Service {
	return &Service{
		catalog:    catalog,
		agreements: agreements,
		termSheets: termSheets,
		engine:     engine,
	}
}

// WithFolders sets the default folders used when the caller supplies none.
func (s *Service) WithFolders(agreementsDir, termSheetsDir string) *Service {
	s.agreementsDir = agreementsDir
	s.termSheetsDir = termSheetsDir
	return s
}

// ListAgreements returns the trade agreement files in folder, or in the
// configured default folder when folder is empty.
func (s *Service) ListAgreements(ctx context.Context, folder string) ([]string, error) {
	if folder == "" {
		folder = s.agreementsDir
	}
	files, err := s.catalog.List(ctx, folder, agreementExt)
	if err != nil {
		return nil, fmt.Errorf("list trade agreements: %w", err)
	}
	return files, nil
}

// ListTermSheets returns the term sheet files in folder, or in the
// configured default folder when folder is empty.
func (s *Service) ListTermSheets(ctx context.Context, folder string) ([]string, error) {
	if folder == "" {
		folder = s.termSheetsDir
	}
	files, err := s.catalog.List(ctx, folder, termSheetExt)
	if err != nil {
		return nil, fmt.Errorf("list term sheets: %w", err)
	}
	return files, nil
}

// LoadAgreement decodes and extracts a trade agreement. Partial extraction
// is normal; only an unreadable source is an error.
func (s *Service) LoadAgreement(ctx context.Context, path string) (domdoc.Document, error) {
	text, err := s.agreements.ReadText(ctx, path)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("load trade agreement: %w", err)
	}

	fields := extract.Narrative(text)
	fields = extract.Enhance(text, fields)
	metrics.FieldsExtractedTotal.WithLabelValues("agreement").Add(float64(fields.Len()))

	doc := domdoc.NewNarrative(filepath.Base(path), text).WithFields(fields)
	return doc, nil
}

// LoadTermSheet decodes and extracts a term sheet.
func (s *Service) LoadTermSheet(ctx context.Context, path string) (domdoc.Document, error) {
	rows, err := s.termSheets.ReadRows(ctx, path)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("load term sheet: %w", err)
	}

	fields := extract.Tabular(rows)
	metrics.FieldsExtractedTotal.WithLabelValues("term_sheet").Add(float64(fields.Len()))

	doc := domdoc.NewTabular(filepath.Base(path), rows).WithFields(fields)
	return doc, nil
}

// Compare loads both documents and reconciles their extracted fields into
// a comparison report.
func (s *Service) Compare(ctx context.Context, agreementPath, termSheetPath string) (comparison.Report, error) {
	agreement, err := s.LoadAgreement(ctx, agreementPath)
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return comparison.Report{}, err
	}

	termSheet, err := s.LoadTermSheet(ctx, termSheetPath)
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return comparison.Report{}, err
	}

	report, err := s.engine.Compare(ctx, &agreement, &termSheet)
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return comparison.Report{}, fmt.Errorf("compare documents: %w", err)
	}

	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()
	metrics.MatchPercentage.Observe(report.MatchPercentage)

	logger.FromContext(ctx).Info("documents compared",
		zap.String("trade_agreement", report.AgreementFile),
		zap.String("term_sheet", report.TermSheetFile),
		zap.Float64("match_percentage", report.MatchPercentage),
		zap.Int("fields_compared", len(report.Results)),
		zap.Int("differences", len(report.Differences())),
		zap.Strings("novel_fields", novelFields(report.Results)),
	)
	return report, nil
}

// novelFields returns the compared field names outside the canonical
// vocabulary, so unrecognized term sheet columns surface in the logs.
func novelFields(results []comparison.FieldResult) []string {
	novel := make([]string, 0, len(results))
	for _, res := range results {
		if !field.Known(res.Field) {
			novel = append(novel, res.Field)
		}
	}
	return novel
}
