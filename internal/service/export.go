package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/pkordes/photo-tagger/internal/domain"
	"github.com/pkordes/photo-tagger/internal/repo"
)

// FolderPrefix starts the name of every export folder.
const FolderPrefix = "COLLECTION_"

// PhotoSet is the read side of a collection the exporter selects from.
// *Collection satisfies it.
type PhotoSet interface {
	Photos() []domain.Photo
}

// Exporter copies every photo carrying a tag into a tag-named folder.
type Exporter struct {
	store repo.ExportRepo
	log   *slog.Logger
}

// NewExporter constructs an Exporter writing through store.
// A nil logger falls back to slog.Default().
func NewExporter(store repo.ExportRepo, log *slog.Logger) *Exporter {
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{store: store, log: log}
}

// FolderName turns a tag into a filesystem-safe folder name: only letters,
// digits, spaces and underscores survive, trailing spaces are dropped, the
// result is upper-cased, the remaining spaces become underscores, and
// FolderPrefix is prepended. A leading space left behind by stripped
// punctuation is kept.
//
//	"Nature"       -> "COLLECTION_NATURE"
//	"Street art!"  -> "COLLECTION_STREET_ART"
//	"! nature"     -> "COLLECTION__NATURE"
func FolderName(tag string) string {
	var b strings.Builder
	for _, r := range tag {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.ToUpper(strings.TrimRight(b.String(), " "))
	return FolderPrefix + strings.ReplaceAll(safe, " ", "_")
}

// ExportByTag copies every photo in set carrying tag into
// destRoot/FolderName(tag), in collection order, under each photo's original
// file name. Existing copies are overwritten.
//
// Failing to create the folder aborts before anything is copied and returns an
// error wrapping domain.ErrStorage. A photo that fails to copy is recorded in
// the report's Failures and the batch carries on. Source files are only read.
func (e *Exporter) ExportByTag(ctx context.Context, set PhotoSet, tag, destRoot string) (domain.ExportReport, error) {
	canonical := domain.NormalizeTag(tag)
	if canonical == "" {
		return domain.ExportReport{}, fmt.Errorf("service.Exporter.ExportByTag: %w: tag is required", domain.ErrValidation)
	}
	if strings.TrimSpace(destRoot) == "" {
		return domain.ExportReport{}, fmt.Errorf("service.Exporter.ExportByTag: %w: destination is required", domain.ErrValidation)
	}

	root, err := filepath.Abs(destRoot)
	if err != nil {
		return domain.ExportReport{}, fmt.Errorf("service.Exporter.ExportByTag: %w: %w", domain.ErrStorage, err)
	}
	folder := filepath.Join(root, FolderName(canonical))
	if err := e.store.EnsureDir(ctx, folder); err != nil {
		return domain.ExportReport{}, fmt.Errorf("service.Exporter.ExportByTag: %w: %w", domain.ErrStorage, err)
	}

	report := domain.ExportReport{
		ID:       uuid.New(),
		Tag:      canonical,
		Folder:   folder,
		Failures: []domain.CopyFailure{},
	}
	for _, p := range set.Photos() {
		if !p.HasTag(canonical) {
			continue
		}
		report.Matched++

		if err := e.store.CopyFile(ctx, p.FullPath, filepath.Join(folder, p.FileName)); err != nil {
			e.log.WarnContext(ctx, "photo copy failed",
				"export_id", report.ID,
				"file", p.FileName,
				"error", err,
			)
			report.Failures = append(report.Failures, domain.CopyFailure{FileName: p.FileName, Err: err})
			continue
		}
		report.Copied++
	}

	e.log.InfoContext(ctx, "export finished",
		"export_id", report.ID,
		"tag", canonical,
		"folder", folder,
		"matched", report.Matched,
		"copied", report.Copied,
		"failed", len(report.Failures),
	)
	return report, nil
}
