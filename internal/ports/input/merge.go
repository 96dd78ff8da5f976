package input

import (
	"context"

	"msgmerge/internal/domain/entities"
)

// MergeReport summarizes one maintenance run for the CLI.
type MergeReport struct {
	Stats  entities.MergeStats
	Totals map[string]int
}

// MergeUseCase drives the load → merge → normalize → save pipeline.
type MergeUseCase interface {
	// AddKeys merges a single-locale additions batch into the store.
	AddKeys(batchPath string) (*MergeReport, error)
	// AddTranslations merges a multi-locale translations batch.
	AddTranslations(batchPath string) (*MergeReport, error)
	// Format rewrites the store canonically without changing content.
	Format() (*MergeReport, error)
}

// SyncUseCase mirrors the store to and from a secondary backend.
type SyncUseCase interface {
	Push(ctx context.Context) (*MergeReport, error)
	Pull(ctx context.Context) (*MergeReport, error)
}
