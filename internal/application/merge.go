package application

import (
	"fmt"

	"msgmerge/internal/ports/input"
	"msgmerge/internal/ports/output"
)

// Ensure MergeService implements the input.MergeUseCase port.
var _ input.MergeUseCase = (*MergeService)(nil)

// MergeService runs the load → merge → normalize → save pipeline over the
// store file. Errors are wrapped with the failing phase so the CLI can
// report which step broke.
type MergeService struct {
	storeRepo output.StoreRepository
	batches   output.BatchSource
	storePath string
}

func NewMergeService(
	storeRepo output.StoreRepository,
	batches output.BatchSource,
	storePath string,
) *MergeService {
	return &MergeService{
		storeRepo: storeRepo,
		batches:   batches,
		storePath: storePath,
	}
}

// AddKeys merges a single-locale additions batch into the store.
func (s *MergeService) AddKeys(batchPath string) (*input.MergeReport, error) {
	batch, err := s.batches.LoadAdditions(batchPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	store, err := s.storeRepo.Load(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	stats, err := store.MergeLocale(batch.Locale, batch.Messages)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	if err := s.storeRepo.Save(store.Normalized(), s.storePath); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return &input.MergeReport{Stats: stats, Totals: store.TotalKeys()}, nil
}

// AddTranslations merges a multi-locale translations batch into the store.
func (s *MergeService) AddTranslations(batchPath string) (*input.MergeReport, error) {
	batch, err := s.batches.LoadTranslations(batchPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	store, err := s.storeRepo.Load(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	stats, err := store.MergeKeys(batch.Translations)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	if err := s.storeRepo.Save(store.Normalized(), s.storePath); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return &input.MergeReport{Stats: stats, Totals: store.TotalKeys()}, nil
}

// Format rewrites the store canonically without changing its content.
// Running it twice in a row produces byte-identical files.
func (s *MergeService) Format() (*input.MergeReport, error) {
	store, err := s.storeRepo.Load(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	if err := s.storeRepo.Save(store.Normalized(), s.storePath); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return &input.MergeReport{Totals: store.TotalKeys()}, nil
}
