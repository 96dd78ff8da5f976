package application

import (
	"context"
	"fmt"

	"msgmerge/internal/ports/input"
	"msgmerge/internal/ports/output"
)

// Ensure SyncService implements the input.SyncUseCase port.
var _ input.SyncUseCase = (*SyncService)(nil)

// SyncService copies the store between its JSON file and the mirror
// backend. The file is the source of truth: push replaces the mirror,
// pull rewrites the file from the mirror.
type SyncService struct {
	storeRepo output.StoreRepository
	mirror    output.StoreMirror
	storePath string
}

func NewSyncService(
	storeRepo output.StoreRepository,
	mirror output.StoreMirror,
	storePath string,
) *SyncService {
	return &SyncService{
		storeRepo: storeRepo,
		mirror:    mirror,
		storePath: storePath,
	}
}

// Push replaces the mirror content with the current store file.
func (s *SyncService) Push(ctx context.Context) (*input.MergeReport, error) {
	store, err := s.storeRepo.Load(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	if err := s.mirror.ReplaceAll(ctx, store); err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	return &input.MergeReport{Totals: store.TotalKeys()}, nil
}

// Pull rewrites the store file from the mirror content.
func (s *SyncService) Pull(ctx context.Context) (*input.MergeReport, error) {
	store, err := s.mirror.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	if err := s.storeRepo.Save(store.Normalized(), s.storePath); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	return &input.MergeReport{Totals: store.TotalKeys()}, nil
}
