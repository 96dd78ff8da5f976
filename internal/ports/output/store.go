package output

import (
	"context"

	"msgmerge/internal/domain/entities"
)

// StoreRepository persists the full locale store at a path. Load fails when
// the path does not exist or does not hold a locale → table mapping; Save
// fully overwrites the previous content with the canonical encoding.
type StoreRepository interface {
	Load(path string) (entities.Store, error)
	Save(store entities.Store, path string) error
}

// StoreMirror is a secondary, queryable copy of the store (e.g. a database
// table translation dashboards read from). The JSON file stays the source
// of truth; the mirror is replaced wholesale on every push.
type StoreMirror interface {
	ReplaceAll(ctx context.Context, store entities.Store) error
	LoadAll(ctx context.Context) (entities.Store, error)
}
