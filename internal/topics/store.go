package topics

import (
	"context"
	"errors"
)

// ErrNoFieldsToUpdate is returned by Update when the patch contains no
// fields. It is raised before any SQL is issued.
var ErrNoFieldsToUpdate = errors.New("No fields to update")

// Repository is the persistence surface for topics.
//
// Lookups that can miss return (nil, nil) — absence is a sentinel, not an
// error; handlers decide whether it maps to a 404. Storage failures are
// annotated and re-thrown, never swallowed.
type Repository interface {
	GetAll(ctx context.Context) ([]Topic, error)
	GetByID(ctx context.Context, id int) (*Topic, error)
	Create(ctx context.Context, input CreateInput) (*Topic, error)
	Update(ctx context.Context, id int, patch UpdateInput) (*Topic, error)
	Delete(ctx context.Context, id int) (*Topic, error)

	GetByFramework(ctx context.Context, framework string) ([]Topic, error)
	GetBySlug(ctx context.Context, slug string) (*Topic, error)
	GetByParentID(ctx context.Context, parentID int) ([]Topic, error)
	GetByDifficulty(ctx context.Context, level string) ([]Topic, error)

	// DeleteAll clears the table without dropping it (forced reseed).
	DeleteAll(ctx context.Context) error
}

// SchemaManager brings the topics table up to the current column set.
//
// Ensure is idempotent, additive, and cheap to no-op; it runs before every
// collection-level entry point so the API survives both a fresh database
// and an administrative table drop.
type SchemaManager interface {
	Ensure(ctx context.Context) error
	Drop(ctx context.Context) error
}

// LegacyMigrator backfills new-shape fields on rows that predate the
// multi-language schema. Run returns the number of rows migrated.
type LegacyMigrator interface {
	Run(ctx context.Context) (int, error)
}
