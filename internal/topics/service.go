package topics

import (
	"context"
	"log/slog"
	"strings"
)

// Service orchestrates topic operations: schema readiness, validation of
// query arguments, and delegation to the repository.
//
// Collection-level entry points (List, Create, Seed) run the schema manager
// first so the API heals itself after a fresh deploy or a table drop.
// Row-level lookups skip it: if the table is missing the storage error is
// the honest answer.
type Service struct {
	repo     Repository
	schema   SchemaManager
	migrator LegacyMigrator
	logger   *slog.Logger
}

func NewService(repo Repository, schema SchemaManager, migrator LegacyMigrator, logger *slog.Logger) *Service {
	return &Service{repo: repo, schema: schema, migrator: migrator, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Topic, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Topic, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Topic, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id int, patch UpdateInput) (*Topic, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (*Topic, error) {
	return s.repo.Delete(ctx, id)
}

// ByFramework lists topics touching one framework. The framework name is
// lowercased before validation, so "React" and "react" are the same query.
func (s *Service) ByFramework(ctx context.Context, framework string) ([]Topic, error) {
	return s.repo.GetByFramework(ctx, strings.ToLower(framework))
}

func (s *Service) BySlug(ctx context.Context, slugValue string) (*Topic, error) {
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *Service) Children(ctx context.Context, parentID int) ([]Topic, error) {
	return s.repo.GetByParentID(ctx, parentID)
}

func (s *Service) ByDifficulty(ctx context.Context, level string) ([]Topic, error) {
	return s.repo.GetByDifficulty(ctx, strings.ToLower(level))
}

// SeedResult describes the outcome of a seeding request.
type SeedResult struct {
	AlreadySeeded bool
	ExistingCount int
	Created       []Topic
}

// Seed populates the table with the sample catalogue. Without force it
// refuses to touch a non-empty table; with force it clears the table first.
func (s *Service) Seed(ctx context.Context, force bool) (*SeedResult, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		if !force {
			return &SeedResult{AlreadySeeded: true, ExistingCount: len(existing)}, nil
		}
		s.logger.Info("seed_force_reset", slog.Int("deleted", len(existing)))
		if err := s.repo.DeleteAll(ctx); err != nil {
			return nil, err
		}
	}

	created := make([]Topic, 0, len(sampleTopics()))
	for _, input := range sampleTopics() {
		topic, err := s.repo.Create(ctx, input)
		if err != nil {
			return nil, err
		}
		created = append(created, *topic)
	}

	s.logger.Info("seed_completed", slog.Int("created", len(created)))
	return &SeedResult{Created: created}, nil
}

// Count reports how many topics exist; used by the seed status endpoint.
func (s *Service) Count(ctx context.Context) (int, error) {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(existing), nil
}

// DropAll drops the topics table entirely. The next collection-level
// request recreates it empty via the schema manager.
func (s *Service) DropAll(ctx context.Context) error {
	return s.schema.Drop(ctx)
}

// MigrateLegacy backfills multi-language fields on rows that predate the
// current schema, returning the number of rows touched.
func (s *Service) MigrateLegacy(ctx context.Context) (int, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return 0, err
	}
	return s.migrator.Run(ctx)
}
