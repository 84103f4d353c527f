package topics

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # Fakes

type fakeRepository struct {
	topics map[int]*Topic
	nextID int

	createCalls      int
	byFrameworkCalls int
	deleteAllCalls   int

	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{topics: map[int]*Topic{}, nextID: 1}
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]Topic, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := make([]Topic, 0, len(f.topics))
	for _, topic := range f.topics {
		all = append(all, *topic)
	}
	return all, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int) (*Topic, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.topics[id], nil
}

func (f *fakeRepository) Create(ctx context.Context, input CreateInput) (*Topic, error) {
	f.createCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	input.Normalize()

	topic := &Topic{
		ID:              f.nextID,
		Slug:            input.Slug,
		Frameworks:      input.Frameworks,
		DifficultyLevel: input.DifficultyLevel,
		EstimatedTime:   input.EstimatedTime,
		ParentID:        input.ParentID,
		Translations:    input.Translations,
		Titulo:          input.Titulo,
	}
	f.topics[f.nextID] = topic
	f.nextID++
	return topic, nil
}

func (f *fakeRepository) Update(ctx context.Context, id int, patch UpdateInput) (*Topic, error) {
	// Mirrors the real repository: an empty patch is rejected before any
	// lookup happens.
	if isEmptyPatch(patch) {
		return nil, ErrNoFieldsToUpdate
	}

	topic, ok := f.topics[id]
	if !ok {
		return nil, nil
	}
	if patch.Titulo != nil {
		topic.Titulo = *patch.Titulo
	}
	if patch.DifficultyLevel != nil {
		topic.DifficultyLevel = *patch.DifficultyLevel
	}
	return topic, nil
}

func isEmptyPatch(patch UpdateInput) bool {
	return patch.Slug == nil && patch.Frameworks == nil &&
		patch.DifficultyLevel == nil && patch.EstimatedTime == nil &&
		patch.ParentID == nil && patch.ChildTopics == nil &&
		patch.Translations == nil && patch.FrameworkDetails == nil &&
		patch.Titulo == nil && patch.ExplicacionTecnica == nil &&
		patch.ExplicacionEjemplo == nil && patch.ImageExplicacion == nil &&
		patch.Librerias == nil && patch.TableElements == nil &&
		patch.CodeExemple == nil && patch.Parent == nil && patch.Childs == nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int) (*Topic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return nil, nil
	}
	delete(f.topics, id)
	return topic, nil
}

func (f *fakeRepository) GetByFramework(ctx context.Context, framework string) ([]Topic, error) {
	f.byFrameworkCalls++
	matched := make([]Topic, 0)
	for _, topic := range f.topics {
		for _, fw := range topic.Frameworks {
			if fw == framework {
				matched = append(matched, *topic)
				break
			}
		}
	}
	return matched, nil
}

func (f *fakeRepository) GetBySlug(ctx context.Context, slugValue string) (*Topic, error) {
	for _, topic := range f.topics {
		if topic.Slug == slugValue {
			return topic, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetByParentID(ctx context.Context, parentID int) ([]Topic, error) {
	matched := make([]Topic, 0)
	for _, topic := range f.topics {
		if topic.ParentID != nil && *topic.ParentID == parentID {
			matched = append(matched, *topic)
		}
	}
	return matched, nil
}

func (f *fakeRepository) GetByDifficulty(ctx context.Context, level string) ([]Topic, error) {
	matched := make([]Topic, 0)
	for _, topic := range f.topics {
		if topic.DifficultyLevel == level {
			matched = append(matched, *topic)
		}
	}
	return matched, nil
}

func (f *fakeRepository) DeleteAll(ctx context.Context) error {
	f.deleteAllCalls++
	f.topics = map[int]*Topic{}
	return nil
}

type fakeSchema struct {
	ensureCalls int
	dropCalls   int
}

func (f *fakeSchema) Ensure(ctx context.Context) error { f.ensureCalls++; return nil }
func (f *fakeSchema) Drop(ctx context.Context) error   { f.dropCalls++; return nil }

type fakeMigrator struct {
	runCalls int
	migrated int
}

func (f *fakeMigrator) Run(ctx context.Context) (int, error) { f.runCalls++; return f.migrated, nil }

func newTestService(repo *fakeRepository, schema *fakeSchema, migrator *fakeMigrator) *Service {
	return NewService(repo, schema, migrator, slog.Default())
}

// # Tests

/*
TestService_List_EnsuresSchema verifies that listing runs the schema manager
first, so a dropped table comes back before the query.
*/
func TestService_List_EnsuresSchema(t *testing.T) {
	repo := newFakeRepository()
	schema := &fakeSchema{}
	service := newTestService(repo, schema, &fakeMigrator{})

	items, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, schema.ensureCalls)
}

/*
TestService_Seed_Fresh seeds an empty table with the full sample catalogue.
*/
func TestService_Seed_Fresh(t *testing.T) {
	repo := newFakeRepository()
	schema := &fakeSchema{}
	service := newTestService(repo, schema, &fakeMigrator{})

	result, err := service.Seed(context.Background(), false)

	require.NoError(t, err)
	assert.False(t, result.AlreadySeeded)
	assert.Len(t, result.Created, len(sampleTopics()))
	assert.Equal(t, 1, schema.ensureCalls)
	assert.Equal(t, 0, repo.deleteAllCalls)
}

/*
TestService_Seed_RefusesNonEmpty verifies the guard against accidental
reseeding.
*/
func TestService_Seed_RefusesNonEmpty(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Existente"})
	require.NoError(t, err)
	createCallsBefore := repo.createCalls

	service := newTestService(repo, &fakeSchema{}, &fakeMigrator{})
	result, err := service.Seed(context.Background(), false)

	require.NoError(t, err)
	assert.True(t, result.AlreadySeeded)
	assert.Equal(t, 1, result.ExistingCount)
	assert.Empty(t, result.Created)
	assert.Equal(t, createCallsBefore, repo.createCalls)
}

/*
TestService_Seed_ForceResets verifies that force clears the table first.
*/
func TestService_Seed_ForceResets(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{Titulo: "Existente"})
	require.NoError(t, err)

	service := newTestService(repo, &fakeSchema{}, &fakeMigrator{})
	result, err := service.Seed(context.Background(), true)

	require.NoError(t, err)
	assert.False(t, result.AlreadySeeded)
	assert.Equal(t, 1, repo.deleteAllCalls)
	assert.Len(t, result.Created, len(sampleTopics()))
	assert.Len(t, repo.topics, len(sampleTopics()))
}

/*
TestService_MigrateLegacy verifies schema readiness before the backfill.
*/
func TestService_MigrateLegacy(t *testing.T) {
	schema := &fakeSchema{}
	migrator := &fakeMigrator{migrated: 7}
	service := newTestService(newFakeRepository(), schema, migrator)

	migrated, err := service.MigrateLegacy(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, migrated)
	assert.Equal(t, 1, schema.ensureCalls)
	assert.Equal(t, 1, migrator.runCalls)
}

/*
TestService_ByFramework_Lowercases verifies case-insensitive framework lookup.
*/
func TestService_ByFramework_Lowercases(t *testing.T) {
	repo := newFakeRepository()
	_, err := repo.Create(context.Background(), CreateInput{
		Titulo:     "Hooks",
		Frameworks: []string{"react"},
	})
	require.NoError(t, err)

	service := newTestService(repo, &fakeSchema{}, &fakeMigrator{})
	items, err := service.ByFramework(context.Background(), "React")

	require.NoError(t, err)
	assert.Len(t, items, 1)
}
