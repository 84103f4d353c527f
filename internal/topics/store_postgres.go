package topics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anavarrete/frameteca/internal/platform/database/schema"
	"github.com/anavarrete/frameteca/internal/platform/dberr"
)

// topicColumns is the SELECT/RETURNING list in scan order.
var topicColumns = strings.Join(schema.Topics.Columns(), ", ")

// PostgresRepository implements [Repository] against the topics table.
//
// JSON-typed columns are stored as JSONB and always round-tripped through
// explicit (un)marshalling: malformed stored JSON is a data-integrity error
// surfaced to the caller, never silently tolerated.
type PostgresRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

func (repository *PostgresRepository) GetAll(ctx context.Context) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		topicColumns, schema.Topics.Table, schema.Topics.CreatedAt)

	return repository.queryTopics(ctx, query)
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int) (*Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		topicColumns, schema.Topics.Table, schema.Topics.ID)

	return repository.queryTopic(ctx, "get_topic_by_id", query, id)
}

func (repository *PostgresRepository) GetBySlug(ctx context.Context, slugValue string) (*Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 LIMIT 1`,
		topicColumns, schema.Topics.Table, schema.Topics.Slug)

	return repository.queryTopic(ctx, "get_topic_by_slug", query, slugValue)
}

// GetByFramework matches against both the current frameworks column and the
// legacy librerias column: during the transition period some rows only ever
// populated the legacy field.
func (repository *PostgresRepository) GetByFramework(ctx context.Context, framework string) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ? $1 OR %s ? $1 ORDER BY %s DESC`,
		topicColumns, schema.Topics.Table,
		schema.Topics.Frameworks, schema.Topics.Librerias, schema.Topics.CreatedAt)

	return repository.queryTopics(ctx, query, framework)
}

// GetByParentID lists child topics oldest-first: hierarchical listings read
// in authoring order, unlike the newest-first main listing.
func (repository *PostgresRepository) GetByParentID(ctx context.Context, parentID int) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		topicColumns, schema.Topics.Table, schema.Topics.ParentID, schema.Topics.CreatedAt)

	return repository.queryTopics(ctx, query, parentID)
}

func (repository *PostgresRepository) GetByDifficulty(ctx context.Context, level string) ([]Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		topicColumns, schema.Topics.Table, schema.Topics.DifficultyLevel, schema.Topics.CreatedAt)

	return repository.queryTopics(ctx, query, level)
}

func (repository *PostgresRepository) Create(ctx context.Context, input CreateInput) (*Topic, error) {
	input.Normalize()

	jsonValues, err := marshalJSONFields(map[string]any{
		schema.Topics.Frameworks:       input.Frameworks,
		schema.Topics.ChildTopics:      input.ChildTopics,
		schema.Topics.Translations:     input.Translations,
		schema.Topics.FrameworkDetails: input.FrameworkDetails,
		schema.Topics.Librerias:        input.Librerias,
		schema.Topics.TableElements:    input.TableElements,
		schema.Topics.CodeExemple:      input.CodeExemple,
		schema.Topics.Childs:           input.Childs,
	})
	if err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s`,
		schema.Topics.Table,
		schema.Topics.Slug, schema.Topics.Frameworks, schema.Topics.DifficultyLevel,
		schema.Topics.EstimatedTime, schema.Topics.ParentID, schema.Topics.ChildTopics,
		schema.Topics.Translations, schema.Topics.FrameworkDetails,
		schema.Topics.Titulo, schema.Topics.ExplicacionTecnica, schema.Topics.ExplicacionEjemplo,
		schema.Topics.ImageExplicacion, schema.Topics.Librerias, schema.Topics.TableElements,
		schema.Topics.CodeExemple, schema.Topics.Parent, schema.Topics.Childs,
		topicColumns,
	)

	row := repository.db.QueryRow(ctx, query,
		nullableString(input.Slug),
		jsonValues[schema.Topics.Frameworks],
		input.DifficultyLevel,
		input.EstimatedTime,
		input.ParentID,
		jsonValues[schema.Topics.ChildTopics],
		jsonValues[schema.Topics.Translations],
		jsonValues[schema.Topics.FrameworkDetails],
		input.Titulo,
		input.ExplicacionTecnica,
		input.ExplicacionEjemplo,
		input.ImageExplicacion,
		jsonValues[schema.Topics.Librerias],
		jsonValues[schema.Topics.TableElements],
		jsonValues[schema.Topics.CodeExemple],
		input.Parent,
		jsonValues[schema.Topics.Childs],
	)

	topic, err := scanTopic(row)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			// Duplicate slug. Not remapped to 409 — the caller sees the
			// driver message in the 500 envelope, but it is worth a log line.
			repository.logger.Warn("topic_slug_conflict", slog.String("slug", input.Slug))
		}
		return nil, dberr.Wrap(err, "create_topic")
	}
	return topic, nil
}

// Update applies a partial patch. Supplied JSON-typed fields replace the
// stored value whole — translations are not deep-merged per language.
// Returns (nil, nil) when id does not exist.
func (repository *PostgresRepository) Update(ctx context.Context, id int, patch UpdateInput) (*Topic, error) {
	builder := updateBuilder{}

	builder.set(schema.Topics.Slug, patch.Slug)
	builder.set(schema.Topics.DifficultyLevel, patch.DifficultyLevel)
	builder.set(schema.Topics.EstimatedTime, patch.EstimatedTime)
	builder.set(schema.Topics.Titulo, patch.Titulo)
	builder.set(schema.Topics.ExplicacionTecnica, patch.ExplicacionTecnica)
	builder.set(schema.Topics.ExplicacionEjemplo, patch.ExplicacionEjemplo)
	builder.set(schema.Topics.ImageExplicacion, patch.ImageExplicacion)
	builder.set(schema.Topics.Parent, patch.Parent)

	if patch.ParentID != nil {
		builder.setValue(schema.Topics.ParentID, *patch.ParentID)
	}

	if err := builder.setJSON(schema.Topics.Frameworks, patch.Frameworks, patch.Frameworks != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.ChildTopics, patch.ChildTopics, patch.ChildTopics != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.Translations, patch.Translations, patch.Translations != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.FrameworkDetails, patch.FrameworkDetails, patch.FrameworkDetails != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.Librerias, patch.Librerias, patch.Librerias != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.TableElements, patch.TableElements, patch.TableElements != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.CodeExemple, patch.CodeExemple, patch.CodeExemple != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}
	if err := builder.setJSON(schema.Topics.Childs, patch.Childs, patch.Childs != nil); err != nil {
		return nil, dberr.Wrap(err, "marshal_topic_fields")
	}

	if builder.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	// updated_at is bumped on every mutation, whatever the patch contains.
	builder.setRaw(schema.Topics.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d RETURNING %s`,
		schema.Topics.Table, builder.clause(), schema.Topics.ID, builder.next(), topicColumns)

	args := append(builder.args, id)
	topic, err := scanTopic(repository.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "update_topic")
	}
	return topic, nil
}

// Delete removes a topic and returns the deleted row, or (nil, nil) if the
// id does not exist.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) (*Topic, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.Topics.Table, schema.Topics.ID, topicColumns)

	topic, err := scanTopic(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "delete_topic")
	}
	return topic, nil
}

func (repository *PostgresRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, schema.Topics.Table)
	if _, err := repository.db.Exec(ctx, query); err != nil {
		return dberr.Wrap(err, "delete_all_topics")
	}
	return nil
}

// # Query plumbing

func (repository *PostgresRepository) queryTopic(ctx context.Context, action, query string, args ...any) (*Topic, error) {
	topic, err := scanTopic(repository.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, action)
	}
	return topic, nil
}

func (repository *PostgresRepository) queryTopics(ctx context.Context, query string, args ...any) ([]Topic, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	results := make([]Topic, 0)
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		results = append(results, *topic)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	return results, nil
}

// scanTopic reads one row in [schema.TopicsTable.Columns] order, decoding
// every JSONB column back into its structured form.
func scanTopic(row pgx.Row) (*Topic, error) {
	var (
		topic Topic

		slugValue          *string
		difficulty         *string
		estimatedTime      *string
		titulo             *string
		explicacionTecnica *string
		explicacionEjemplo *string
		imageExplicacion   *string
		parent             *string

		frameworksRaw       []byte
		childTopicsRaw      []byte
		translationsRaw     []byte
		frameworkDetailsRaw []byte
		libreriasRaw        []byte
		tableElementsRaw    []byte
		codeExempleRaw      []byte
		childsRaw           []byte
	)

	err := row.Scan(
		&topic.ID, &slugValue, &frameworksRaw, &difficulty, &estimatedTime,
		&topic.ParentID, &childTopicsRaw, &translationsRaw, &frameworkDetailsRaw,
		&titulo, &explicacionTecnica, &explicacionEjemplo, &imageExplicacion,
		&libreriasRaw, &tableElementsRaw, &codeExempleRaw, &parent, &childsRaw,
		&topic.CreatedAt, &topic.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	topic.Slug = deref(slugValue)
	topic.DifficultyLevel = deref(difficulty)
	topic.EstimatedTime = deref(estimatedTime)
	topic.Titulo = deref(titulo)
	topic.ExplicacionTecnica = deref(explicacionTecnica)
	topic.ExplicacionEjemplo = deref(explicacionEjemplo)
	topic.ImageExplicacion = deref(imageExplicacion)
	topic.Parent = deref(parent)

	topic.Frameworks = []string{}
	topic.ChildTopics = []string{}
	topic.Translations = map[string]Translation{}
	topic.FrameworkDetails = map[string]FrameworkDetail{}
	topic.Librerias = []string{}
	topic.TableElements = map[string]TableElement{}
	topic.CodeExemple = map[string]string{}
	topic.Childs = []string{}

	decodeSteps := []struct {
		column string
		raw    []byte
		target any
	}{
		{schema.Topics.Frameworks, frameworksRaw, &topic.Frameworks},
		{schema.Topics.ChildTopics, childTopicsRaw, &topic.ChildTopics},
		{schema.Topics.Translations, translationsRaw, &topic.Translations},
		{schema.Topics.FrameworkDetails, frameworkDetailsRaw, &topic.FrameworkDetails},
		{schema.Topics.Librerias, libreriasRaw, &topic.Librerias},
		{schema.Topics.TableElements, tableElementsRaw, &topic.TableElements},
		{schema.Topics.CodeExemple, codeExempleRaw, &topic.CodeExemple},
		{schema.Topics.Childs, childsRaw, &topic.Childs},
	}
	for _, step := range decodeSteps {
		if err := decodeJSONColumn(step.raw, step.column, step.target); err != nil {
			return nil, err
		}
	}

	return &topic, nil
}

// decodeJSONColumn unmarshals a stored JSONB value. Malformed content is a
// data-integrity error, reported with the offending column name.
func decodeJSONColumn(raw []byte, column string, target any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("corrupt stored JSON in column %s: %w", column, err)
	}
	return nil
}

// marshalJSONFields serializes every JSON-typed input field up front so a
// marshalling failure aborts before any SQL is issued.
func marshalJSONFields(fields map[string]any) (map[string][]byte, error) {
	encoded := make(map[string][]byte, len(fields))
	for column, value := range fields {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal column %s: %w", column, err)
		}
		encoded[column] = raw
	}
	return encoded, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// updateBuilder accumulates SET clauses and their positional arguments.
type updateBuilder struct {
	clauses []string
	args    []any
}

// set adds a clause for an optional scalar field; nil means "not supplied".
func (b *updateBuilder) set(column string, value *string) {
	if value == nil {
		return
	}
	b.setValue(column, *value)
}

func (b *updateBuilder) setValue(column string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setJSON adds a clause for a JSON-typed field when supplied. The value is
// re-serialized whole: partial updates replace the entire stored document.
func (b *updateBuilder) setJSON(column string, value any, supplied bool) error {
	if !supplied {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal column %s: %w", column, err)
	}
	b.setValue(column, raw)
	return nil
}

// setRaw adds a clause with no argument (e.g. "updated_at = NOW()").
func (b *updateBuilder) setRaw(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *updateBuilder) empty() bool { return len(b.clauses) == 0 }

func (b *updateBuilder) clause() string { return strings.Join(b.clauses, ", ") }

// next returns the positional index for the next argument to be appended.
func (b *updateBuilder) next() int { return len(b.args) + 1 }
