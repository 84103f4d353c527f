package topics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anavarrete/frameteca/internal/platform/database/schema"
	"github.com/anavarrete/frameteca/internal/platform/dberr"
	"github.com/anavarrete/frameteca/pkg/slug"
)

// frameworkKeywords maps each framework to the lowercase markers that tie
// legacy Spanish prose to it. A topic mentioning none of them is assumed
// to compare all frameworks.
var frameworkKeywords = map[string][]string{
	"react":   {"react", "jsx", "hook"},
	"vue":     {"vue", "composition api", "vuex"},
	"angular": {"angular", "typescript", "rxjs"},
	"svelte":  {"svelte", "sveltekit"},
}

var advancedKeywords = []string{
	"optimización", "performance", "ssr", "lazy loading", "memoization", "virtualization",
}

var intermediateKeywords = []string{
	"routing", "estado", "state", "api", "hooks", "lifecycle",
}

// readingTimeBuckets are the allowed estimated_time values, in minutes.
var readingTimeBuckets = []int{5, 10, 15, 20, 25}

const wordsPerMinute = 200

// PostgresMigrator upgrades legacy single-language rows in place: it infers
// frameworks, difficulty and reading time from the Spanish prose, builds the
// translations document from whatever legacy per-language columns exist,
// and assigns a slug.
type PostgresMigrator struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresMigrator(db *pgxpool.Pool, logger *slog.Logger) *PostgresMigrator {
	return &PostgresMigrator{db: db, logger: logger}
}

// legacyRow is one unmigrated row plus its optional per-language texts.
type legacyRow struct {
	id                 int
	titulo             string
	explicacionTecnica string
	explicacionEjemplo string

	// keyed by language code; only languages whose legacy columns exist
	extra map[string]Translation
}

// Run backfills every row that has no slug or an empty frameworks list.
// Each row is updated independently; a failure aborts the run and reports
// how many rows were completed before it.
func (m *PostgresMigrator) Run(ctx context.Context) (int, error) {
	availableLangs, err := m.probeLegacyLanguages(ctx)
	if err != nil {
		return 0, err
	}

	rows, err := m.selectUnmigrated(ctx, availableLangs)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		m.logger.Info("legacy_migration_noop")
		return 0, nil
	}

	migrated := 0
	for _, row := range rows {
		if err := m.migrateRow(ctx, row); err != nil {
			return migrated, err
		}
		migrated++
	}

	m.logger.Info("legacy_migration_completed",
		slog.Int("migrated", migrated),
		slog.Any("languages", availableLangs))
	return migrated, nil
}

// probeLegacyLanguages reports which optional per-language column sets
// (titulo_en, titulo_fr, ...) this deployment carries.
func (m *PostgresMigrator) probeLegacyLanguages(ctx context.Context) ([]string, error) {
	available := make([]string, 0, 2)
	for _, lang := range []string{"en", "fr"} {
		exists, err := m.columnExists(ctx, schema.Topics.Titulo+"_"+lang)
		if err != nil {
			return nil, dberr.Wrap(err, "probe_legacy_columns")
		}
		if exists {
			available = append(available, lang)
		}
	}
	return available, nil
}

func (m *PostgresMigrator) columnExists(ctx context.Context, column string) (bool, error) {
	var count int
	err := m.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = $1 AND column_name = $2`,
		schema.Topics.Table, column,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *PostgresMigrator) selectUnmigrated(ctx context.Context, langs []string) ([]legacyRow, error) {
	columns := []string{
		schema.Topics.ID,
		coalesced(schema.Topics.Titulo),
		coalesced(schema.Topics.ExplicacionTecnica),
		coalesced(schema.Topics.ExplicacionEjemplo),
	}
	for _, lang := range langs {
		for _, column := range schema.Topics.LegacyTranslationColumns(lang) {
			columns = append(columns, coalesced(column))
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL OR %s = '[]'::jsonb ORDER BY %s ASC`,
		strings.Join(columns, ", "), schema.Topics.Table,
		schema.Topics.Slug, schema.Topics.Frameworks, schema.Topics.ID)

	pgRows, err := m.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "select_unmigrated_topics")
	}
	defer pgRows.Close()

	results := make([]legacyRow, 0)
	for pgRows.Next() {
		row := legacyRow{extra: map[string]Translation{}}

		dests := []any{&row.id, &row.titulo, &row.explicacionTecnica, &row.explicacionEjemplo}
		langTexts := make([]Translation, len(langs))
		for i := range langs {
			dests = append(dests, &langTexts[i].Title, &langTexts[i].Description, &langTexts[i].Analogy)
		}

		if err := pgRows.Scan(dests...); err != nil {
			return nil, dberr.Wrap(err, "scan_unmigrated_topic")
		}
		for i, lang := range langs {
			row.extra[lang] = langTexts[i]
		}
		results = append(results, row)
	}
	if err := pgRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "select_unmigrated_topics")
	}
	return results, nil
}

func (m *PostgresMigrator) migrateRow(ctx context.Context, row legacyRow) error {
	frameworks := inferFrameworks(row.titulo, row.explicacionTecnica, row.explicacionEjemplo)
	difficulty := inferDifficulty(row.titulo, row.explicacionTecnica)
	readingTime := estimateReadingTime(row.titulo, row.explicacionTecnica, row.explicacionEjemplo)
	translations := buildTranslations(row)
	slugValue := slug.From(row.titulo)

	frameworksJSON, err := json.Marshal(frameworks)
	if err != nil {
		return dberr.Wrap(err, "marshal_topic_fields")
	}
	translationsJSON, err := json.Marshal(translations)
	if err != nil {
		return dberr.Wrap(err, "marshal_topic_fields")
	}

	// framework_details is reset rather than inferred: there is no legacy
	// source to derive per-framework comparison text from.
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = '{}'::jsonb,
			%s = NOW()
		WHERE %s = $6`,
		schema.Topics.Table,
		schema.Topics.Slug, schema.Topics.Frameworks, schema.Topics.DifficultyLevel,
		schema.Topics.EstimatedTime, schema.Topics.Translations, schema.Topics.FrameworkDetails,
		schema.Topics.UpdatedAt, schema.Topics.ID,
	)

	_, err = m.db.Exec(ctx, query,
		nullableString(slugValue), frameworksJSON, difficulty, readingTime, translationsJSON, row.id)
	if err != nil {
		return dberr.Wrap(err, "migrate_topic_row")
	}

	m.logger.Debug("legacy_row_migrated",
		slog.Int("id", row.id),
		slog.String("slug", slugValue),
		slog.Any("frameworks", frameworks),
		slog.String("difficulty", difficulty))
	return nil
}

func coalesced(column string) string {
	return fmt.Sprintf("COALESCE(%s, '')", column)
}

// inferFrameworks scans the legacy prose for framework markers. A topic
// that names no framework is treated as a general comparison of all of
// them.
func inferFrameworks(texts ...string) []string {
	haystack := strings.ToLower(strings.Join(texts, " "))

	matched := make([]string, 0, len(ValidFrameworks))
	for _, fw := range ValidFrameworks {
		for _, keyword := range frameworkKeywords[fw] {
			if strings.Contains(haystack, keyword) {
				matched = append(matched, fw)
				break
			}
		}
	}
	if len(matched) == 0 {
		return append([]string{}, ValidFrameworks...)
	}
	return matched
}

// inferDifficulty classifies by keyword tier. Only the title and the
// technical explanation count: the analogy text is deliberately simple
// prose and would skew everything toward beginner vocabulary.
func inferDifficulty(title, technical string) string {
	haystack := strings.ToLower(title + " " + technical)

	for _, keyword := range advancedKeywords {
		if strings.Contains(haystack, keyword) {
			return DifficultyAdvanced
		}
	}
	for _, keyword := range intermediateKeywords {
		if strings.Contains(haystack, keyword) {
			return DifficultyIntermediate
		}
	}
	return DifficultyBeginner
}

// estimateReadingTime counts words across all texts at 200 words per
// minute and rounds up to the nearest 5-minute bucket, capped at 25.
func estimateReadingTime(texts ...string) string {
	words := 0
	for _, text := range texts {
		words += len(strings.Fields(text))
	}

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	for _, bucket := range readingTimeBuckets {
		if minutes <= bucket {
			return fmt.Sprintf("%d min", bucket)
		}
	}
	return fmt.Sprintf("%d min", readingTimeBuckets[len(readingTimeBuckets)-1])
}

// buildTranslations assembles the translations document: Spanish always,
// from the baseline columns; other languages only when their legacy
// columns exist and carry a title.
func buildTranslations(row legacyRow) map[string]Translation {
	translations := map[string]Translation{
		"es": {
			Title:       row.titulo,
			Description: row.explicacionTecnica,
			Analogy:     row.explicacionEjemplo,
		},
	}
	for lang, tr := range row.extra {
		if tr.Title != "" {
			translations[lang] = tr
		}
	}
	return translations
}
