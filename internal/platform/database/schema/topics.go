package schema

// TopicsTable represents the 'topics' table.
//
// The column set has two generations: the legacy single-language baseline
// (titulo, explicacion_*, librerias, ...) created by the versioned
// migration, and the current multi-language columns added at runtime by
// the schema manager.
type TopicsTable struct {
	Table string

	// Identity & timestamps
	ID        string
	CreatedAt string
	UpdatedAt string

	// Legacy baseline columns
	Titulo             string
	ExplicacionTecnica string
	ExplicacionEjemplo string
	ImageExplicacion   string
	Librerias          string
	TableElements      string
	CodeExemple        string
	Parent             string
	Childs             string

	// Current-generation columns
	Slug             string
	Frameworks       string
	DifficultyLevel  string
	EstimatedTime    string
	ParentID         string
	ChildTopics      string
	Translations     string
	FrameworkDetails string
}

// Topics is the schema definition for the topics table.
var Topics = TopicsTable{
	Table: "topics",

	ID:        "id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",

	Titulo:             "titulo",
	ExplicacionTecnica: "explicacion_tecnica",
	ExplicacionEjemplo: "explicacion_ejemplo",
	ImageExplicacion:   "image_explicacion",
	Librerias:          "librerias",
	TableElements:      "table_elements",
	CodeExemple:        "code_exemple",
	Parent:             "parent",
	Childs:             "childs",

	Slug:             "slug",
	Frameworks:       "frameworks",
	DifficultyLevel:  "difficulty_level",
	EstimatedTime:    "estimated_time",
	ParentID:         "parent_id",
	ChildTopics:      "child_topics",
	Translations:     "translations",
	FrameworkDetails: "framework_details",
}

// SlugIndex is the unique index enforcing slug uniqueness.
const SlugIndex = "topics_slug_idx"

// Columns returns the full current-generation column list in scan order.
func (t TopicsTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Frameworks, t.DifficultyLevel, t.EstimatedTime,
		t.ParentID, t.ChildTopics, t.Translations, t.FrameworkDetails,
		t.Titulo, t.ExplicacionTecnica, t.ExplicacionEjemplo, t.ImageExplicacion,
		t.Librerias, t.TableElements, t.CodeExemple, t.Parent, t.Childs,
		t.CreatedAt, t.UpdatedAt,
	}
}

// ColumnUpgrade is one additive schema evolution step: a column name to
// probe for in information_schema and the definition to add when absent.
type ColumnUpgrade struct {
	Name       string
	Definition string
}

// Upgrades returns the ordered additive migration list that brings a
// legacy-baseline table up to the current column set. The schema manager
// walks this on every collection-level entry point, so entries must stay
// idempotent and cheap to verify.
func (t TopicsTable) Upgrades() []ColumnUpgrade {
	return []ColumnUpgrade{
		{t.Slug, "slug VARCHAR(255)"},
		{t.Frameworks, "frameworks JSONB DEFAULT '[]'::jsonb"},
		{t.DifficultyLevel, "difficulty_level VARCHAR(50) DEFAULT 'intermediate'"},
		{t.EstimatedTime, "estimated_time VARCHAR(50) DEFAULT '20 min'"},
		{t.ParentID, "parent_id INTEGER"},
		{t.ChildTopics, "child_topics JSONB DEFAULT '[]'::jsonb"},
		{t.Translations, "translations JSONB DEFAULT '{}'::jsonb"},
		{t.FrameworkDetails, "framework_details JSONB DEFAULT '{}'::jsonb"},
	}
}

// LegacyTranslationColumns lists the optional per-language legacy columns
// (titulo_en, explicacion_tecnica_fr, ...) that some deployments carry.
// The data migration routine probes for them instead of assuming them.
func (t TopicsTable) LegacyTranslationColumns(lang string) []string {
	return []string{
		t.Titulo + "_" + lang,
		t.ExplicacionTecnica + "_" + lang,
		t.ExplicacionEjemplo + "_" + lang,
	}
}
