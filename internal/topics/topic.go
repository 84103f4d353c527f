package topics

import (
	"sort"
	"strings"
	"time"

	"github.com/anavarrete/frameteca/pkg/slug"
)

// Supported framework identifiers, lowercase. The set is open at the storage
// layer but the query surface validates against exactly these.
var ValidFrameworks = []string{"react", "vue", "angular", "svelte"}

// Difficulty levels, from easiest to hardest.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ValidDifficulties enumerates the accepted difficulty_level values.
var ValidDifficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Defaults applied on create when the caller omits a field.
const (
	defaultDifficulty    = DifficultyIntermediate
	defaultEstimatedTime = "20 min"
)

// Translation is the language-keyed display bundle of a topic.
type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Analogy     string `json:"analogy"`
}

// FrameworkTranslation holds the localized comparison text for one framework.
type FrameworkTranslation struct {
	Similarities string `json:"similarities"`
	Differences  string `json:"differences"`
}

// FrameworkDetail carries the per-framework comparison content of a topic.
type FrameworkDetail struct {
	CodeExample  string                          `json:"code_example"`
	Translations map[string]FrameworkTranslation `json:"translations"`
}

// TableElement is the legacy single-language comparison cell
// (kept for consumers of the old API shape).
type TableElement struct {
	Similitudes string `json:"similitudes"`
	Diferencias string `json:"diferencias"`
}

// Topic is the core content entity: a framework-comparison article with
// multi-language text and per-framework code/commentary.
//
// The Spanish-named fields are the legacy single-language columns. They are
// kept in sync on write so consumers of the old API shape keep working.
type Topic struct {
	ID int `json:"id"`

	Slug             string                     `json:"slug"`
	Frameworks       []string                   `json:"frameworks"`
	DifficultyLevel  string                     `json:"difficulty_level"`
	EstimatedTime    string                     `json:"estimated_time"`
	ParentID         *int                       `json:"parent_id"`
	ChildTopics      []string                   `json:"child_topics"`
	Translations     map[string]Translation     `json:"translations"`
	FrameworkDetails map[string]FrameworkDetail `json:"framework_details"`

	// Legacy fields
	Titulo             string                  `json:"titulo"`
	ExplicacionTecnica string                  `json:"explicacion_tecnica"`
	ExplicacionEjemplo string                  `json:"explicacion_ejemplo"`
	ImageExplicacion   string                  `json:"image_explicacion"`
	Librerias          []string                `json:"librerias"`
	TableElements      map[string]TableElement `json:"table_elements"`
	CodeExemple        map[string]string       `json:"code_exemple"`
	Parent             string                  `json:"parent"`
	Childs             []string                `json:"childs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTranslations reports whether the topic carries at least one language
// bundle. Topics without one are tolerated at storage but rendered by
// consumers as "no description available".
func (t *Topic) HasTranslations() bool {
	return len(t.Translations) > 0
}

// CreateInput is the payload for creating a topic. Omitted JSON-typed fields
// default to empty collections; omitted scalars get the documented defaults.
type CreateInput struct {
	Slug             string                     `json:"slug"`
	Frameworks       []string                   `json:"frameworks"`
	DifficultyLevel  string                     `json:"difficulty_level"`
	EstimatedTime    string                     `json:"estimated_time"`
	ParentID         *int                       `json:"parent_id"`
	ChildTopics      []string                   `json:"child_topics"`
	Translations     map[string]Translation     `json:"translations"`
	FrameworkDetails map[string]FrameworkDetail `json:"framework_details"`

	// Legacy fields (optional)
	Titulo             string                  `json:"titulo"`
	ExplicacionTecnica string                  `json:"explicacion_tecnica"`
	ExplicacionEjemplo string                  `json:"explicacion_ejemplo"`
	ImageExplicacion   string                  `json:"image_explicacion"`
	Librerias          []string                `json:"librerias"`
	TableElements      map[string]TableElement `json:"table_elements"`
	CodeExemple        map[string]string       `json:"code_exemple"`
	Parent             string                  `json:"parent"`
	Childs             []string                `json:"childs"`
}

// Normalize fills defaults and synchronizes the legacy columns from the
// new-shape fields. It is the compatibility adapter between the
// multi-language input shape and the single-language legacy columns, kept
// as a pure function so it can be deleted wholesale once legacy consumers
// are retired.
func (input *CreateInput) Normalize() {
	// Scalar defaults
	if input.DifficultyLevel == "" {
		input.DifficultyLevel = defaultDifficulty
	}
	if input.EstimatedTime == "" {
		input.EstimatedTime = defaultEstimatedTime
	}

	// JSON-typed fields default to empty collections
	if input.Frameworks == nil {
		input.Frameworks = []string{}
	}
	if input.ChildTopics == nil {
		input.ChildTopics = []string{}
	}
	if input.Translations == nil {
		input.Translations = map[string]Translation{}
	}
	if input.FrameworkDetails == nil {
		input.FrameworkDetails = map[string]FrameworkDetail{}
	}
	if input.Librerias == nil {
		input.Librerias = []string{}
	}
	if input.TableElements == nil {
		input.TableElements = map[string]TableElement{}
	}
	if input.CodeExemple == nil {
		input.CodeExemple = map[string]string{}
	}
	if input.Childs == nil {
		input.Childs = []string{}
	}

	// Framework identifiers are stored lowercase
	for i, fw := range input.Frameworks {
		input.Frameworks[i] = strings.ToLower(fw)
	}

	// Legacy text columns derive from the first available translation so
	// that new-shape-only writers keep legacy consumers functional.
	if input.Titulo == "" {
		if tr, ok := firstTranslation(input.Translations); ok {
			input.Titulo = tr.Title
			if input.ExplicacionTecnica == "" {
				input.ExplicacionTecnica = tr.Description
			}
			if input.ExplicacionEjemplo == "" {
				input.ExplicacionEjemplo = tr.Analogy
			}
		}
	}

	// Redundant legacy collections
	if len(input.Librerias) == 0 && len(input.Frameworks) > 0 {
		input.Librerias = append([]string{}, input.Frameworks...)
	}
	if len(input.CodeExemple) == 0 {
		for fw, detail := range input.FrameworkDetails {
			if detail.CodeExample != "" {
				input.CodeExemple[fw] = detail.CodeExample
			}
		}
	}

	// A storable slug can be derived from whatever title we ended up with.
	if input.Slug == "" {
		input.Slug = slug.From(input.Titulo)
	}
}

// firstTranslation picks the preferred language bundle: Spanish first (the
// authoring language), then English, then whatever sorts first.
func firstTranslation(translations map[string]Translation) (Translation, bool) {
	if tr, ok := translations["es"]; ok {
		return tr, true
	}
	if tr, ok := translations["en"]; ok {
		return tr, true
	}

	codes := make([]string, 0, len(translations))
	for code := range translations {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return Translation{}, false
	}
	sort.Strings(codes)
	return translations[codes[0]], true
}

// UpdateInput is a partial patch: nil fields are left untouched, supplied
// JSON-typed fields replace the stored value whole (no deep-merge).
type UpdateInput struct {
	Slug             *string                    `json:"slug"`
	Frameworks       []string                   `json:"frameworks"`
	DifficultyLevel  *string                    `json:"difficulty_level"`
	EstimatedTime    *string                    `json:"estimated_time"`
	ParentID         *int                       `json:"parent_id"`
	ChildTopics      []string                   `json:"child_topics"`
	Translations     map[string]Translation     `json:"translations"`
	FrameworkDetails map[string]FrameworkDetail `json:"framework_details"`

	Titulo             *string                 `json:"titulo"`
	ExplicacionTecnica *string                 `json:"explicacion_tecnica"`
	ExplicacionEjemplo *string                 `json:"explicacion_ejemplo"`
	ImageExplicacion   *string                 `json:"image_explicacion"`
	Librerias          []string                `json:"librerias"`
	TableElements      map[string]TableElement `json:"table_elements"`
	CodeExemple        map[string]string       `json:"code_exemple"`
	Parent             *string                 `json:"parent"`
	Childs             []string                `json:"childs"`
}

// IsFrameworkValid reports whether fw (already lowercased) belongs to the
// validated query set.
func IsFrameworkValid(fw string) bool {
	for _, valid := range ValidFrameworks {
		if fw == valid {
			return true
		}
	}
	return false
}

// IsDifficultyValid reports whether level is a known difficulty tier.
func IsDifficultyValid(level string) bool {
	for _, valid := range ValidDifficulties {
		if level == valid {
			return true
		}
	}
	return false
}
