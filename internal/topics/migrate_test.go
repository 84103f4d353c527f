package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestInferFrameworks verifies keyword-based framework detection on legacy prose.
*/
func TestInferFrameworks(t *testing.T) {
	tests := []struct {
		name     string
		texts    []string
		expected []string
	}{
		{
			name:     "react_via_hooks",
			texts:    []string{"React Hooks Avanzados", "useEffect y useMemo"},
			expected: []string{"react"},
		},
		{
			name:     "vue_via_composition_api",
			texts:    []string{"Interfaces dinámicas", "La Composition API cambia el modelo"},
			expected: []string{"vue"},
		},
		{
			name:     "angular_via_rxjs",
			texts:    []string{"Observables", "RxJS maneja flujos asíncronos"},
			expected: []string{"angular"},
		},
		{
			name:     "multiple_matches",
			texts:    []string{"React vs Svelte", "comparación de JSX y SvelteKit"},
			expected: []string{"react", "svelte"},
		},
		{
			name:     "no_match_means_all",
			texts:    []string{"Componentes", "Una pieza de interfaz independiente"},
			expected: []string{"react", "vue", "angular", "svelte"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, inferFrameworks(tc.texts...))
		})
	}
}

/*
TestInferDifficulty verifies the keyword tiers, advanced winning over
intermediate.
*/
func TestInferDifficulty(t *testing.T) {
	// 1. Advanced keywords
	assert.Equal(t, DifficultyAdvanced, inferDifficulty("React Hooks Avanzados", "optimización con memoization"))
	assert.Equal(t, DifficultyAdvanced, inferDifficulty("SSR en frameworks modernos", ""))

	// 2. Intermediate keywords
	assert.Equal(t, DifficultyIntermediate, inferDifficulty("Routing y Navegación", "mapea URLs a vistas"))
	assert.Equal(t, DifficultyIntermediate, inferDifficulty("Manejo de Estados", "el estado del componente"))

	// 3. Advanced beats intermediate when both appear
	assert.Equal(t, DifficultyAdvanced, inferDifficulty("Routing", "lazy loading de rutas"))

	// 4. Nothing matches: beginner
	assert.Equal(t, DifficultyBeginner, inferDifficulty("Componentes", "piezas de interfaz"))
}

/*
TestEstimateReadingTime verifies the 200 wpm estimate and the 5-minute
bucketing with its 25-minute cap.
*/
func TestEstimateReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("palabra ", n))
	}

	// 1. Short texts land in the smallest bucket
	assert.Equal(t, "5 min", estimateReadingTime("hola"))
	assert.Equal(t, "5 min", estimateReadingTime(words(1000)))

	// 2. Bucket boundaries round up
	assert.Equal(t, "10 min", estimateReadingTime(words(1001)))
	assert.Equal(t, "15 min", estimateReadingTime(words(2500)))

	// 3. Capped at 25 minutes
	assert.Equal(t, "25 min", estimateReadingTime(words(20000)))
}

/*
TestBuildTranslations verifies the translations document assembly.
*/
func TestBuildTranslations(t *testing.T) {
	row := legacyRow{
		titulo:             "Manejo de Estados",
		explicacionTecnica: "El estado representa los datos",
		explicacionEjemplo: "Como una pizarra",
		extra: map[string]Translation{
			"en": {Title: "State Management", Description: "State is data", Analogy: "Like a whiteboard"},
			"fr": {}, // legacy columns exist but are empty
		},
	}

	translations := buildTranslations(row)

	// 1. Spanish always comes from the baseline columns
	assert.Equal(t, "Manejo de Estados", translations["es"].Title)
	assert.Equal(t, "Como una pizarra", translations["es"].Analogy)

	// 2. English carried over because its title is non-empty
	assert.Equal(t, "State Management", translations["en"].Title)

	// 3. French skipped: no title in the legacy columns
	_, hasFrench := translations["fr"]
	assert.False(t, hasFrench)
}
