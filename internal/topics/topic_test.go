package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestCreateInput_Normalize_Defaults verifies defaults on an almost-empty payload.
*/
func TestCreateInput_Normalize_Defaults(t *testing.T) {
	input := CreateInput{Titulo: "Test"}
	input.Normalize()

	// 1. Scalar defaults
	assert.Equal(t, "intermediate", input.DifficultyLevel)
	assert.Equal(t, "20 min", input.EstimatedTime)

	// 2. Collections default to empty, never nil
	assert.NotNil(t, input.Frameworks)
	assert.NotNil(t, input.Translations)
	assert.NotNil(t, input.FrameworkDetails)
	assert.NotNil(t, input.Librerias)
	assert.NotNil(t, input.CodeExemple)

	// 3. The slug derives from the title
	assert.Equal(t, "test", input.Slug)
}

/*
TestCreateInput_Normalize_LegacySync verifies that legacy columns are derived
from the multi-language shape.
*/
func TestCreateInput_Normalize_LegacySync(t *testing.T) {
	input := CreateInput{
		Titulo:     "¿Qué es el Routing?",
		Frameworks: []string{"React", "VUE"},
		Translations: map[string]Translation{
			"es": {Title: "¿Qué es el Routing?", Description: "desc", Analogy: "analogía"},
		},
		FrameworkDetails: map[string]FrameworkDetail{
			"react": {CodeExample: "<Route />"},
			"vue":   {},
		},
	}
	input.Normalize()

	// 1. Framework identifiers are lowercased
	assert.Equal(t, []string{"react", "vue"}, input.Frameworks)

	// 2. librerias mirrors frameworks
	assert.Equal(t, []string{"react", "vue"}, input.Librerias)

	// 3. code_exemple only carries frameworks with a code example
	assert.Equal(t, map[string]string{"react": "<Route />"}, input.CodeExemple)

	// 4. The slug strips accents and punctuation
	assert.Equal(t, "que-es-el-routing", input.Slug)
}

/*
TestCreateInput_Normalize_TituloFromTranslation verifies that the legacy
title derives from the preferred translation when absent.
*/
func TestCreateInput_Normalize_TituloFromTranslation(t *testing.T) {
	input := CreateInput{
		Translations: map[string]Translation{
			"en": {Title: "State Management", Description: "d", Analogy: "a"},
			"es": {Title: "Manejo de Estados", Description: "desc", Analogy: "analogía"},
		},
	}
	input.Normalize()

	// Spanish wins over English as the authoring language
	assert.Equal(t, "Manejo de Estados", input.Titulo)
	assert.Equal(t, "desc", input.ExplicacionTecnica)
	assert.Equal(t, "analogía", input.ExplicacionEjemplo)
	assert.Equal(t, "manejo-de-estados", input.Slug)
}

func TestIsFrameworkValid(t *testing.T) {
	assert.True(t, IsFrameworkValid("react"))
	assert.True(t, IsFrameworkValid("svelte"))
	assert.False(t, IsFrameworkValid("React"))
	assert.False(t, IsFrameworkValid("jquery"))
	assert.False(t, IsFrameworkValid(""))
}

func TestIsDifficultyValid(t *testing.T) {
	assert.True(t, IsDifficultyValid("beginner"))
	assert.True(t, IsDifficultyValid("advanced"))
	assert.False(t, IsDifficultyValid("expert"))
	assert.False(t, IsDifficultyValid(""))
}
