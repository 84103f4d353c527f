// Copyright (c) 2026 Frameteca. All rights reserved.
// Author: a.navarrete.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anavarrete/frameteca/pkg/slug"
)

/*
TestFrom verifies the slug pipeline against the kinds of titles that
actually occur in the topics table (Spanish, accented, punctuated).
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spanish_question", "¿Qué es el Routing?", "que-es-el-routing"},
		{"plain_title", "Manejo de Estados", "manejo-de-estados"},
		{"accents", "Optimización y Renderizados", "optimizacion-y-renderizados"},
		{"mixed_case", "React Hooks Avanzados", "react-hooks-avanzados"},
		{"repeated_separators", "Estado  --  Global", "estado-global"},
		{"leading_trailing", "  ¡Componentes!  ", "componentes"},
		{"digits_kept", "Vue 3 Composition API", "vue-3-composition-api"},
		{"empty", "", ""},
		{"only_punctuation", "¿¡?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
