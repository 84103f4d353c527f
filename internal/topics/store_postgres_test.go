package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestUpdateBuilder_Empty verifies that a patch with no supplied fields
produces no SET clauses, which is what makes Update raise
ErrNoFieldsToUpdate before any SQL is issued.
*/
func TestUpdateBuilder_Empty(t *testing.T) {
	builder := updateBuilder{}

	builder.set("titulo", nil)
	require.NoError(t, builder.setJSON("frameworks", nil, false))

	assert.True(t, builder.empty())
	assert.Empty(t, builder.args)
}

/*
TestUpdateBuilder_Clauses verifies positional argument numbering across
scalar, JSON, and raw clauses.
*/
func TestUpdateBuilder_Clauses(t *testing.T) {
	builder := updateBuilder{}

	titulo := "Nuevo título"
	builder.set("titulo", &titulo)
	require.NoError(t, builder.setJSON("frameworks", []string{"react"}, true))
	builder.setRaw("updated_at = NOW()")

	assert.False(t, builder.empty())
	assert.Equal(t, "titulo = $1, frameworks = $2, updated_at = NOW()", builder.clause())
	assert.Len(t, builder.args, 2)

	// The WHERE placeholder comes right after the SET arguments.
	assert.Equal(t, 3, builder.next())
}
