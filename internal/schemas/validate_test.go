package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "count": {"type": "integer", "minimum": 0}
  }
}`

func TestValidateBytes_Valid(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{"name": "x", "count": 3}`))
	assert.NoError(t, err)
}

func TestValidateBytes_Violations(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"missing required field", `{"count": 3}`},
		{"wrong type", `{"name": 42}`},
		{"below minimum", `{"name": "x", "count": -1}`},
		{"unknown property", `{"name": "x", "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(testSchema, []byte(tt.document))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
			for _, fe := range validationErr.Errors {
				assert.NotEmpty(t, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
		})
	}
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_MalformedSchema(t *testing.T) {
	err := ValidateBytes(`{"type": `, []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
