package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "/api/v1", parsed.BasePath)
	for _, path := range []string{"/quotes", "/calculator/ws", "/onboarding", "/recipients/{id}", "/transfers"} {
		assert.Contains(t, parsed.Paths, path)
	}
}
