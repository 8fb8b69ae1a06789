package docs_test

import (
	"encoding/json"
	"testing"

	"tracking/internal/adapters/in/http/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegister(t *testing.T) {
	require.NoError(t, docs.Register())
	require.NoError(t, docs.Register())

	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
	assert.Contains(t, parsed["paths"], "/api/v1/orders/{orderId}")
}
