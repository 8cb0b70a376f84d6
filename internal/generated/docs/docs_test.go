package docs_test

import (
	"encoding/json"
	"testing"

	"prepcenter/internal/generated/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_ServesOpenAPIDocument(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, docs.SwaggerInfo.Title, doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/shipments/{shipmentId}/advance")
}
