package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDocumentedAsKeyValuePairs(t *testing.T) {
	var doc struct {
		Definitions map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	def, ok := doc.Definitions["internal_conversions_adapters_http_fiber.TranslateRequest"]
	require.True(t, ok)

	var settings struct {
		Type  string `json:"type"`
		Items struct {
			Type     string `json:"type"`
			MinItems int    `json:"minItems"`
			MaxItems int    `json:"maxItems"`
			Items    struct {
				Type string `json:"type"`
			} `json:"items"`
		} `json:"items"`
		Example [][2]string `json:"example"`
	}
	require.NoError(t, json.Unmarshal(def.Properties["settings"], &settings))

	assert.Equal(t, "array", settings.Type)
	assert.Equal(t, "array", settings.Items.Type)
	assert.Equal(t, 2, settings.Items.MinItems)
	assert.Equal(t, 2, settings.Items.MaxItems)
	assert.Equal(t, "string", settings.Items.Items.Type)
	assert.Equal(t, [][2]string{{"access-token", "abc"}, {"destination-id", "pixel-1"}}, settings.Example)
}
