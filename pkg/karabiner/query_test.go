// kbgen/pkg/karabiner/query_test.go

package karabiner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgehrsitz/kbgen/pkg/logging"
)

func TestQuery(t *testing.T) {
	doc, err := Marshal(sampleRuleSet(), EncodeOptions{})
	require.NoError(t, err)

	res, err := Query(doc, "title")
	require.NoError(t, err)
	assert.Equal(t, "test rules", res.String())

	res, err = Query(doc, "rules.#.description")
	require.NoError(t, err)
	require.True(t, res.IsArray())
	assert.Len(t, res.Array(), 3)
	assert.Equal(t, "tab -> VK4", res.Array()[0].String())

	res, err = Query(doc, "rules.1.manipulators.0.conditions.1.name")
	require.NoError(t, err)
	assert.Equal(t, "vk4", res.String())

	res, err = Query(doc, "rules.0.manipulators.0.to_if_alone.0.key_code")
	require.NoError(t, err)
	assert.Equal(t, "tab", res.String())
}

func TestQueryErrors(t *testing.T) {
	_, err := Query([]byte(`{"title":`), "title")
	assert.True(t, logging.IsType(err, logging.ErrorTypeQuery))

	_, err = Query([]byte(`{"title":"x"}`), "rules.0")
	assert.True(t, logging.IsType(err, logging.ErrorTypeQuery))
}
