package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedKey string
		expectedVal string
	}{
		{
			name:        "key with value",
			input:       "key=value",
			expectedKey: "key",
			expectedVal: "value",
		},
		{
			name:        "key without value",
			input:       "key",
			expectedKey: "key",
		},
		{
			name:        "value with equals sign",
			input:       "key=value=extra",
			expectedKey: "key",
			expectedVal: "value=extra",
		},
		{
			name: "empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, val := ParseKeyValue(tt.input)
			assert.Equal(t, tt.expectedKey, key)
			assert.Equal(t, tt.expectedVal, val)
		})
	}
}

func TestParseKeyValuePairs(t *testing.T) {
	assert.Equal(t, map[string]string{}, ParseKeyValuePairs(""))
	assert.Equal(t, map[string]string{
		"team": "compilers",
		"env":  "a=b",
		"flag": "",
	}, ParseKeyValuePairs(" team=compilers , env=a=b,,flag,=orphan"))
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels("team=compilers,stage_1=dev")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"team": "compilers", "stage_1": "dev"}, labels)

	for _, input := range []string{"1team=x", "te-am=x", "__reserved=x"} {
		_, err := ParseLabels(input)
		assert.Error(t, err, input)
	}
}
