package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		want    string
	}{
		{
			name:    "simple object",
			payload: map[string]interface{}{"a": 1},
			want:    `{"a":1}`,
		},
		{
			name:    "keys sorted",
			payload: map[string]interface{}{"b": 2, "a": 1, "c": 3},
			want:    `{"a":1,"b":2,"c":3}`,
		},
		{
			name: "nested maps sorted too",
			payload: map[string]interface{}{
				"outer": map[string]interface{}{"z": true, "a": false},
			},
			want: `{"outer":{"a":false,"z":true}}`,
		},
		{
			name:    "no html escaping",
			payload: map[string]interface{}{"url": "https://example.com/a?b=1&c=<2>"},
			want:    `{"url":"https://example.com/a?b=1&c=<2>"}`,
		},
		{
			name:    "empty object",
			payload: map[string]interface{}{},
			want:    `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalJSON(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonicalJSONDeterministic(t *testing.T) {
	payload := map[string]interface{}{
		"id":   "evt_1",
		"type": "document.uploaded",
		"data": map[string]interface{}{"file_name": "a.pdf", "pages": 3},
	}
	first, err := CanonicalJSON(payload)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CanonicalJSON(payload)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
