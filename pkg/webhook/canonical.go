package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CanonicalJSON renders the payload as compact JSON with object keys in
// sorted order, without HTML escaping. The rendering is deterministic,
// so the signature computed over it verifies against a re-rendering of
// the same payload.
func CanonicalJSON(payload map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding/json emits map keys in sorted order.
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
