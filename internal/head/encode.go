package head

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON marshals v without HTML escaping and without a trailing
// newline.  Inner HTML and URLs reach the consumer byte for byte; escaping
// is the renderer's job.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
