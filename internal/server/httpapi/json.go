package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// decodeJSON unmarshals the request body into v. An empty body leaves v
// zero-valued so field-level validation produces the specific message; a
// malformed body is the caller's error to report.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
