// Package utils provides general-purpose helper utilities used by the
// directory client and the fixture server: JSON response writing, the shared
// HTTP client, and trace id generation.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and an "application/json" content type.
//
// Marshaling happens before anything is written, so when it fails the client
// receives 500 Internal Server Error and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, users, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, data, false); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}

// EncodeJSON writes data to w as one JSON document followed by a newline.
// With indent set the document is indented by two spaces.
func EncodeJSON(w io.Writer, data any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	return nil
}
