package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
)

// ErrEmptyBody is returned when a request carries no payload at all.
var ErrEmptyBody = errors.New("request body is empty")

// maxLenientBody bounds JSON payloads read by ReadLenientJSON.
const maxLenientBody = 1 << 20

// DecodeLenientJSON decodes a JSON object payload into v.
//
// The website's form client serializes payloads in more than one way, so
// every shape below decodes to the same object:
//
//	{"email":"a@b.c"}
//	"{\"email\":\"a@b.c\"}"
//	["{\"email\":\"a@b.c\"}"]
//	[{"email":"a@b.c"}]
func DecodeLenientJSON(body []byte, v any) error {
	data := bytes.TrimSpace(body)
	if len(data) == 0 {
		return ErrEmptyBody
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decoding body array: %w", err)
		}
		if len(items) != 1 {
			return fmt.Errorf("expected a single-element array, got %d elements", len(items))
		}
		data = bytes.TrimSpace(items[0])
	}

	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return fmt.Errorf("decoding body string: %w", err)
		}
		data = bytes.TrimSpace([]byte(encoded))
	}

	if len(data) == 0 || data[0] != '{' {
		return errors.New("body must be a JSON object")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding body object: %w", err)
	}

	return nil
}

// ReadLenientJSON reads the request body and decodes it with DecodeLenientJSON.
func ReadLenientJSON(c echo.Context, v any) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxLenientBody))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}

	return DecodeLenientJSON(body, v)
}
