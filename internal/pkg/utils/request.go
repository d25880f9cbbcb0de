package utils

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
)

var ErrTrailingJSONData = errors.New("unexpected data after JSON value")

// DecodeJSONBody decodes exactly one JSON value from body into target.
// Anything but whitespace after that value is an error.
func DecodeJSONBody(body io.Reader, target interface{}) error {
	decoder := json.NewDecoder(body)
	err := decoder.Decode(target)
	if err != nil {
		return err
	}

	var extra json.RawMessage
	err = decoder.Decode(&extra)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrTrailingJSONData
}
