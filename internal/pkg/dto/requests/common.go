package requests

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexibleID accepts a booking id sent either as a JSON number or as a
// quoted decimal string. Zero means the client did not send one.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		if unquoted == "" {
			*id = 0
			return nil
		}
		data = []byte(unquoted)
	}

	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id must be an integer: %w", err)
	}
	if value < 0 {
		return fmt.Errorf("id must not be negative: %d", value)
	}
	*id = FlexibleID(value)
	return nil
}
