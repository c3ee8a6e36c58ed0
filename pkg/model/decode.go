package model

import (
	"encoding/json"
	"errors"
)

// DecodeTolerant unmarshals data into v. Syntax errors are returned, but
// values of an unexpected type are skipped and leave the target field at
// its zero value.
func DecodeTolerant(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}
