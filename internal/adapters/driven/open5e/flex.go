package open5e

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexString decodes a JSON string, number, boolean or null into a string.
// Objects yield their "name" (or "key") field, which covers v2 endpoints
// that embed documents and damage types as nested objects.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case '{':
		var obj struct {
			Name string `json:"name"`
			Key  string `json:"key"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			*f = flexString(obj.Name)
		} else {
			*f = flexString(obj.Key)
		}
	case '[':
		*f = ""
	default:
		*f = flexString(data)
	}
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// flexInt decodes a JSON number or numeric string into an int. Anything
// else decodes to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if n, err := strconv.ParseFloat(string(s), 64); err == nil {
		*f = flexInt(int(n))
	} else {
		*f = 0
	}
	return nil
}
