package entity

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList stores a list of strings as a JSON text column (tags, image
// URLs, specialties, attachment URLs). Empty or malformed column data reads
// back as an empty list, never an error.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}

	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}

	*l = items
	return nil
}
