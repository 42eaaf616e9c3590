package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// FieldChange is a single field name and its new value
type FieldChange struct {
	Field string
	Value string
}

// FieldChanges is an ordered field -> value mapping. It encodes as a JSON object
// whose keys keep insertion order; a nil value encodes as null.
type FieldChanges []FieldChange

// Set adds or replaces the value for field, keeping the original position on replace.
func (fc *FieldChanges) Set(field, value string) {
	for i := range *fc {
		if (*fc)[i].Field == field {
			(*fc)[i].Value = value
			return
		}
	}
	*fc = append(*fc, FieldChange{Field: field, Value: value})
}

// Get returns the value recorded for field.
func (fc FieldChanges) Get(field string) (string, bool) {
	for _, c := range fc {
		if c.Field == field {
			return c.Value, true
		}
	}
	return "", false
}

// Columns returns the changes as a column -> value map for gorm Updates.
func (fc FieldChanges) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, len(fc))
	for _, c := range fc {
		cols[c.Field] = c.Value
	}
	return cols
}

func (fc FieldChanges) MarshalJSON() ([]byte, error) {
	if fc == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range fc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (fc *FieldChanges) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*fc = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("field changes must be a JSON object")
	}

	changes := FieldChanges{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		changes.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after field changes object")
	}

	*fc = changes
	return nil
}
