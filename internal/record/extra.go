package record

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Extra is arbitrary structured metadata attached to a record. The core
// treats it as opaque; it is stored as jsonb and a nil map round-trips as
// SQL NULL / JSON null.
type Extra map[string]any

// Value implements driver.Valuer.
func (e Extra) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner.
func (e *Extra) Scan(src any) error {
	if src == nil {
		*e = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into record.Extra", src)
	}
	return json.Unmarshal(raw, e)
}

// MarshalJSON renders null for an absent map.
func (e Extra) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]any(e))
}

// UnmarshalJSON accepts null or an object.
func (e *Extra) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = nil
		return nil
	}
	return json.Unmarshal(data, (*map[string]any)(e))
}
