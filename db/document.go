package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Document is an open key-value JSON document stored in a jsonb column.
// The language model's output shape is not contractually stable, so
// requirements, parsed data and evaluations stay schema-less.
type Document map[string]any

func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Document{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into Document", src)
	}
}
