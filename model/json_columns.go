package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Custom serializers for the jsonb-ish movie columns. Elements are structs
// so they're stored as JSON text, which both SQLite and Postgres accept.

type CastList []CastMember

// Value implements the driver.Valuer interface.
func (l CastList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cast list, %w", err)
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (l *CastList) Scan(value any) error {
	b, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan CastList, %w", err)
	}

	if len(b) == 0 {
		*l = CastList{}
		return nil
	}

	return json.Unmarshal(b, l)
}

type PlatformList []Platform

// Value implements the driver.Valuer interface.
func (l PlatformList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode platform list, %w", err)
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (l *PlatformList) Scan(value any) error {
	b, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan PlatformList, %w", err)
	}

	if len(b) == 0 {
		*l = PlatformList{}
		return nil
	}

	return json.Unmarshal(b, l)
}

func columnBytes(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}
