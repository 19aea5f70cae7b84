package wallverse

import (
	"encoding/json"
	"fmt"
)

// encodeList serializes an ordered string list for a TEXT column.
// A nil list is written as "[]" so the column always holds a JSON array.
func encodeList(vals []string) (string, error) {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList parses a TEXT column written by encodeList. Empty columns
// (rows written by hand or by older schemas) decode to an empty list.
func decodeList(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	if vals == nil {
		vals = []string{}
	}
	return vals, nil
}
