package item

import (
	"encoding/json"
	"fmt"
)

// record is the external input shape. The identifier may arrive under any
// of the id/name/category keys depending on the producer.
type record struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	NumericValue *float64 `json:"numeric_value"`
	StringValue  string   `json:"string_value"`
	Unit         string   `json:"unit"`
}

// FromJSON parses an ordered JSON array of item records into items.
// The identifier is taken from "id", falling back to "name" and then
// "category". A record with no identifier is a parse error.
func FromJSON(data []byte) ([]Item, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}

	items := make([]Item, 0, len(records))
	for i, r := range records {
		id := r.ID
		if id == "" {
			id = r.Name
		}
		if id == "" {
			id = r.Category
		}
		if id == "" {
			return nil, fmt.Errorf("record %d: one of id, name or category is required", i)
		}
		items = append(items, Item{
			ID:           id,
			NumericValue: r.NumericValue,
			StringValue:  r.StringValue,
			Unit:         r.Unit,
		})
	}

	return items, nil
}
