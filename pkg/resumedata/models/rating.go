package models

// RatedItem is a named item with a numeric level, used for skills and languages.
type RatedItem struct {
	Name  string  `json:"name"`
	Level float64 `json:"level"`
}
