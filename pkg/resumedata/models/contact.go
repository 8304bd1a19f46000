package models

// Contact is one contact line: a section id, an icon name and the value shown.
type Contact struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Value string `json:"value"`
}
