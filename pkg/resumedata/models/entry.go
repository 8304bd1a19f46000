package models

// Entry is one résumé line item such as a job, a degree or a project.
type Entry struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Org      string `json:"org"`
	// Span is the formatted date range, empty when no dates are known.
	Span string `json:"span"`
	// Bullets keeps description column order.
	Bullets []string `json:"bullets"`
}
