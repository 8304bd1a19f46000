package models

// TextBlocks maps a text block id to its cleaned text.
type TextBlocks map[string]string

// Payload is the normalized résumé document produced from one workbook.
type Payload struct {
	// TextBlocks holds the free text blocks keyed by id.
	TextBlocks TextBlocks `json:"text_blocks"`
	// Entries holds résumé line items in sheet order.
	Entries []Entry `json:"entries"`
	// Skills holds computer science skill ratings.
	Skills []RatedItem `json:"skills"`
	// Languages holds spoken language ratings.
	Languages []RatedItem `json:"languages"`
	// ContactInfo holds contact rows.
	ContactInfo []Contact `json:"contact_info"`
	// GeneratedAt is the UTC build instant in ISO-8601 with a "Z" suffix.
	GeneratedAt string `json:"generated_at"`
	// Workbook is the source workbook file name (no path).
	Workbook string `json:"workbook"`
}
