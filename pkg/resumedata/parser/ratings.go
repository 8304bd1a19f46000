package parser

import "github.com/ukaji3/resumedata-go/pkg/resumedata/models"

// ParseSkills reads the computer_science_skills sheet.
func ParseSkills(sheet *models.RawSheet) []models.RatedItem {
	return parseRatings(sheet)
}

// ParseLanguages reads the languages sheet.
func ParseLanguages(sheet *models.RawSheet) []models.RatedItem {
	return parseRatings(sheet)
}

// parseRatings reads name/level pairs. Rows whose level is not a finite
// number are dropped.
func parseRatings(sheet *models.RawSheet) []models.RatedItem {
	items := make([]models.RatedItem, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		name := CleanValue(row.Value(0))
		if ratingSentinels.match(name) {
			continue
		}
		level, ok := toFloat(row.Value(1))
		if !ok {
			continue
		}
		items = append(items, models.RatedItem{Name: name, Level: level})
	}
	return items
}
