package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
)

func TestParseSkills(t *testing.T) {
	sheet := newSheet("computer_science_skills", []string{"skill", "level"},
		models.Row{"Skill", "Level"},
		models.Row{" Go ", int64(5)},
		models.Row{"Rust", "n/a"},
		models.Row{"SQL", "4.5"},
		models.Row{"Bash", nil},
		models.Row{"", int64(3)},
		models.Row{"Docker", 3.25},
		models.Row{"Excel", true},
		models.Row{"Perl", "NaN"},
	)

	assert.Equal(t, []models.RatedItem{
		{Name: "Go", Level: 5},
		{Name: "SQL", Level: 4.5},
		{Name: "Docker", Level: 3.25},
	}, ParseSkills(sheet))
}

func TestParseLanguages(t *testing.T) {
	sheet := newSheet("languages", []string{"language", "level"},
		models.Row{"Name of language", "level 1-5"},
		models.Row{"German", int64(5)},
		models.Row{"French", " 3 "},
		models.Row{"skill", int64(1)},
	)

	assert.Equal(t, []models.RatedItem{
		{Name: "German", Level: 5},
		{Name: "French", Level: 3},
	}, ParseLanguages(sheet))
}

func TestParseRatingsEmpty(t *testing.T) {
	items := ParseSkills(newSheet("computer_science_skills", nil))
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
