package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
)

func TestParseTextBlocks(t *testing.T) {
	sheet := newSheet("text_blocks", []string{"loc", "text"},
		models.Row{"ID used for finding text block", "Text to show"},
		models.Row{" intro ", "  Hello  "},
		models.Row{"", "orphan"},
		models.Row{"empty", nil},
		models.Row{"intro", "Hello again"},
		models.Row{"year", int64(2024)},
	)

	assert.Equal(t, models.TextBlocks{
		"intro": "Hello again",
		"empty": "",
		"year":  "2024",
	}, ParseTextBlocks(sheet))
}

func TestParseTextBlocksEmpty(t *testing.T) {
	blocks := ParseTextBlocks(newSheet("text_blocks", nil))
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}
