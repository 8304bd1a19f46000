package parser

import "github.com/ukaji3/resumedata-go/pkg/resumedata/models"

// ParseTextBlocks reads the text_blocks sheet: column 1 is the block id,
// column 2 the text. A repeated id replaces the earlier text.
func ParseTextBlocks(sheet *models.RawSheet) models.TextBlocks {
	blocks := make(models.TextBlocks)
	for _, row := range sheet.Rows {
		key := CleanValue(row.Value(0))
		if textBlockSentinels.match(key) {
			continue
		}
		blocks[key] = CleanValue(row.Value(1))
	}
	return blocks
}
