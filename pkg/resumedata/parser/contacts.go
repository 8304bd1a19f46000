package parser

import "github.com/ukaji3/resumedata-go/pkg/resumedata/models"

// ParseContacts reads the contact_info sheet (id, icon, value).
func ParseContacts(sheet *models.RawSheet) []models.Contact {
	contacts := make([]models.Contact, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		id := CleanValue(row.Value(0))
		icon := CleanValue(row.Value(1))
		value := CleanValue(row.Value(2))

		if contactSentinels.match(id) || isContactHeader(icon, value) {
			continue
		}
		contacts = append(contacts, models.Contact{ID: id, Icon: icon, Value: value})
	}
	return contacts
}
