package domain

import "time"

// Campaign is a campaign board. Every campaign owns exactly one dynamic
// table; Headers keeps the display column headers in upload order.
type Campaign struct {
	ID        int64
	Name      string
	TableName string
	Headers   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Table returns the dynamic table handle of the campaign.
func (c Campaign) Table() TableRef {
	return TableRef{
		Name:    c.TableName,
		Kind:    TableKindCampaign,
		OwnerID: c.ID,
		Headers: c.Headers,
	}
}
