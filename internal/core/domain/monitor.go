package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scope pairs the campaign table and the source table a monitor rollup is
// computed for.
type Scope struct {
	CampaignTable string
	SourceTable   string
}

// Validate reports ErrBadRequest when either side of the scope is missing.
func (s Scope) Validate() error {
	if s.CampaignTable == "" || s.SourceTable == "" {
		return fmt.Errorf("campaign table and data table are required: %w", ErrBadRequest)
	}
	return nil
}

// Key is the single-flight key of the scope.
func (s Scope) Key() string {
	return s.CampaignTable + "\x00" + s.SourceTable
}

// MonitorRow is the monthly rollup of one scope. Period has the form
// "YYYY-MM". Monetary fields are exact decimals.
type MonitorRow struct {
	Period               string          `json:"period"`
	BookedImpressions    int64           `json:"booked_impressions"`
	DeliveredImpressions int64           `json:"delivered_impressions"`
	DeliveredLines       int64           `json:"delivered_lines"`
	MediaCost            decimal.Decimal `json:"media_cost"`
	MediaFees            decimal.Decimal `json:"media_fees"`
	ThirdPartyCost       decimal.Decimal `json:"third_party_cost"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	BookedRevenue        decimal.Decimal `json:"booked_revenue"`
}

// MonitorState is the cache state of a scope.
type MonitorState string

const (
	MonitorUncached   MonitorState = "uncached"
	MonitorCached     MonitorState = "cached"
	MonitorRefreshing MonitorState = "refreshing"
)
