package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mesa-board/internal/core/domain"
)

// Sanitized column keys the rollup reads. The first key present in a row
// wins.
var (
	dateKeys                = []string{"date", "day", "delivery_date", "report_date", "start_date", "flight_start", "month", "period"}
	bookedImpressionKeys    = []string{"booked_impressions", "booked_imps", "planned_impressions"}
	deliveredImpressionKeys = []string{"delivered_impressions", "impressions", "delivered_imps", "imps"}
	mediaCostKeys           = []string{"media_cost"}
	mediaFeeKeys            = []string{"media_fees", "fees"}
	thirdPartyCostKeys      = []string{"third_party_cost", "3p_cost", "tp_cost"}
	totalCostKeys           = []string{"total_cost", "cost"}
	bookedRevenueKeys       = []string{"booked_revenue", "revenue"}
	periodLayouts           = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "1/2/2006", "2006/01/02", "2006-01", "Jan 2006", "January 2006", "Jan 2, 2006"}
	amountReplacer          = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", "%", "", " ", "")
)

// maxExponent bounds the decimal exponent of accepted values. Cells such as
// "1e999999999" would otherwise make every later Add build a huge integer.
const maxExponent = 30

var (
	minCount = decimal.NewFromInt(math.MinInt64)
	maxCount = decimal.NewFromInt(math.MaxInt64)
)

// rollupStats counts the values the rollup could not use.
type rollupStats struct {
	// malformed counts present values that did not parse as numbers and
	// were treated as zero.
	malformed int
	// undated counts rows skipped because no date could be derived.
	undated int
}

func (s rollupStats) total() int { return s.malformed + s.undated }

// rollup folds rows into one MonitorRow per month, sorted by period. Missing
// values count as zero; malformed ones too, and are reported in the stats.
func rollup(sets ...[]domain.Row) ([]domain.MonitorRow, rollupStats) {
	var (
		f      folder
		groups = make(map[string]*domain.MonitorRow)
	)
	for _, set := range sets {
		for _, row := range set {
			p, ok := rowPeriod(row)
			if !ok {
				f.stats.undated++
				continue
			}
			acc, ok := groups[p]
			if !ok {
				acc = &domain.MonitorRow{Period: p}
				groups[p] = acc
			}
			f.fold(acc, row)
		}
	}

	out := make([]domain.MonitorRow, 0, len(groups))
	for _, acc := range groups {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, f.stats
}

type folder struct {
	stats rollupStats
}

func (f *folder) fold(acc *domain.MonitorRow, row domain.Row) {
	acc.BookedImpressions += f.count(row, bookedImpressionKeys)
	delivered := f.count(row, deliveredImpressionKeys)
	acc.DeliveredImpressions += delivered
	if delivered > 0 {
		acc.DeliveredLines++
	}

	media, _ := f.amount(row, mediaCostKeys)
	fees, _ := f.amount(row, mediaFeeKeys)
	thirdParty, _ := f.amount(row, thirdPartyCostKeys)
	acc.MediaCost = acc.MediaCost.Add(media)
	acc.MediaFees = acc.MediaFees.Add(fees)
	acc.ThirdPartyCost = acc.ThirdPartyCost.Add(thirdParty)

	total, ok := f.amount(row, totalCostKeys)
	if !ok {
		total = media.Add(fees).Add(thirdParty)
	}
	acc.TotalCost = acc.TotalCost.Add(total)

	revenue, _ := f.amount(row, bookedRevenueKeys)
	acc.BookedRevenue = acc.BookedRevenue.Add(revenue)
}

// amount returns the first usable value among keys. The boolean is false
// when the value is missing or malformed; both yield zero.
func (f *folder) amount(row domain.Row, keys []string) (decimal.Decimal, bool) {
	v, ok := lookup(row, keys)
	if !ok {
		return decimal.Zero, false
	}
	d, err := parseDecimal(v)
	if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		f.stats.malformed++
		return decimal.Zero, false
	}
	return d, true
}

// count is amount for integer fields. Values outside the int64 range are
// malformed.
func (f *folder) count(row domain.Row, keys []string) int64 {
	d, ok := f.amount(row, keys)
	if !ok {
		return 0
	}
	if d.LessThan(minCount) || d.GreaterThan(maxCount) {
		f.stats.malformed++
		return 0
	}
	return d.IntPart()
}

func lookup(row domain.Row, keys []string) (any, bool) {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func parseDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int64:
		return decimal.NewFromInt(x), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case []byte:
		return parseAmount(string(x))
	case string:
		return parseAmount(x)
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", v)
	}
}

// parseAmount accepts plain numbers as well as spreadsheet renderings such
// as "$1,204.50", "12%" or "(30.00)" for negatives.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = amountReplacer.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func rowPeriod(row domain.Row) (string, bool) {
	v, ok := lookup(row, dateKeys)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case time.Time:
		// timestamptz values arrive in the session zone; file them by UTC month.
		return x.UTC().Format("2006-01"), true
	case string:
		// The month is taken as written, whatever the offset.
		s := strings.TrimSpace(x)
		for _, layout := range periodLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01"), true
			}
		}
	}
	return "", false
}
