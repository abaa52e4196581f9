package reconcile

import (
	"math"

	"stocktake/core/retail"
	"stocktake/feature/inventory/models"
)

// Row is one line of the full reconciliation report: a baseline line with
// its counted quantity and monetary variance, or a surplus line (counted
// but not expected) flagged with IsSurplus.
type Row struct {
	SKU         string  `json:"sku"`
	Alu         string  `json:"alu"`
	Description string  `json:"description"`
	Department  string  `json:"department"`
	Model       string  `json:"model"`
	Vendor      string  `json:"vendor"`
	Theoretical int     `json:"theoretical"`
	Counted     int     `json:"counted"`
	Variance    int     `json:"variance"`
	Cost        float64 `json:"cost"`
	Price       float64 `json:"price"`
	CostDiff    float64 `json:"cost_diff"`
	PriceDiff   float64 `json:"price_diff"`
	IsSurplus   bool    `json:"is_surplus"`
}

// Line is the lighter per-line shape used by the progress view: same
// variance data as Row but without monetary enrichment.
type Line struct {
	SKU         string `json:"sku"`
	Alu         string `json:"alu"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Model       string `json:"model"`
	Vendor      string `json:"vendor"`
	Season      string `json:"season"`
	Theoretical int    `json:"theoretical"`
	Counted     int    `json:"counted"`
	Variance    int    `json:"variance"`
	IsSurplus   bool   `json:"is_surplus"`
}

// Summary aggregates a session's counting progress.
type Summary struct {
	TotalTheoretical int     `json:"total_theoretical"`
	TotalCounted     int     `json:"total_counted"`
	Percent          float64 `json:"percent"`
	TotalLines       int     `json:"total_lines"`
	CountedLines     int     `json:"counted_lines"`
}

// Progress is the lightweight aggregate view polled by operator dashboards.
type Progress struct {
	Summary  Summary        `json:"summary"`
	ByDevice map[string]int `json:"by_device"`
	Lines    []Line         `json:"lines"`
}

// surplusKey groups readings whose SKU is absent from the baseline.
type surplusKey struct {
	sku  string
	alu  string
	desc string
}

type surplusGroup struct {
	key     surplusKey
	counted int
}

// CountBySKU sums reading quantities per SKU.
func CountBySKU(readings []models.Reading) map[string]int {
	counts := make(map[string]int)
	for _, r := range readings {
		counts[r.SKU] += r.Quantity
	}
	return counts
}

// SurplusSKUs returns the distinct SKUs present in readings but absent from
// the baseline, in first-seen order. Report uses it to scope the
// department/vendor back-fill lookup.
func SurplusSKUs(baseline []models.StockLine, readings []models.Reading) []string {
	inBaseline := make(map[string]struct{}, len(baseline))
	for _, b := range baseline {
		inBaseline[b.SKU] = struct{}{}
	}

	seen := make(map[string]struct{})
	var skus []string
	for _, r := range readings {
		if _, ok := inBaseline[r.SKU]; ok {
			continue
		}
		if _, ok := seen[r.SKU]; ok {
			continue
		}
		seen[r.SKU] = struct{}{}
		skus = append(skus, r.SKU)
	}
	return skus
}

// surplusGroups groups surplus readings by (SKU, ALU, description) with
// quantities summed, preserving first-seen order.
func surplusGroups(baseline []models.StockLine, readings []models.Reading) []surplusGroup {
	inBaseline := make(map[string]struct{}, len(baseline))
	for _, b := range baseline {
		inBaseline[b.SKU] = struct{}{}
	}

	index := make(map[surplusKey]int)
	var groups []surplusGroup
	for _, r := range readings {
		if _, ok := inBaseline[r.SKU]; ok {
			continue
		}
		key := surplusKey{sku: r.SKU, alu: r.Alu, desc: r.Description}
		if i, ok := index[key]; ok {
			groups[i].counted += r.Quantity
			continue
		}
		index[key] = len(groups)
		groups = append(groups, surplusGroup{key: key, counted: r.Quantity})
	}
	return groups
}

// Report computes the full reconciliation: one row per baseline line in
// baseline order, followed by surplus rows. Pricing misses default to
// zero-valued enrichment; negative theoretical quantities pass through
// unmodified.
func Report(baseline []models.StockLine, readings []models.Reading,
	pricing map[string]retail.Pricing, backfill map[string]retail.DeptVendor) []Row {

	counts := CountBySKU(readings)
	rows := make([]Row, 0, len(baseline))

	for _, b := range baseline {
		counted := counts[b.SKU]
		variance := counted - b.Theoretical
		p := pricing[b.SKU]
		rows = append(rows, Row{
			SKU:         b.SKU,
			Alu:         b.Alu,
			Description: b.Description,
			Department:  b.Department,
			Model:       b.Model,
			Vendor:      p.Vendor,
			Theoretical: b.Theoretical,
			Counted:     counted,
			Variance:    variance,
			Cost:        p.Cost,
			Price:       p.Price,
			CostDiff:    round2(float64(variance) * p.Cost),
			PriceDiff:   round2(float64(variance) * p.Price),
			IsSurplus:   false,
		})
	}

	for _, g := range surplusGroups(baseline, readings) {
		p := pricing[g.key.sku]
		bf := backfill[g.key.sku]
		rows = append(rows, Row{
			SKU:         g.key.sku,
			Alu:         g.key.alu,
			Description: g.key.desc,
			Department:  bf.Department,
			Vendor:      bf.Vendor,
			Theoretical: 0,
			Counted:     g.counted,
			Variance:    g.counted,
			Cost:        p.Cost,
			Price:       p.Price,
			CostDiff:    round2(float64(g.counted) * p.Cost),
			PriceDiff:   round2(float64(g.counted) * p.Price),
			IsSurplus:   true,
		})
	}

	return rows
}

// BuildProgress computes the lightweight aggregate view. Percent is defined
// as 0 when the theoretical total is 0.
func BuildProgress(baseline []models.StockLine, readings []models.Reading) *Progress {
	counts := CountBySKU(readings)

	var totalTheoretical, totalCounted, countedLines int
	lines := make([]Line, 0, len(baseline))

	for _, b := range baseline {
		counted := counts[b.SKU]
		totalTheoretical += b.Theoretical
		totalCounted += counted
		if counted > 0 {
			countedLines++
		}
		lines = append(lines, Line{
			SKU:         b.SKU,
			Alu:         b.Alu,
			Description: b.Description,
			Department:  b.Department,
			Model:       b.Model,
			Vendor:      b.Vendor,
			Season:      b.Season,
			Theoretical: b.Theoretical,
			Counted:     counted,
			Variance:    counted - b.Theoretical,
			IsSurplus:   false,
		})
	}

	for _, g := range surplusGroups(baseline, readings) {
		totalCounted += g.counted
		lines = append(lines, Line{
			SKU:         g.key.sku,
			Alu:         g.key.alu,
			Description: g.key.desc,
			Theoretical: 0,
			Counted:     g.counted,
			Variance:    g.counted,
			IsSurplus:   true,
		})
	}

	byDevice := make(map[string]int)
	for _, r := range readings {
		byDevice[r.Device] += r.Quantity
	}

	percent := 0.0
	if totalTheoretical > 0 {
		percent = round1(float64(totalCounted) / float64(totalTheoretical) * 100)
	}

	return &Progress{
		Summary: Summary{
			TotalTheoretical: totalTheoretical,
			TotalCounted:     totalCounted,
			Percent:          percent,
			TotalLines:       len(baseline),
			CountedLines:     countedLines,
		},
		ByDevice: byDevice,
		Lines:    lines,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
