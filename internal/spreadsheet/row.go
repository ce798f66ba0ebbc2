package spreadsheet

import (
	"strconv"
	"strings"

	"stockwatch-go-api/internal/directory"
)

// Fixed column layout of the portfolio sheet. Keep the positions here so a
// future layout change is a one-point edit.
const (
	colStockName = iota
	colAvgPrice
	colInitialQty
	colQuantity
	colAvgInvested
	colCurrentPrice
	colNetValue
	colUnrealizedProfit
	colDividendTillNow
	colTotalProfit
	colProfitPercent
	colRealized
	colBookedQty
	colRemarks
)

// headerAliases are first-cell values that mark a header row, matched
// case-insensitively.
var headerAliases = map[string]bool{
	"STOCK NAME": true,
	"STOCK":      true,
	"NAME":       true,
}

// Row is one accepted holding row. It keeps the raw cells and exposes the
// declared figures through named accessors.
type Row struct {
	StockName string
	Symbol    string

	cells []string
}

// NormalizeRow turns one raw sheet row into a Row. It returns false for rows
// that carry no holding: blank first cell or a header alias. The symbol is
// resolved through the directory on the upper-cased name and is empty when
// the name is unmapped.
func NormalizeRow(cells []string, dir *directory.Directory) (Row, bool) {
	name := ""
	if len(cells) > 0 {
		name = strings.TrimSpace(cells[0])
	}
	if name == "" || headerAliases[strings.ToUpper(name)] {
		return Row{}, false
	}
	return Row{
		StockName: name,
		Symbol:    dir.Symbol(strings.ToUpper(name)),
		cells:     cells,
	}, true
}

// SafeFloat coerces a raw cell to a number: blank cells and anything that
// fails to parse collapse to 0, and thousands-separator commas are stripped
// first. Parse failures are absorbed on purpose, never surfaced.
func SafeFloat(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (r Row) cell(i int) string {
	if i < len(r.cells) {
		return r.cells[i]
	}
	return ""
}

// Float coerces the cell at column i with the SafeFloat policy.
func (r Row) Float(i int) float64 {
	return SafeFloat(r.cell(i))
}

func (r Row) AvgPrice() float64         { return r.Float(colAvgPrice) }
func (r Row) InitialQty() float64       { return r.Float(colInitialQty) }
func (r Row) Quantity() float64         { return r.Float(colQuantity) }
func (r Row) AvgInvested() float64      { return r.Float(colAvgInvested) }
func (r Row) CurrentPrice() float64     { return r.Float(colCurrentPrice) }
func (r Row) NetValue() float64         { return r.Float(colNetValue) }
func (r Row) UnrealizedProfit() float64 { return r.Float(colUnrealizedProfit) }
func (r Row) DividendTillNow() float64  { return r.Float(colDividendTillNow) }
func (r Row) TotalProfit() float64      { return r.Float(colTotalProfit) }
func (r Row) ProfitPercent() float64    { return r.Float(colProfitPercent) }
func (r Row) Realized() float64         { return r.Float(colRealized) }
func (r Row) BookedQty() float64        { return r.Float(colBookedQty) }

func (r Row) Remarks() string {
	return strings.TrimSpace(r.cell(colRemarks))
}

// The declared-only report predates the full sheet layout: there quantity
// lives in column 1 and the buy price in column 2.
func (r Row) SimpleQuantity() float64 { return r.Float(colAvgPrice) }
func (r Row) SimpleBuyPrice() float64 { return r.Float(colInitialQty) }
