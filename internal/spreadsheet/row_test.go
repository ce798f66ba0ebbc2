package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch-go-api/internal/directory"
)

func TestNormalizeRowRejectsHeadersAndBlanks(t *testing.T) {
	dir := directory.New()

	tests := []struct {
		name  string
		cells []string
	}{
		{"empty row", []string{}},
		{"blank first cell", []string{""}},
		{"whitespace first cell", []string{"   "}},
		{"header STOCK NAME", []string{"STOCK NAME", "100"}},
		{"header stock name lowercase", []string{"stock name"}},
		{"header STOCK", []string{"Stock"}},
		{"header NAME", []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NormalizeRow(tt.cells, dir)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeRowResolvesSymbol(t *testing.T) {
	dir := directory.New()

	row, ok := NormalizeRow([]string{"  itc  ", "100"}, dir)
	require.True(t, ok)
	assert.Equal(t, "itc", row.StockName)
	assert.Equal(t, "ITC.NS", row.Symbol)

	row, ok = NormalizeRow([]string{"SOME UNLISTED CO"}, dir)
	require.True(t, ok)
	assert.Equal(t, "", row.Symbol)
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		cell string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"0", 0},
		{"42", 42},
		{"123.45", 123.45},
		{"-7.5", -7.5},
		{"1,234.5", 1234.5},
		{"12,34,567", 1234567},
		{"garbage", 0},
		{"12abc", 0},
		{"N/A", 0},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeFloat(tt.cell))
		})
	}
}

func TestRowAccessorsFollowColumnLayout(t *testing.T) {
	dir := directory.New()
	cells := []string{
		"ITC",      // 0 name
		"100.5",    // 1 avg price
		"20",       // 2 initial qty
		"10",       // 3 qty
		"1,005",    // 4 avg invested
		"110.25",   // 5 current price
		"1102.5",   // 6 net value
		"97.5",     // 7 unrealized profit
		"12",       // 8 dividend till now
		"109.5",    // 9 total profit
		"10.9",     // 10 profit %
		"55",       // 11 realized
		"10",       // 12 booked qty
		"  hold  ", // 13 remarks
	}

	row, ok := NormalizeRow(cells, dir)
	require.True(t, ok)

	assert.Equal(t, 100.5, row.AvgPrice())
	assert.Equal(t, 20.0, row.InitialQty())
	assert.Equal(t, 10.0, row.Quantity())
	assert.Equal(t, 1005.0, row.AvgInvested())
	assert.Equal(t, 110.25, row.CurrentPrice())
	assert.Equal(t, 1102.5, row.NetValue())
	assert.Equal(t, 97.5, row.UnrealizedProfit())
	assert.Equal(t, 12.0, row.DividendTillNow())
	assert.Equal(t, 109.5, row.TotalProfit())
	assert.Equal(t, 10.9, row.ProfitPercent())
	assert.Equal(t, 55.0, row.Realized())
	assert.Equal(t, 10.0, row.BookedQty())
	assert.Equal(t, "hold", row.Remarks())
}

func TestRowShortOfColumnsReadsZero(t *testing.T) {
	dir := directory.New()

	row, ok := NormalizeRow([]string{"ITC", "100"}, dir)
	require.True(t, ok)

	assert.Equal(t, 100.0, row.AvgPrice())
	assert.Equal(t, 0.0, row.Quantity())
	assert.Equal(t, 0.0, row.Realized())
	assert.Equal(t, "", row.Remarks())
}

func TestSimpleLayoutAccessors(t *testing.T) {
	dir := directory.New()

	row, ok := NormalizeRow([]string{"ITC", "10", "150.5"}, dir)
	require.True(t, ok)

	assert.Equal(t, 10.0, row.SimpleQuantity())
	assert.Equal(t, 150.5, row.SimpleBuyPrice())
}
