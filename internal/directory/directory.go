// Package directory holds the static watch-list of tracked securities: a
// bidirectional mapping between human-readable names and exchange symbols.
package directory

// Entry pairs a security's display name with its market-feed symbol.
type Entry struct {
	Name   string
	Symbol string
}

// watchlist is the full set of tracked securities, in display order.
var watchlist = []Entry{
	{"ASIAN PAINTS", "ASIANPAINT.NS"},
	{"BRITANNIA INDUSTRIES", "BRITANNIA.NS"},
	{"HAPPIEST MINDS TECH", "HAPPSTMNDS.NS"},
	{"HCL TECHNOLOGIES", "HCLTECH.NS"},
	{"ITC", "ITC.NS"},
	{"ITC HOTELS", "ITCHOTELS.NS"},
	{"MAHINDRA & MAHINDRA", "M&M.NS"},
	{"PTC INDIA", "PTC.NS"},
	{"TATA CHEMICALS", "TATACHEM.NS"},
	{"TATA ELXSI", "TATAELXSI.NS"},
	{"TATA POWER", "TATAPOWER.NS"},
	{"TATA STEEL", "TATASTEEL.NS"},
	{"INFOSYS", "INFY.NS"},
	{"WIPRO", "WIPRO.NS"},
	{"ADANI PORTS", "ADANIPORTS.NS"},
	{"DRREDDY", "DRREDDY.NS"},
	{"GRASIM", "GRASIM.NS"},
	{"CAMS", "CAMS.NS"},
	{"HAVELLS", "HAVELLS.NS"},
	{"INDIAN HOTELS", "INDHOTEL.NS"},
	{"SIEMENS", "SIEMENS.NS"},
	{"ENRIN", "ENRIN.NS"},
	{"IRCTC", "IRCTC.NS"},
	{"STATE BANK OF INDIA", "SBIN.NS"},
	{"TRENT", "TRENT.NS"},
	{"BAJAJ FINANCE", "BAJFINANCE.NS"},
	{"INDUSIND BANK", "INDUSINDBK.NS"},
	{"ABFRL", "ABFRL.NS"},
	{"ABLBL", "ABLBL.NS"},
	{"TEJASNET", "TEJASNET.NS"},
	{"HYUNDAI", "HYUNDAI.NS"},
	{"LIC INDIA", "LICI.NS"},
	{"TCS", "TCS.NS"},
}

// Directory is an immutable name/symbol lookup table. Construct it once at
// startup; it is safe for concurrent reads.
type Directory struct {
	entries  []Entry
	byName   map[string]string
	bySymbol map[string]string
}

// New builds the directory from the static watch-list.
func New() *Directory {
	d := &Directory{
		entries:  watchlist,
		byName:   make(map[string]string, len(watchlist)),
		bySymbol: make(map[string]string, len(watchlist)),
	}
	for _, e := range watchlist {
		d.byName[e.Name] = e.Symbol
		d.bySymbol[e.Symbol] = e.Name
	}
	return d
}

// Symbol returns the market symbol for an exact name key, or "" if unmapped.
// Callers are expected to uppercase and trim before lookup.
func (d *Directory) Symbol(name string) string {
	return d.byName[name]
}

// Name is the reverse lookup: display name for a symbol, or "".
func (d *Directory) Name(symbol string) string {
	return d.bySymbol[symbol]
}

// Has reports whether name is an exact key in the directory.
func (d *Directory) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Symbols returns every tracked symbol in watch-list order.
func (d *Directory) Symbols() []string {
	symbols := make([]string, len(d.entries))
	for i, e := range d.entries {
		symbols[i] = e.Symbol
	}
	return symbols
}

// Entries returns the full watch-list in insertion order.
func (d *Directory) Entries() []Entry {
	return d.entries
}

// Map returns the name-to-symbol mapping as a plain map.
func (d *Directory) Map() map[string]string {
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.Name] = e.Symbol
	}
	return m
}

// Len is the number of tracked securities.
func (d *Directory) Len() int {
	return len(d.entries)
}
