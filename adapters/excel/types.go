package excel

// RawRowData represents a row of raw tabular data as header → cell pairs
type RawRowData map[string]string

// ExcelData represents the complete tabular dataset, CSV or XLSX
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// HasColumn reports whether header is one of the dataset's columns
func (d *ExcelData) HasColumn(header string) bool {
	for _, h := range d.Headers {
		if h == header {
			return true
		}
	}
	return false
}
