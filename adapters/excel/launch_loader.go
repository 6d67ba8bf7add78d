package excel

import (
	"fmt"
	"log"
	"strconv"

	"spacexdash/domain/launch"
	"spacexdash/internal/errors"

	"github.com/montanaflynn/stats"
)

// Launch table columns
const (
	ColumnPayload         = "Payload Mass (kg)"
	ColumnSite            = "Launch Site"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnFlightNumber    = "Flight Number"
	ColumnBoosterVersion  = "Booster Version"
)

// RequiredColumns must all be present in the input file
var RequiredColumns = []string{ColumnPayload, ColumnSite, ColumnClass, ColumnBoosterCategory}

// LoadLaunchTable reads a CSV or XLSX launch file into a read-only table.
// Every failure is a LOAD_ERROR.
func LoadLaunchTable(filePath string) (*launch.Table, error) {
	data, err := NewDataReader(filePath).ReadData()
	if err != nil {
		return nil, errors.LoadError(fmt.Sprintf("failed to read launch data from %s", filePath), err)
	}
	return BuildLaunchTable(data)
}

// BuildLaunchTable validates the columns and rows of data and converts them to launch records
func BuildLaunchTable(data *ExcelData) (*launch.Table, error) {
	for _, column := range RequiredColumns {
		if !data.HasColumn(column) {
			return nil, errors.LoadError(fmt.Sprintf("required column %q not found", column), nil)
		}
	}
	if len(data.Rows) == 0 {
		return nil, errors.LoadError("launch data has no rows", nil)
	}

	records := make([]launch.Record, 0, len(data.Rows))
	payloads := make([]float64, 0, len(data.Rows))
	for i, row := range data.Rows {
		record, err := parseRecord(row)
		if err != nil {
			return nil, errors.LoadError(fmt.Sprintf("data row %d", i+1), err)
		}
		records = append(records, record)
		payloads = append(payloads, record.PayloadMassKg)
	}

	minPayload, err := stats.Min(payloads)
	if err != nil {
		return nil, errors.LoadError("failed to compute minimum payload", err)
	}
	maxPayload, err := stats.Max(payloads)
	if err != nil {
		return nil, errors.LoadError("failed to compute maximum payload", err)
	}

	log.Printf("[LaunchLoader] Loaded %d launches, payload %.0f-%.0f kg", len(records), minPayload, maxPayload)

	return &launch.Table{
		Records:    records,
		MinPayload: minPayload,
		MaxPayload: maxPayload,
	}, nil
}

func parseRecord(row RawRowData) (launch.Record, error) {
	payload, err := strconv.ParseFloat(row[ColumnPayload], 64)
	if err != nil {
		return launch.Record{}, fmt.Errorf("%s %q is not a number", ColumnPayload, row[ColumnPayload])
	}
	if payload < 0 {
		return launch.Record{}, fmt.Errorf("%s %g is negative", ColumnPayload, payload)
	}

	class, err := parseClass(row[ColumnClass])
	if err != nil {
		return launch.Record{}, err
	}

	site := row[ColumnSite]
	if !launch.IsKnownSite(site) {
		return launch.Record{}, fmt.Errorf("%s %q is not a known launch site", ColumnSite, site)
	}

	record := launch.Record{
		Site:            site,
		PayloadMassKg:   payload,
		BoosterCategory: row[ColumnBoosterCategory],
		BoosterVersion:  row[ColumnBoosterVersion],
		Class:           class,
	}
	if flight, ok := row[ColumnFlightNumber]; ok && flight != "" {
		n, err := strconv.Atoi(flight)
		if err != nil {
			return launch.Record{}, fmt.Errorf("%s %q is not an integer", ColumnFlightNumber, flight)
		}
		record.FlightNumber = n
	}
	return record, nil
}

// parseClass accepts 0 and 1, also written as floats by spreadsheet exports
func parseClass(value string) (launch.Outcome, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || (f != 0 && f != 1) {
		return 0, fmt.Errorf("%s %q is not 0 or 1", ColumnClass, value)
	}
	return launch.Outcome(int(f)), nil
}
