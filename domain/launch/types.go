// Package launch holds the launch record table and the selection that filters it.
package launch

// AllSites is the dropdown value that selects every launch site.
const AllSites = "All"

// SiteOption is one entry of the launch site dropdown
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteOptions lists the dropdown entries in display order. The first entry selects all sites.
var SiteOptions = []SiteOption{
	{Label: "All Sites", Value: AllSites},
	{Label: "Cape Canaveral AFS SLC-40", Value: "CCAFS SLC-40"},
	{Label: "Cape Canaveral AFS LC-40", Value: "CCAFS LC-40"},
	{Label: "Kennedy SC LC-39A", Value: "KSC LC-39A"},
	{Label: "Vandenberg AFB SLC-4E", Value: "VAFB SLC-4E"},
}

// KnownSites returns the enumerated launch sites, excluding AllSites
func KnownSites() []string {
	sites := make([]string, 0, len(SiteOptions)-1)
	for _, opt := range SiteOptions[1:] {
		sites = append(sites, opt.Value)
	}
	return sites
}

// IsKnownSite reports whether site is one of the enumerated launch sites
func IsKnownSite(site string) bool {
	return siteIndex(site) >= 0
}

// siteIndex returns the position of site in KnownSites, or -1
func siteIndex(site string) int {
	for i, opt := range SiteOptions[1:] {
		if opt.Value == site {
			return i
		}
	}
	return -1
}

// Outcome is the binary landing result of a booster
type Outcome int

const (
	Failure Outcome = 0
	Success Outcome = 1
)

// Label returns the pie chart label for the outcome
func (o Outcome) Label() string {
	if o == Success {
		return "Success"
	}
	return "Failure"
}

// Valid reports whether o is 0 or 1
func (o Outcome) Valid() bool {
	return o == Failure || o == Success
}

// Record is one launch row. Records are never modified after load.
type Record struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
	Class           Outcome `json:"class"`
}

// Table is the read-only launch table shared by every request
type Table struct {
	Records    []Record
	MinPayload float64
	MaxPayload float64
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Sites returns the distinct sites present in the table.
// Enumerated sites come first in dropdown order, any others follow in first-seen order.
func (t *Table) Sites() []string {
	if t == nil {
		return nil
	}
	present := make(map[string]bool)
	var extra []string
	for _, r := range t.Records {
		if present[r.Site] {
			continue
		}
		present[r.Site] = true
		if !IsKnownSite(r.Site) {
			extra = append(extra, r.Site)
		}
	}

	sites := make([]string, 0, len(present))
	for _, site := range KnownSites() {
		if present[site] {
			sites = append(sites, site)
		}
	}
	return append(sites, extra...)
}
