package app

import (
	"fmt"

	"spacexdash/domain/chart"
	"spacexdash/domain/launch"
)

// ScatterPlot selects launches with rng.Low < payload < rng.High, restricted to
// site unless site is AllSites, and plots payload against landing outcome.
func ScatterPlot(table *launch.Table, site string, rng launch.PayloadRange) chart.ScatterChart {
	sc := chart.ScatterChart{
		Title:  scatterTitle(site),
		Site:   site,
		Range:  rng,
		Points: []chart.Point{},
	}
	if site != launch.AllSites && !launch.IsKnownSite(site) {
		sc.Empty = true
		return sc
	}

	seen := make(map[string]bool)
	for _, r := range table.Records {
		if !matches(r, site, rng) {
			continue
		}
		sc.Points = append(sc.Points, chart.Point{
			X:        r.PayloadMassKg,
			Y:        int(r.Class),
			Category: r.BoosterCategory,
			Site:     r.Site,
			Flight:   r.FlightNumber,
		})
		if !seen[r.BoosterCategory] {
			seen[r.BoosterCategory] = true
			sc.Categories = append(sc.Categories, r.BoosterCategory)
		}
	}
	sc.Empty = len(sc.Points) == 0
	return sc
}

// matches is the conjunction of the payload and site predicates
func matches(r launch.Record, site string, rng launch.PayloadRange) bool {
	if !rng.Contains(r.PayloadMassKg) {
		return false
	}
	return site == launch.AllSites || r.Site == site
}

func scatterTitle(site string) string {
	if site == launch.AllSites {
		return "Landing success vs Payload Mass for all launch sites"
	}
	return fmt.Sprintf("Landing success vs Payload Mass for %s", site)
}
