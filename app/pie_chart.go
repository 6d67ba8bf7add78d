package app

import (
	"fmt"

	"spacexdash/domain/chart"
	"spacexdash/domain/launch"
)

// PieChart aggregates landing outcomes for the selected site.
//
// For AllSites each segment is a site and its value is the number of successful
// landings there. For a single site there are exactly two segments, Failure then
// Success, valued by row count. An unknown site yields an empty chart.
func PieChart(table *launch.Table, site string) chart.PieChart {
	if site == launch.AllSites {
		return allSitesPie(table)
	}

	pie := chart.PieChart{
		Title: fmt.Sprintf("Successful booster landings for %s", site),
		Site:  site,
	}
	if !launch.IsKnownSite(site) {
		pie.Empty = true
		return pie
	}

	var counts [2]int
	for _, r := range table.Records {
		if r.Site == site && r.Class.Valid() {
			counts[r.Class]++
		}
	}

	// Failure is emitted first whatever the counts are
	for _, outcome := range []launch.Outcome{launch.Failure, launch.Success} {
		pie.Segments = append(pie.Segments, chart.Segment{
			Label:    outcome.Label(),
			Value:    float64(counts[outcome]),
			Launches: counts[outcome],
			Color:    chart.OutcomeColor(outcome),
		})
	}
	pie.Empty = counts[launch.Failure]+counts[launch.Success] == 0
	return pie
}

func allSitesPie(table *launch.Table) chart.PieChart {
	successes := make(map[string]int)
	launches := make(map[string]int)
	for _, r := range table.Records {
		launches[r.Site]++
		successes[r.Site] += int(r.Class)
	}

	pie := chart.PieChart{
		Title: "Successful booster landings by Launch Site",
		Site:  launch.AllSites,
	}
	for i, site := range table.Sites() {
		pie.Segments = append(pie.Segments, chart.Segment{
			Label:    site,
			Value:    float64(successes[site]),
			Launches: launches[site],
			Color:    chart.PaletteColor(i),
		})
	}
	pie.Empty = len(pie.Segments) == 0
	return pie
}
