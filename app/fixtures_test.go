package app

import "spacexdash/domain/launch"

// fixtureTable mirrors the shape of the launch CSV with a few boundary payloads
func fixtureTable() *launch.Table {
	records := []launch.Record{
		{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 0, BoosterCategory: "v1.0", Class: launch.Failure},
		{FlightNumber: 2, Site: "CCAFS LC-40", PayloadMassKg: 525, BoosterCategory: "v1.0", Class: launch.Failure},
		{FlightNumber: 3, Site: "CCAFS LC-40", PayloadMassKg: 2000, BoosterCategory: "v1.1", Class: launch.Success},
		{FlightNumber: 4, Site: "VAFB SLC-4E", PayloadMassKg: 500, BoosterCategory: "v1.1", Class: launch.Failure},
		{FlightNumber: 5, Site: "VAFB SLC-4E", PayloadMassKg: 9600, BoosterCategory: "FT", Class: launch.Success},
		{FlightNumber: 6, Site: "KSC LC-39A", PayloadMassKg: 2490, BoosterCategory: "FT", Class: launch.Success},
		{FlightNumber: 7, Site: "KSC LC-39A", PayloadMassKg: 5000, BoosterCategory: "FT", Class: launch.Success},
		{FlightNumber: 8, Site: "KSC LC-39A", PayloadMassKg: 5300, BoosterCategory: "FT", Class: launch.Failure},
		{FlightNumber: 9, Site: "KSC LC-39A", PayloadMassKg: 3700, BoosterCategory: "B4", Class: launch.Success},
		{FlightNumber: 10, Site: "CCAFS SLC-40", PayloadMassKg: 4707, BoosterCategory: "B5", Class: launch.Success},
		{FlightNumber: 11, Site: "CCAFS SLC-40", PayloadMassKg: 10000, BoosterCategory: "B5", Class: launch.Success},
		{FlightNumber: 12, Site: "CCAFS SLC-40", PayloadMassKg: 3600, BoosterCategory: "B4", Class: launch.Failure},
	}
	return &launch.Table{Records: records, MinPayload: 0, MaxPayload: 10000}
}

func countSite(table *launch.Table, site string) int {
	n := 0
	for _, r := range table.Records {
		if r.Site == site {
			n++
		}
	}
	return n
}
