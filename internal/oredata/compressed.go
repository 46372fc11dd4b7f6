// Package oredata ships a ready-made catalog of compressed ores with current
// hub prices, unit volumes and reprocessing yields, plus a sample set of
// mineral quotas. It exists so the CLI works out of the box; callers with
// their own market data register their own catalog instead.
package oredata

import "github.com/oreworks/orecalc/internal/planner"

// Ore describes one compressed ore: per-unit price and volume, and the
// minerals returned by reprocessing one batch.
type Ore struct {
	Name       string
	UnitPrice  float64
	UnitVolume float64
	// BatchYields is minerals per reprocessing batch; one unit of compressed
	// ore feeds batchSize runs, so the per-unit yield is BatchYields * batchSize.
	BatchYields map[string]float64
}

// One unit of compressed ore stands in for 100 units of raw ore.
const batchSize = 100

var compressedOres = []Ore{
	{Name: "Arkonor", UnitPrice: 522100, UnitVolume: 8.80, BatchYields: map[string]float64{
		"Tritanium": 13.75, "Mexallon": 1.563, "Megacyte": 0.2,
	}},
	{Name: "Bistot", UnitPrice: 570100, UnitVolume: 4.40, BatchYields: map[string]float64{
		"Pyerite": 7.5, "Zydrine": 0.281, "Megacyte": 0.063,
	}},
	{Name: "Crokite", UnitPrice: 339.24, UnitVolume: 16, BatchYields: map[string]float64{
		"Tritanium": 13.125, "Nocxium": 0.475, "Zydrine": 0.084,
	}},
	{Name: "DarkOchre", UnitPrice: 397900, UnitVolume: 7.81, BatchYields: map[string]float64{
		"Tritanium": 12.5, "Isogen": 2.000, "Nocxium": 0.150,
	}},
	{Name: "Gneiss", UnitPrice: 285200, UnitVolume: 1.80, BatchYields: map[string]float64{
		"Pyerite": 4.400, "Mexallon": 4.800, "Isogen": 0.6,
	}},
	{Name: "Hedbergite", UnitPrice: 109700, UnitVolume: 0.47, BatchYields: map[string]float64{
		"Pyerite": 3.333, "Isogen": 0.667, "Nocxium": 0.333, "Zydrine": 0.063,
	}},
	{Name: "Hemorphite", UnitPrice: 99900, UnitVolume: 0.86, BatchYields: map[string]float64{
		"Tritanium": 7.333, "Isogen": 0.333, "Nocxium": 0.400, "Zydrine": 0.05,
	}},
	{Name: "Jaspet", UnitPrice: 83990, UnitVolume: 0.15, BatchYields: map[string]float64{
		"Mexallon": 1.750, "Nocxium": 0.375, "Zydrine": 0.040,
	}},
	{Name: "Kernite", UnitPrice: 24900, UnitVolume: 0.19, BatchYields: map[string]float64{
		"Tritanium": 1.117, "Mexallon": 2.225, "Isogen": 1.117,
	}},
	{Name: "Mercoxit", UnitPrice: 3.28e6, UnitVolume: 0.10, BatchYields: map[string]float64{
		"Morphite": 0.075,
	}},
	{Name: "Omber", UnitPrice: 9200.0, UnitVolume: 0.30, BatchYields: map[string]float64{
		"Tritanium": 13.333, "Pyerite": 1.667, "Isogen": 1.417,
	}},
	{Name: "Plagioclase", UnitPrice: 8700.0, UnitVolume: 0.15, BatchYields: map[string]float64{
		"Tritanium": 3.057, "Pyerite": 6.086, "Mexallon": 3.057,
	}},
	{Name: "Pyroxeres", UnitPrice: 11990, UnitVolume: 0.16, BatchYields: map[string]float64{
		"Tritanium": 11.7, "Pyerite": 0.833, "Mexallon": 1.667, "Nocxium": 0.167,
	}},
	{Name: "Scordite", UnitPrice: 2989.0, UnitVolume: 0.19, BatchYields: map[string]float64{
		"Tritanium": 23.067, "Pyerite": 11.533,
	}},
	{Name: "Spodumain", UnitPrice: 796400, UnitVolume: 28.0, BatchYields: map[string]float64{
		"Tritanium": 35, "Pyerite": 7.531, "Mexallon": 1.313, "Isogen": 0.281,
	}},
	{Name: "Veldspar", UnitPrice: 2690.0, UnitVolume: 0.15, BatchYields: map[string]float64{
		"Tritanium": 41.5,
	}},
}

// CompressedOres returns the built-in compressed ore catalog.
func CompressedOres() []Ore {
	out := make([]Ore, len(compressedOres))
	copy(out, compressedOres)
	return out
}

// PerUnitYield converts a batch yield to the yield of a single compressed unit.
func PerUnitYield(batchYield float64) float64 {
	return batchYield * batchSize
}

// Register loads the compressed ore catalog into a planner.
func Register(p *planner.Planner) error {
	for _, ore := range compressedOres {
		if err := p.RegisterResource(ore.Name, ore.UnitPrice, ore.UnitVolume); err != nil {
			return err
		}
	}
	for _, ore := range compressedOres {
		for _, mineral := range mineralOrder {
			if batch, ok := ore.BatchYields[mineral]; ok {
				if err := p.RegisterYield(ore.Name, mineral, PerUnitYield(batch)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Minerals in a fixed order so repeated registrations build identical models.
var mineralOrder = []string{
	"Tritanium", "Pyerite", "Mexallon", "Isogen",
	"Nocxium", "Zydrine", "Megacyte", "Morphite",
}

// SampleRequirement pairs a mineral with a build-sized quota.
type SampleRequirement struct {
	Mineral  string
	Quantity float64
}

// SampleRequirements is the mineral bill for a capital hull build, usable as
// a demo quota set.
func SampleRequirements() []SampleRequirement {
	return []SampleRequirement{
		{Mineral: "Megacyte", Quantity: 6575},
		{Mineral: "Zydrine", Quantity: 21186},
		{Mineral: "Nocxium", Quantity: 45699},
		{Mineral: "Isogen", Quantity: 186361},
		{Mineral: "Mexallon", Quantity: 733304},
		{Mineral: "Pyerite", Quantity: 2930004},
		{Mineral: "Tritanium", Quantity: 11716296},
	}
}
