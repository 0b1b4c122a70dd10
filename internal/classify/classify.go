// Package classify implements the two standard soil classification
// systems: AASHTO (highway subgrade rating) and USCS (Unified Soil
// Classification System). Both operate on the index properties defined in
// internal/soil and return a symbol plus a plain-language description.
package classify

import "errors"

// ErrInvalidInput is returned when classification inputs are out of range.
var ErrInvalidInput = errors.New("classify: invalid input")

// Classification is the result of running a sample through one of the
// classification systems.
type Classification struct {
	// Symbol is the group symbol, e.g. "A-6(4)" or "SC".
	Symbol string

	// Description is the standard plain-language name for the group.
	Description string
}

func (c Classification) String() string { return c.Symbol }

// descriptions maps group symbols (without group index suffix) to their
// standard names. Dual and alternative symbols are resolved per component
// when not listed here.
var descriptions = map[string]string{
	// AASHTO groups
	"A-1-a": "Stone fragments, gravel, and sand",
	"A-1-b": "Stone fragments, gravel, and sand",
	"A-3":   "Fine sand",
	"A-2-4": "Silty or clayey gravel and sand",
	"A-2-5": "Silty or clayey gravel and sand",
	"A-2-6": "Silty or clayey gravel and sand",
	"A-2-7": "Silty or clayey gravel and sand",
	"A-4":   "Silty soils",
	"A-5":   "Silty soils",
	"A-6":   "Clayey soils",
	"A-7-5": "Clayey soils",
	"A-7-6": "Clayey soils",

	// USCS groups
	"GW":    "Well graded gravels",
	"GP":    "Poorly graded gravels",
	"GM":    "Silty gravels",
	"GC":    "Clayey gravels",
	"GM-GC": "Gravelly soils, silty to clayey",
	"SW":    "Well graded sands",
	"SP":    "Poorly graded sands",
	"SM":    "Silty sands",
	"SC":    "Clayey sands",
	"SM-SC": "Sandy soils, silty to clayey",
	"ML":    "Inorganic silts of low plasticity",
	"CL":    "Inorganic clays of low plasticity",
	"ML-CL": "Silty clays of low plasticity",
	"OL":    "Organic silts of low plasticity",
	"MH":    "Inorganic silts of high plasticity",
	"CH":    "Inorganic clays of high plasticity",
	"OH":    "Organic clays of high plasticity",
	"GW-GM": "Well graded gravels with silt",
	"GP-GM": "Poorly graded gravels with silt",
	"GW-GC": "Well graded gravels with clay",
	"GP-GC": "Poorly graded gravels with clay",
	"SW-SM": "Well graded sands with silt",
	"SP-SM": "Poorly graded sands with silt",
	"SW-SC": "Well graded sands with clay",
	"SP-SC": "Poorly graded sands with clay",
}

// describe resolves a symbol to its standard description, falling back to
// an empty string for compound alternatives not in the table.
func describe(symbol string) string {
	return descriptions[symbol]
}
