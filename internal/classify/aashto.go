package classify

import (
	"fmt"
	"math"

	"soilworks/internal/mathx"
)

// AASHTO classifies a soil for highway subgrade use from its liquid
// limit, plasticity index and fines content, returning a group symbol of
// the form "A-6(4)" where the parenthesised number is the group index.
type AASHTO struct {
	liquidLimit     float64
	plasticityIndex float64
	fines           float64

	// OmitGroupIndex drops the "(GI)" suffix from the reported symbol.
	OmitGroupIndex bool
}

// NewAASHTO validates the inputs and returns a classifier. Fines is the
// percentage passing the No. 200 sieve and must lie in [0, 100]; the
// plasticity index may not exceed the liquid limit.
func NewAASHTO(liquidLimit, plasticityIndex, fines float64) (*AASHTO, error) {
	switch {
	case liquidLimit < 0:
		return nil, fmt.Errorf("%w: liquid limit %v is negative", ErrInvalidInput, liquidLimit)
	case plasticityIndex < 0:
		return nil, fmt.Errorf("%w: plasticity index %v is negative", ErrInvalidInput, plasticityIndex)
	case plasticityIndex > liquidLimit:
		return nil, fmt.Errorf("%w: plasticity index %v exceeds liquid limit %v",
			ErrInvalidInput, plasticityIndex, liquidLimit)
	case fines < 0 || fines > 100:
		return nil, fmt.Errorf("%w: fines %v outside [0, 100]", ErrInvalidInput, fines)
	}
	return &AASHTO{
		liquidLimit:     liquidLimit,
		plasticityIndex: plasticityIndex,
		fines:           fines,
	}, nil
}

// GroupIndex computes the AASHTO group index
//
//	GI = (F - 35)[0.2 + 0.005(LL - 40)] + 0.01(F - 15)(PI - 10)
//
// floored at zero and rounded to the nearest whole number. For the A-2-6
// and A-2-7 groups only the second (PI) term applies.
func (c *AASHTO) GroupIndex() float64 {
	symbol := c.symbol()

	var gi float64
	if symbol != "A-2-6" && symbol != "A-2-7" {
		gi = (c.fines - 35.0) * (0.2 + 0.005*(c.liquidLimit-40.0))
	}
	gi += 0.01 * (c.fines - 15.0) * (c.plasticityIndex - 10.0)

	if gi <= 0 {
		return 0
	}
	return math.Round(gi)
}

// Classify returns the AASHTO group for the sample.
func (c *AASHTO) Classify() Classification {
	symbol := c.symbol()
	reported := symbol
	if !c.OmitGroupIndex {
		reported = fmt.Sprintf("%s(%.0f)", symbol, c.GroupIndex())
	}
	return Classification{Symbol: reported, Description: describe(symbol)}
}

func (c *AASHTO) symbol() string {
	if c.fines <= 35 {
		return c.granular()
	}
	return c.siltClay()
}

// granular handles soils with 35% fines or less.
func (c *AASHTO) granular() string {
	switch {
	case c.fines <= 10 && mathx.IsClose(c.plasticityIndex, 0, 0.01):
		return "A-3"
	case c.fines <= 15 && c.plasticityIndex <= 6:
		return "A-1-a"
	case c.fines <= 25 && c.plasticityIndex <= 6:
		return "A-1-b"
	case c.liquidLimit <= 40:
		if c.plasticityIndex <= 10 {
			return "A-2-4"
		}
		return "A-2-6"
	default:
		if c.plasticityIndex <= 10 {
			return "A-2-5"
		}
		return "A-2-7"
	}
}

// siltClay handles soils with more than 35% fines.
func (c *AASHTO) siltClay() string {
	if c.liquidLimit <= 40 {
		if c.plasticityIndex <= 10 {
			return "A-4"
		}
		return "A-6"
	}
	if c.plasticityIndex <= 10 {
		return "A-5"
	}
	// The A-7 split hinges on whether the plasticity index reaches the
	// LL - 30 line.
	if c.plasticityIndex <= c.liquidLimit-30.0 {
		return "A-7-5"
	}
	return "A-7-6"
}
