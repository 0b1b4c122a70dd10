package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"soilworks/internal/bearing"
	"soilworks/internal/foundation"
	"soilworks/internal/logging"
	"soilworks/internal/store"
)

var (
	bearingShape      string
	bearingDepth      float64
	bearingWidth      float64
	bearingLength     float64
	bearingEccentric  float64
	bearingWaterLevel float64
	bearingSave       bool

	ubcMethod        string
	ubcFrictionAngle float64
	ubcCohesion      float64
	ubcUnitWeight    float64
	ubcLoadAngle     float64
	ubcLocalShear    bool

	abcMethod        string
	abcCorrectedN    float64
	abcTolSettlement float64
	abcFndType       string
)

// bearingCmd groups the bearing capacity subcommands
var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Bearing capacity of shallow foundations",
}

var bearingUBCCmd = &cobra.Command{
	Use:   "ubc",
	Short: "Ultimate bearing capacity",
	Long: `Computes the ultimate bearing capacity of a shallow foundation by the
Terzaghi, Hansen or Vesic method.

Example:
  soilworks bearing ubc --method terzaghi --shape square \
    --depth 1 --width 1.5 --phi 25 --cohesion 15 --gamma 18`,
	RunE: runBearingUBC,
}

var bearingABCCmd = &cobra.Command{
	Use:   "abc",
	Short: "Allowable bearing capacity from corrected SPT N-values",
	Long: `Computes the allowable bearing capacity of a shallow foundation for a
tolerable settlement, from corrected SPT blow counts, by the Bowles,
Meyerhof or Terzaghi correlation.

Example:
  soilworks bearing abc --method bowles --n 17 --shape square \
    --depth 1.5 --width 1.2 --tol 20`,
	RunE: runBearingABC,
}

func footingSize() (foundation.Size, error) {
	shape, err := foundation.ParseShape(bearingShape)
	if err != nil {
		return foundation.Size{}, err
	}
	size, err := foundation.NewSize(shape, bearingDepth, bearingWidth, bearingLength)
	if err != nil {
		return foundation.Size{}, err
	}
	if bearingEccentric > 0 {
		size, err = size.WithEccentricity(bearingEccentric)
		if err != nil {
			return foundation.Size{}, err
		}
	}
	if bearingWaterLevel >= 0 {
		size, err = size.WithGroundWaterLevel(bearingWaterLevel)
		if err != nil {
			return foundation.Size{}, err
		}
	}
	return size, nil
}

func runBearingUBC(cmd *cobra.Command, args []string) error {
	timer := logging.StartTimer(logging.CategoryBearing, "ubc")
	defer timer.Stop()

	size, err := footingSize()
	if err != nil {
		return err
	}
	props := bearing.SoilProperties{
		FrictionAngle:   ubcFrictionAngle,
		Cohesion:        ubcCohesion,
		MoistUnitWeight: ubcUnitWeight,
	}

	var capacity float64
	switch ubcMethod {
	case "terzaghi":
		calc, err := bearing.NewTerzaghiUBC(props, size, ubcLocalShear)
		if err != nil {
			return err
		}
		capacity = calc.BearingCapacity()
	case "hansen":
		calc, err := bearing.NewHansenUBC(props, size, ubcLoadAngle, ubcLocalShear)
		if err != nil {
			return err
		}
		capacity = calc.BearingCapacity()
	case "vesic":
		calc, err := bearing.NewVesicUBC(props, size, ubcLoadAngle, ubcLocalShear)
		if err != nil {
			return err
		}
		capacity = calc.BearingCapacity()
	default:
		return fmt.Errorf("unknown ubc method %q", ubcMethod)
	}

	logger.Debug("ultimate bearing capacity",
		zap.String("method", ubcMethod),
		zap.Float64("capacity", capacity))
	fmt.Printf("Ultimate bearing capacity (%s): %.2f kPa\n", ubcMethod, capacity)

	if bearingSave {
		return saveBearingRun("ubc", ubcMethod, capacity,
			fmt.Sprintf("shape=%s D=%.2f B=%.2f phi=%.1f c=%.1f gamma=%.1f",
				bearingShape, bearingDepth, bearingWidth,
				ubcFrictionAngle, ubcCohesion, ubcUnitWeight))
	}
	return nil
}

func runBearingABC(cmd *cobra.Command, args []string) error {
	timer := logging.StartTimer(logging.CategoryBearing, "abc")
	defer timer.Stop()

	size, err := footingSize()
	if err != nil {
		return err
	}

	method := abcMethod
	if method == "" {
		method = cfg.Analysis.ABCMethod
	}
	tol := abcTolSettlement
	if tol == 0 {
		tol = cfg.Analysis.TolSettlement
	}

	calc, err := bearing.NewAllowable(method, abcCorrectedN, tol,
		bearing.FoundationType(abcFndType), size)
	if err != nil {
		return err
	}
	capacity := calc.BearingCapacity()

	logger.Debug("allowable bearing capacity",
		zap.String("method", method),
		zap.Float64("capacity", capacity))
	fmt.Printf("Allowable bearing capacity (%s): %.2f kPa\n", method, capacity)

	if bearingSave {
		return saveBearingRun("abc", method, capacity,
			fmt.Sprintf("shape=%s D=%.2f B=%.2f N=%.1f tol=%.1f type=%s",
				bearingShape, bearingDepth, bearingWidth,
				abcCorrectedN, tol, abcFndType))
	}
	return nil
}

func saveBearingRun(kind, method string, capacity float64, inputs string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	id, err := s.SaveBearingRun(store.BearingRecord{
		Kind:     kind,
		Method:   method,
		Inputs:   inputs,
		Capacity: capacity,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Archived as %s\n", id)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{bearingUBCCmd, bearingABCCmd} {
		c.Flags().StringVar(&bearingShape, "shape", "square", "Footing shape: strip, square, rectangle, circle")
		c.Flags().Float64Var(&bearingDepth, "depth", 0, "Founding depth (m)")
		c.Flags().Float64Var(&bearingWidth, "width", 0, "Footing width (m)")
		c.Flags().Float64Var(&bearingLength, "length", 0, "Footing length (m, rectangles only)")
		c.Flags().Float64Var(&bearingEccentric, "eccentricity", 0, "Load eccentricity (m)")
		c.Flags().Float64Var(&bearingWaterLevel, "water-level", -1, "Water table depth (m, negative for none)")
		c.Flags().BoolVar(&bearingSave, "save", false, "Archive the result")
		c.MarkFlagRequired("depth")
		c.MarkFlagRequired("width")
	}

	bearingUBCCmd.Flags().StringVar(&ubcMethod, "method", "terzaghi", "Method: terzaghi, hansen, vesic")
	bearingUBCCmd.Flags().Float64Var(&ubcFrictionAngle, "phi", 0, "Internal friction angle (degrees)")
	bearingUBCCmd.Flags().Float64Var(&ubcCohesion, "cohesion", 0, "Cohesion (kPa)")
	bearingUBCCmd.Flags().Float64Var(&ubcUnitWeight, "gamma", 0, "Moist unit weight (kN/m^3)")
	bearingUBCCmd.Flags().Float64Var(&ubcLoadAngle, "load-angle", 0, "Load inclination from vertical (degrees)")
	bearingUBCCmd.Flags().BoolVar(&ubcLocalShear, "local-shear", false, "Assume local shear failure")
	bearingUBCCmd.MarkFlagRequired("gamma")

	bearingABCCmd.Flags().StringVar(&abcMethod, "method", "", "Method: bowles, meyerhof, terzaghi (default from config)")
	bearingABCCmd.Flags().Float64Var(&abcCorrectedN, "n", 0, "Corrected SPT N-value")
	bearingABCCmd.Flags().Float64Var(&abcTolSettlement, "tol", 0, "Tolerable settlement (mm, default from config)")
	bearingABCCmd.Flags().StringVar(&abcFndType, "type", "pad", "Foundation type: pad, mat")
	bearingABCCmd.MarkFlagRequired("n")

	bearingCmd.AddCommand(bearingUBCCmd)
	bearingCmd.AddCommand(bearingABCCmd)

	rootCmd.AddCommand(bearingCmd)
}
