package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"soilworks/internal/logging"
	"soilworks/internal/spt"
)

var (
	sptDesignMethod string

	sptEnergyRatio      float64
	sptBoreholeDiameter float64
	sptRodLength        float64
	sptHammer           string
	sptSampler          string

	sptOPCMethod string
	sptOPCEOP    float64
	sptDilatancy bool
)

// sptCmd groups the SPT reduction subcommands
var sptCmd = &cobra.Command{
	Use:   "spt",
	Short: "SPT blow count reductions and corrections",
}

var sptDesignCmd = &cobra.Command{
	Use:   "design-n [N-values...]",
	Short: "Reduce uncorrected N-values to a single design value",
	Long: `Reduces the corrected N-values within the foundation influence zone
to one design value. Methods: weighted (default, favors shallow
readings), average, minimum.

Example:
  soilworks spt design-n --method weighted 7 15 18`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSPTDesign,
}

var sptEnergyCmd = &cobra.Command{
	Use:   "energy [recorded-N]",
	Short: "Apply the hammer energy correction to a recorded N-value",
	Long: `Standardizes a recorded field N-value for the driving energy actually
delivered, producing N60 by default.

Example:
  soilworks spt energy 30 --hammer donut_1 --rod-length 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSPTEnergy,
}

var sptOPCCmd = &cobra.Command{
	Use:   "opc [N60]",
	Short: "Apply an overburden pressure correction to N60",
	Long: `Corrects N60 for the effective overburden pressure at the test depth.
Methods: gibbs_holtz, bazaraa_peck, peck, liao_whitman, skempton.

Example:
  soilworks spt opc 22.5 --eop 100 --method gibbs_holtz`,
	Args: cobra.ExactArgs(1),
	RunE: runSPTOPC,
}

var sptDilatancyCmd = &cobra.Command{
	Use:   "dilatancy [N]",
	Short: "Apply the dilatancy correction for dense saturated fine sands",
	Args:  cobra.ExactArgs(1),
	RunE:  runSPTDilatancy,
}

func parseNValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid N-value %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runSPTDesign(cmd *cobra.Command, args []string) error {
	values, err := parseNValues(args)
	if err != nil {
		return err
	}

	var designN float64
	switch sptDesignMethod {
	case "weighted":
		designN, err = spt.WeightedDesignN(values)
	case "average":
		designN, err = spt.AverageDesignN(values)
	case "minimum":
		designN, err = spt.MinimumDesignN(values)
	default:
		return fmt.Errorf("unknown design method %q", sptDesignMethod)
	}
	if err != nil {
		return err
	}

	logging.Get(logging.CategorySPT).Info("design N (%s) = %v from %v", sptDesignMethod, designN, values)
	fmt.Printf("Design N (%s): %.1f\n", sptDesignMethod, designN)
	return nil
}

func runSPTEnergy(cmd *cobra.Command, args []string) error {
	recordedN, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid N-value %q: %w", args[0], err)
	}

	ec := spt.NewEnergyCorrection(recordedN)
	ec.EnergyRatio = sptEnergyRatio
	ec.BoreholeDiameter = sptBoreholeDiameter
	ec.RodLength = sptRodLength
	ec.Hammer = spt.HammerType(sptHammer)
	ec.Sampler = spt.SamplerType(sptSampler)

	corrected, err := ec.CorrectedN()
	if err != nil {
		return err
	}
	fmt.Printf("Corrected N at %.0f%% energy: %.1f\n", sptEnergyRatio*100, corrected)
	return nil
}

func runSPTOPC(cmd *cobra.Command, args []string) error {
	n60, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid N-value %q: %w", args[0], err)
	}

	method := sptOPCMethod
	if method == "" {
		method = cfg.Analysis.OPCMethod
	}
	corr, err := spt.NewOverburdenCorrection(method, n60, sptOPCEOP)
	if err != nil {
		return err
	}

	corrected := corr.CorrectedN()
	fmt.Printf("Correction factor: %.3f\n", corr.CorrectionFactor())
	fmt.Printf("Corrected N (%s): %.1f\n", method, corrected)

	if sptDilatancy {
		fmt.Printf("After dilatancy correction: %.1f\n", spt.DilatancyCorrection(corrected))
	}
	return nil
}

func runSPTDilatancy(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid N-value %q: %w", args[0], err)
	}
	fmt.Printf("Corrected N: %.1f\n", spt.DilatancyCorrection(n))
	return nil
}

func init() {
	sptDesignCmd.Flags().StringVar(&sptDesignMethod, "method", "weighted", "Reduction method: weighted, average, minimum")

	sptEnergyCmd.Flags().Float64Var(&sptEnergyRatio, "energy", 0.6, "Target energy ratio")
	sptEnergyCmd.Flags().Float64Var(&sptBoreholeDiameter, "borehole", 65, "Borehole diameter (mm)")
	sptEnergyCmd.Flags().Float64Var(&sptRodLength, "rod-length", 3, "Rod length (m)")
	sptEnergyCmd.Flags().StringVar(&sptHammer, "hammer", "donut_1", "Hammer type: automatic, donut_1, donut_2, safety, drop, pin")
	sptEnergyCmd.Flags().StringVar(&sptSampler, "sampler", "standard", "Sampler type: standard, non_standard")

	sptOPCCmd.Flags().StringVar(&sptOPCMethod, "method", "", "Correction method (default from config)")
	sptOPCCmd.Flags().Float64Var(&sptOPCEOP, "eop", 0, "Effective overburden pressure (kPa)")
	sptOPCCmd.Flags().BoolVar(&sptDilatancy, "dilatancy", false, "Also apply the dilatancy correction")
	sptOPCCmd.MarkFlagRequired("eop")

	sptCmd.AddCommand(sptDesignCmd)
	sptCmd.AddCommand(sptEnergyCmd)
	sptCmd.AddCommand(sptOPCCmd)
	sptCmd.AddCommand(sptDilatancyCmd)

	rootCmd.AddCommand(sptCmd)
}
