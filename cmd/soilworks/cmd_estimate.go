package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soilworks/internal/estimate"
)

var (
	estN60         float64
	estEOP         float64
	estAtmPressure float64
	estLiquidLimit float64
	estVoidRatio   float64
	estPI          float64
	estStroudK     float64
	estPhiMethod   string
	estCcMethod    string
	estCuMethod    string

	estPressure   float64
	estUnitWeight float64
	estPhi        float64
)

// estimateCmd groups the empirical parameter correlations
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate soil parameters from empirical correlations",
}

var estUnitWeightsCmd = &cobra.Command{
	Use:   "unit-weights",
	Short: "Estimate unit weights from N60",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := estimate.UnitWeightsFromSPT(estN60)
		if err != nil {
			return err
		}
		fmt.Printf("Moist:     %.2f kN/m^3\n", w.Moist)
		fmt.Printf("Saturated: %.2f kN/m^3\n", w.Saturated)
		fmt.Printf("Submerged: %.2f kN/m^3\n", w.Submerged)
		return nil
	},
}

var estCompressionCmd = &cobra.Command{
	Use:   "compression-index",
	Short: "Estimate the compression index Cc",
	Long: `Estimates Cc by the Skempton or Terzaghi correlation from the liquid
limit, or by the Hough correlation from the void ratio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cc float64
		switch estCcMethod {
		case "skempton":
			cc = estimate.CompressionIndexSkempton(estLiquidLimit)
		case "terzaghi":
			cc = estimate.CompressionIndexTerzaghi(estLiquidLimit)
		case "hough":
			cc = estimate.CompressionIndexHough(estVoidRatio)
		default:
			return fmt.Errorf("unknown compression index method %q", estCcMethod)
		}
		fmt.Printf("Compression index (%s): %.3f\n", estCcMethod, cc)
		return nil
	},
}

var estFrictionCmd = &cobra.Command{
	Use:   "friction-angle",
	Short: "Estimate the internal friction angle from N60",
	RunE: func(cmd *cobra.Command, args []string) error {
		var phi float64
		var err error
		switch estPhiMethod {
		case "wolff":
			phi = estimate.FrictionAngleWolff(estN60)
		case "kulhawy_mayne":
			phi, err = estimate.FrictionAngleKulhawyMayne(estN60, estEOP, estAtmPressure)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown friction angle method %q", estPhiMethod)
		}
		fmt.Printf("Friction angle (%s): %.3f degrees\n", estPhiMethod, phi)
		return nil
	},
}

var estUndrainedCmd = &cobra.Command{
	Use:   "undrained-strength",
	Short: "Estimate the undrained shear strength",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cu float64
		var err error
		switch estCuMethod {
		case "stroud":
			cu, err = estimate.UndrainedStrengthStroud(estN60, estStroudK)
			if err != nil {
				return err
			}
		case "skempton":
			cu = estimate.UndrainedStrengthSkempton(estEOP, estPI)
		default:
			return fmt.Errorf("unknown undrained strength method %q", estCuMethod)
		}
		fmt.Printf("Undrained strength (%s): %.2f kPa\n", estCuMethod, cu)
		return nil
	},
}

var estModulusCmd = &cobra.Command{
	Use:   "elastic-modulus",
	Short: "Estimate the soil elastic modulus from N60",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Elastic modulus: %.2f kPa\n", estimate.ElasticModulusBowles(estN60))
		return nil
	},
}

var estDepthCmd = &cobra.Command{
	Use:   "foundation-depth",
	Short: "Estimate the Rankine minimum foundation depth",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := estimate.FoundationDepthRankine(estPressure, estUnitWeight, estPhi)
		if err != nil {
			return err
		}
		fmt.Printf("Minimum foundation depth: %.1f m\n", d)
		return nil
	},
}

func init() {
	estUnitWeightsCmd.Flags().Float64Var(&estN60, "n60", 0, "Corrected N60 blow count")
	estUnitWeightsCmd.MarkFlagRequired("n60")

	estCompressionCmd.Flags().StringVar(&estCcMethod, "method", "skempton", "Method: skempton, terzaghi, hough")
	estCompressionCmd.Flags().Float64Var(&estLiquidLimit, "ll", 0, "Liquid limit (%)")
	estCompressionCmd.Flags().Float64Var(&estVoidRatio, "void-ratio", 0, "In-situ void ratio")

	estFrictionCmd.Flags().StringVar(&estPhiMethod, "method", "wolff", "Method: wolff, kulhawy_mayne")
	estFrictionCmd.Flags().Float64Var(&estN60, "n60", 0, "Corrected N60 blow count")
	estFrictionCmd.Flags().Float64Var(&estEOP, "eop", 0, "Effective overburden pressure (kPa)")
	estFrictionCmd.Flags().Float64Var(&estAtmPressure, "atm", 101.325, "Atmospheric pressure (kPa)")
	estFrictionCmd.MarkFlagRequired("n60")

	estUndrainedCmd.Flags().StringVar(&estCuMethod, "method", "stroud", "Method: stroud, skempton")
	estUndrainedCmd.Flags().Float64Var(&estN60, "n60", 0, "Corrected N60 blow count")
	estUndrainedCmd.Flags().Float64Var(&estStroudK, "k", 3.5, "Stroud k factor [3.5, 6.5]")
	estUndrainedCmd.Flags().Float64Var(&estEOP, "eop", 0, "Effective overburden pressure (kPa)")
	estUndrainedCmd.Flags().Float64Var(&estPI, "pi", 0, "Plasticity index (%)")

	estModulusCmd.Flags().Float64Var(&estN60, "n60", 0, "Corrected N60 blow count")
	estModulusCmd.MarkFlagRequired("n60")

	estDepthCmd.Flags().Float64Var(&estPressure, "qa", 0, "Allowable bearing pressure (kPa)")
	estDepthCmd.Flags().Float64Var(&estUnitWeight, "gamma", 0, "Unit weight (kN/m^3)")
	estDepthCmd.Flags().Float64Var(&estPhi, "phi", 0, "Internal friction angle (degrees)")
	estDepthCmd.MarkFlagRequired("qa")
	estDepthCmd.MarkFlagRequired("gamma")
	estDepthCmd.MarkFlagRequired("phi")

	estimateCmd.AddCommand(estUnitWeightsCmd)
	estimateCmd.AddCommand(estCompressionCmd)
	estimateCmd.AddCommand(estFrictionCmd)
	estimateCmd.AddCommand(estUndrainedCmd)
	estimateCmd.AddCommand(estModulusCmd)
	estimateCmd.AddCommand(estDepthCmd)

	rootCmd.AddCommand(estimateCmd)
}
