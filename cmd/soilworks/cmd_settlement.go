package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soilworks/internal/settlement"
)

var (
	setThickness float64
	setVoidRatio float64
	setCc        float64
	setLL        float64
	setStress    float64
	setIncrement float64
)

// settlementCmd computes primary consolidation settlement
var settlementCmd = &cobra.Command{
	Use:   "settlement",
	Short: "Primary consolidation settlement of a clay layer",
	Long: `Computes the one-dimensional primary consolidation settlement of a
clay layer. The compression index is taken from --cc when given,
otherwise estimated from the liquid limit.

Example:
  soilworks settlement --thickness 2 --void-ratio 0.8 \
    --cc 0.25 --stress 100 --increment 50`,
	RunE: runSettlement,
}

func runSettlement(cmd *cobra.Command, args []string) error {
	layer := settlement.ConsolidationLayer{
		Thickness:        setThickness,
		VoidRatio:        setVoidRatio,
		CompressionIndex: setCc,
		LiquidLimit:      setLL,
		EffectiveStress:  setStress,
		StressIncrement:  setIncrement,
	}
	s, err := settlement.PrimaryConsolidation(layer)
	if err != nil {
		return err
	}
	fmt.Printf("Primary consolidation settlement: %.4f m (%.1f mm)\n", s, s*1000)
	return nil
}

func init() {
	settlementCmd.Flags().Float64Var(&setThickness, "thickness", 0, "Layer thickness (m)")
	settlementCmd.Flags().Float64Var(&setVoidRatio, "void-ratio", 0, "Initial void ratio")
	settlementCmd.Flags().Float64Var(&setCc, "cc", 0, "Compression index (0 to estimate from --ll)")
	settlementCmd.Flags().Float64Var(&setLL, "ll", 0, "Liquid limit (%)")
	settlementCmd.Flags().Float64Var(&setStress, "stress", 0, "Initial effective stress at midpoint (kPa)")
	settlementCmd.Flags().Float64Var(&setIncrement, "increment", 0, "Applied stress increment (kPa)")
	settlementCmd.MarkFlagRequired("thickness")
	settlementCmd.MarkFlagRequired("void-ratio")
	settlementCmd.MarkFlagRequired("stress")
	settlementCmd.MarkFlagRequired("increment")

	rootCmd.AddCommand(settlementCmd)
}
