package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"soilworks/internal/classify"
	"soilworks/internal/logging"
	"soilworks/internal/soil"
	"soilworks/internal/store"
)

var (
	classifyName         string
	classifyLiquidLimit  float64
	classifyPlasticLimit float64
	classifyFines        float64
	classifySand         float64
	classifyGravel       float64
	classifyOrganic      bool
	classifyD10          float64
	classifyD30          float64
	classifyD60          float64
	classifySave         bool
)

// classifyCmd classifies a soil sample by both systems
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a soil sample by the AASHTO and USCS systems",
	Long: `Classifies a soil sample from its Atterberg limits and particle size
distribution. Both the AASHTO classification (with group index) and the
USCS symbol are reported.

Example:
  soilworks classify --ll 37.7 --pl 23.8 --fines 47.44 --sand 49.06 --gravel 3.5`,
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	timer := logging.StartTimer(logging.CategoryClassify, "classify")
	defer timer.Stop()

	limits, err := soil.NewAtterbergLimits(classifyLiquidLimit, classifyPlasticLimit)
	if err != nil {
		return err
	}
	psd, err := soil.NewPSD(classifyFines, classifySand, classifyGravel)
	if err != nil {
		return err
	}
	if classifyD10 > 0 && classifyD30 > 0 && classifyD60 > 0 {
		psd.Sizes = &soil.SizeDistribution{D10: classifyD10, D30: classifyD30, D60: classifyD60}
	}

	aashto, err := classify.NewAASHTO(classifyLiquidLimit, limits.PlasticityIndex(), classifyFines)
	if err != nil {
		return err
	}
	aashtoClass := aashto.Classify()

	sample := soil.Sample{
		Name:    classifyName,
		Limits:  limits,
		PSD:     psd,
		Organic: classifyOrganic,
	}
	uscsClass, err := classify.ClassifySample(sample)
	if err != nil {
		return err
	}

	logger.Debug("classified sample",
		zap.String("name", classifyName),
		zap.String("aashto", aashtoClass.Symbol),
		zap.String("uscs", uscsClass.Symbol))

	if classifyName != "" {
		fmt.Printf("Sample: %s\n", classifyName)
	}
	fmt.Printf("Plasticity index: %.1f\n", limits.PlasticityIndex())
	fmt.Printf("AASHTO: %s (%s)\n", aashtoClass.Symbol, aashtoClass.Description)
	fmt.Printf("USCS:   %s (%s)\n", uscsClass.Symbol, uscsClass.Description)

	if classifySave {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		id, err := s.SaveClassification(store.ClassificationRecord{
			SampleName:   classifyName,
			LiquidLimit:  classifyLiquidLimit,
			PlasticLimit: classifyPlasticLimit,
			Fines:        classifyFines,
			Sand:         classifySand,
			Gravel:       classifyGravel,
			AASHTO:       aashtoClass.Symbol,
			USCS:         uscsClass.Symbol,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Archived as %s\n", id)
	}
	return nil
}

func init() {
	classifyCmd.Flags().StringVar(&classifyName, "name", "", "Sample name")
	classifyCmd.Flags().Float64Var(&classifyLiquidLimit, "ll", 0, "Liquid limit (%)")
	classifyCmd.Flags().Float64Var(&classifyPlasticLimit, "pl", 0, "Plastic limit (%)")
	classifyCmd.Flags().Float64Var(&classifyFines, "fines", 0, "Fines fraction (%)")
	classifyCmd.Flags().Float64Var(&classifySand, "sand", 0, "Sand fraction (%)")
	classifyCmd.Flags().Float64Var(&classifyGravel, "gravel", 0, "Gravel fraction (%)")
	classifyCmd.Flags().BoolVar(&classifyOrganic, "organic", false, "Sample contains organic material")
	classifyCmd.Flags().Float64Var(&classifyD10, "d10", 0, "D10 diameter (mm)")
	classifyCmd.Flags().Float64Var(&classifyD30, "d30", 0, "D30 diameter (mm)")
	classifyCmd.Flags().Float64Var(&classifyD60, "d60", 0, "D60 diameter (mm)")
	classifyCmd.Flags().BoolVar(&classifySave, "save", false, "Archive the result")
	classifyCmd.MarkFlagRequired("ll")
	classifyCmd.MarkFlagRequired("pl")
	classifyCmd.MarkFlagRequired("fines")
	classifyCmd.MarkFlagRequired("sand")
	classifyCmd.MarkFlagRequired("gravel")

	rootCmd.AddCommand(classifyCmd)
}
