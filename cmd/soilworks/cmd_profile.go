package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soilworks/internal/logging"
	"soilworks/internal/profile"
	"soilworks/internal/store"
)

var profileSave bool

// profileCmd processes borehole logs
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Borehole log processing",
}

var profileClassifyCmd = &cobra.Command{
	Use:   "classify [borehole.yaml]",
	Short: "Classify every layer of a borehole log",
	Long: `Loads a borehole log from YAML, classifies every layer by the AASHTO
and USCS systems, and reduces each layer's SPT readings to a weighted
design value.

Example:
  soilworks profile classify bh-01.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileClassify,
}

func runProfileClassify(cmd *cobra.Command, args []string) error {
	timer := logging.StartTimer(logging.CategoryProfile, "classify")
	defer timer.Stop()

	borehole, err := profile.Load(args[0])
	if err != nil {
		return err
	}

	reports, err := profile.ClassifyAll(borehole)
	if err != nil {
		return err
	}

	fmt.Printf("Borehole: %s", borehole.Name)
	if borehole.Location != "" {
		fmt.Printf(" (%s)", borehole.Location)
	}
	fmt.Println()
	if borehole.WaterLevel != nil {
		fmt.Printf("Water level: %.2f m\n", *borehole.WaterLevel)
	}

	fmt.Printf("%-20s %-14s %-10s %-12s %s\n", "Layer", "Depth (m)", "AASHTO", "USCS", "Design N")
	for _, r := range reports {
		designN := "-"
		if len(r.Layer.SPTNumbers) > 0 {
			designN = fmt.Sprintf("%.1f", r.DesignN)
		}
		fmt.Printf("%-20s %5.2f - %5.2f  %-10s %-12s %s\n",
			r.Layer.Name, r.Layer.TopDepth, r.Layer.BottomDepth,
			r.AASHTO.Symbol, r.USCS.Symbol, designN)
	}

	if profileSave {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		for _, r := range reports {
			sample, err := r.Layer.Sample()
			if err != nil {
				return err
			}
			if _, err := s.SaveClassification(store.ClassificationRecord{
				SampleName:   fmt.Sprintf("%s/%s", borehole.Name, r.Layer.Name),
				LiquidLimit:  r.Layer.LiquidLimit,
				PlasticLimit: sample.Limits.PlasticLimit,
				Fines:        r.Layer.Fines,
				Sand:         r.Layer.Sand,
				Gravel:       r.Layer.Gravel,
				AASHTO:       r.AASHTO.Symbol,
				USCS:         r.USCS.Symbol,
			}); err != nil {
				return err
			}
		}
		fmt.Printf("Archived %d layer classifications\n", len(reports))
	}
	return nil
}

func init() {
	profileClassifyCmd.Flags().BoolVar(&profileSave, "save", false, "Archive each layer's classification")
	profileCmd.AddCommand(profileClassifyCmd)

	rootCmd.AddCommand(profileCmd)
}
