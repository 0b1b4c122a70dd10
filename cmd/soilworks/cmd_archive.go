package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveLimit int

// archiveCmd inspects the analysis archive
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the analysis archive",
}

var archiveClassificationsCmd = &cobra.Command{
	Use:   "classifications",
	Short: "List archived classification runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ListClassifications(archiveLimit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No archived classifications.")
			return nil
		}
		for _, r := range recs {
			fmt.Printf("%s  %s  %-20s AASHTO=%s USCS=%s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"),
				r.SampleName, r.AASHTO, r.USCS)
		}
		return nil
	},
}

var archiveBearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "List archived bearing capacity runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.ListBearingRuns(archiveLimit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No archived bearing runs.")
			return nil
		}
		for _, r := range recs {
			fmt.Printf("%s  %s  %s/%-9s %8.2f kPa  %s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"),
				r.Kind, r.Method, r.Capacity, r.Inputs)
		}
		return nil
	},
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one archived classification run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.GetClassification(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ID:            %s\n", rec.ID)
		fmt.Printf("Created:       %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Sample:        %s\n", rec.SampleName)
		fmt.Printf("Liquid limit:  %.1f\n", rec.LiquidLimit)
		fmt.Printf("Plastic limit: %.1f\n", rec.PlasticLimit)
		fmt.Printf("Fines/Sand/Gravel: %.1f / %.1f / %.1f\n", rec.Fines, rec.Sand, rec.Gravel)
		fmt.Printf("AASHTO:        %s\n", rec.AASHTO)
		fmt.Printf("USCS:          %s\n", rec.USCS)
		return nil
	},
}

func init() {
	archiveCmd.PersistentFlags().IntVar(&archiveLimit, "limit", 50, "Maximum records to list")
	archiveCmd.AddCommand(archiveClassificationsCmd)
	archiveCmd.AddCommand(archiveBearingCmd)
	archiveCmd.AddCommand(archiveShowCmd)

	rootCmd.AddCommand(archiveCmd)
}
