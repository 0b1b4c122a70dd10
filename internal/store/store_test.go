package store

import (
	"path/filepath"
	"testing"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if s.db == nil {
		t.Error("Database connection is nil")
	}
}

func TestSaveAndGetClassification(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	rec := ClassificationRecord{
		SampleName:   "BH-01/clayey fill",
		LiquidLimit:  37.7,
		PlasticLimit: 23.8,
		Fines:        47.44,
		Sand:         49.06,
		Gravel:       3.5,
		AASHTO:       "A-6(4)",
		USCS:         "SC",
	}
	id, err := s.SaveClassification(rec)
	if err != nil {
		t.Fatalf("Failed to save classification: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a non-empty id")
	}

	got, err := s.GetClassification(id)
	if err != nil {
		t.Fatalf("Failed to load classification: %v", err)
	}
	if got.SampleName != rec.SampleName {
		t.Errorf("SampleName = %q, want %q", got.SampleName, rec.SampleName)
	}
	if got.AASHTO != "A-6(4)" || got.USCS != "SC" {
		t.Errorf("Symbols = %q/%q, want A-6(4)/SC", got.AASHTO, got.USCS)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestGetClassificationMissing(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := s.GetClassification("no-such-id"); err == nil {
		t.Error("Expected an error for a missing record")
	}
}

func TestListClassifications(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if _, err := s.SaveClassification(ClassificationRecord{
			SampleName: "sample",
			AASHTO:     "A-4(0)",
			USCS:       "ML",
		}); err != nil {
			t.Fatalf("Failed to save classification: %v", err)
		}
	}

	recs, err := s.ListClassifications(2)
	if err != nil {
		t.Fatalf("Failed to list classifications: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("Got %d records, want 2", len(recs))
	}
}

func TestSaveAndListBearingRuns(t *testing.T) {
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	id, err := s.SaveBearingRun(BearingRecord{
		Kind:     "abc",
		Method:   "bowles",
		Inputs:   "shape=square D=1.50 B=1.20 N=17.0 tol=20.3 type=pad",
		Capacity: 346.57,
	})
	if err != nil {
		t.Fatalf("Failed to save bearing run: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a non-empty id")
	}

	recs, err := s.ListBearingRuns(0)
	if err != nil {
		t.Fatalf("Failed to list bearing runs: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Got %d records, want 1", len(recs))
	}
	if recs[0].Method != "bowles" || recs[0].Capacity != 346.57 {
		t.Errorf("Record = %+v", recs[0])
	}
}

func TestStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive", "test.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("Failed to create store at %s: %v", path, err)
	}
	if _, err := s.SaveClassification(ClassificationRecord{SampleName: "s", AASHTO: "A-3(0)", USCS: "SP"}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	// Reopen and confirm the record survived.
	s, err = NewStore(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer s.Close()

	recs, err := s.ListClassifications(0)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("Got %d records after reopen, want 1", len(recs))
	}
}
