// Package profile loads borehole logs from YAML and runs the soil
// classification and SPT reductions over every layer.
package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"soilworks/internal/classify"
	"soilworks/internal/soil"
	"soilworks/internal/spt"
)

// ErrInvalidProfile is returned for malformed or non-contiguous borehole
// logs.
var ErrInvalidProfile = errors.New("profile: invalid borehole log")

// Layer is one stratum of a borehole log.
type Layer struct {
	Name         string    `yaml:"name"`
	TopDepth     float64   `yaml:"top_depth"`
	BottomDepth  float64   `yaml:"bottom_depth"`
	LiquidLimit  float64   `yaml:"liquid_limit"`
	PlasticLimit float64   `yaml:"plastic_limit"`
	Fines        float64   `yaml:"fines"`
	Sand         float64   `yaml:"sand"`
	Gravel       float64   `yaml:"gravel"`
	Organic      bool      `yaml:"organic,omitempty"`
	SPTNumbers   []float64 `yaml:"spt_numbers,omitempty"`
}

// Sample converts the layer to a classification sample.
func (l Layer) Sample() (soil.Sample, error) {
	limits, err := soil.NewAtterbergLimits(l.LiquidLimit, l.PlasticLimit)
	if err != nil {
		return soil.Sample{}, fmt.Errorf("layer %q: %w", l.Name, err)
	}
	psd, err := soil.NewPSD(l.Fines, l.Sand, l.Gravel)
	if err != nil {
		return soil.Sample{}, fmt.Errorf("layer %q: %w", l.Name, err)
	}
	return soil.Sample{
		Name:    l.Name,
		Limits:  limits,
		PSD:     psd,
		Organic: l.Organic,
	}, nil
}

// Borehole is a complete borehole log.
type Borehole struct {
	Name       string   `yaml:"name"`
	Location   string   `yaml:"location,omitempty"`
	Layers     []Layer  `yaml:"layers"`
	WaterLevel *float64 `yaml:"water_level,omitempty"`
}

// Validate checks the log is non-empty and its layers are contiguous
// from the ground surface down.
func (b Borehole) Validate() error {
	if len(b.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidProfile)
	}
	prev := 0.0
	for i, l := range b.Layers {
		if l.TopDepth != prev {
			return fmt.Errorf("%w: layer %d (%q) starts at %v, want %v",
				ErrInvalidProfile, i, l.Name, l.TopDepth, prev)
		}
		if l.BottomDepth <= l.TopDepth {
			return fmt.Errorf("%w: layer %d (%q) bottom %v not below top %v",
				ErrInvalidProfile, i, l.Name, l.BottomDepth, l.TopDepth)
		}
		prev = l.BottomDepth
	}
	return nil
}

// Load reads and validates a borehole log from a YAML file.
func Load(path string) (Borehole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Borehole{}, fmt.Errorf("profile: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a borehole log from YAML.
func Parse(data []byte) (Borehole, error) {
	var b Borehole
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Borehole{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := b.Validate(); err != nil {
		return Borehole{}, err
	}
	return b, nil
}

// Save writes the borehole log as YAML.
func (b Borehole) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("profile: encoding %s: %w", b.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: writing %s: %w", path, err)
	}
	return nil
}

// LayerReport is the classification result for one stratum.
type LayerReport struct {
	Layer   Layer
	AASHTO  classify.Classification
	USCS    classify.Classification
	DesignN float64
}

// ClassifyAll classifies every layer of the borehole and reduces its SPT
// blow counts to a weighted design value when readings are present.
func ClassifyAll(b Borehole) ([]LayerReport, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	reports := make([]LayerReport, 0, len(b.Layers))
	for _, l := range b.Layers {
		sample, err := l.Sample()
		if err != nil {
			return nil, err
		}

		aashto, err := classify.NewAASHTO(l.LiquidLimit, sample.Limits.PlasticityIndex(), l.Fines)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		aashtoClass := aashto.Classify()

		uscsClass, err := classify.ClassifySample(sample)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}

		report := LayerReport{Layer: l, AASHTO: aashtoClass, USCS: uscsClass}
		if len(l.SPTNumbers) > 0 {
			designN, err := spt.WeightedDesignN(l.SPTNumbers)
			if err != nil {
				return nil, fmt.Errorf("layer %q: %w", l.Name, err)
			}
			report.DesignN = designN
		}
		reports = append(reports, report)
	}
	return reports, nil
}
