package tool

import (
	"context"
	"fmt"
	"strings"
)

// SpectralInput selects an index and supplies per-band mean reflectance.
type SpectralInput struct {
	Index string             `json:"index"`
	Bands map[string]float64 `json:"bands"`
}

// SpectralResult is the computed index value.
type SpectralResult struct {
	Index string  `json:"index"`
	Value float64 `json:"value"`
}

// CalculateSpectralIndex computes a normalized-difference style index over
// band means. The real per-pixel computations live in the imagery backend;
// this tool only covers scene-level summaries.
func CalculateSpectralIndex(ctx context.Context, input *SpectralInput) (interface{}, error) {
	band := func(name string) (float64, error) {
		value, ok := input.Bands[name]
		if !ok {
			return 0, fmt.Errorf("missing band %q", name)
		}
		return value, nil
	}
	var value float64
	switch strings.ToLower(input.Index) {
	case "ndvi":
		nir, err := band("nir")
		if err != nil {
			return nil, err
		}
		red, err := band("red")
		if err != nil {
			return nil, err
		}
		value, err = normalizedDifference(nir, red)
		if err != nil {
			return nil, err
		}
	case "ndwi":
		green, err := band("green")
		if err != nil {
			return nil, err
		}
		nir, err := band("nir")
		if err != nil {
			return nil, err
		}
		value, err = normalizedDifference(green, nir)
		if err != nil {
			return nil, err
		}
	case "evi":
		nir, err := band("nir")
		if err != nil {
			return nil, err
		}
		red, err := band("red")
		if err != nil {
			return nil, err
		}
		blue, err := band("blue")
		if err != nil {
			return nil, err
		}
		denominator := nir + 6*red - 7.5*blue + 1
		if denominator == 0 {
			return nil, fmt.Errorf("degenerate band values for evi")
		}
		value = 2.5 * (nir - red) / denominator
	default:
		return nil, fmt.Errorf("unknown index %q", input.Index)
	}
	return &SpectralResult{Index: strings.ToLower(input.Index), Value: value}, nil
}

func normalizedDifference(a, b float64) (float64, error) {
	if a+b == 0 {
		return 0, fmt.Errorf("degenerate band values")
	}
	return (a - b) / (a + b), nil
}
