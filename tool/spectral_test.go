package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSpectralIndex(t *testing.T) {
	var testCases = []struct {
		description string
		input       SpectralInput
		expect      float64
		expectError string
	}{
		{
			description: "ndvi",
			input:       SpectralInput{Index: "ndvi", Bands: map[string]float64{"nir": 0.6, "red": 0.2}},
			expect:      0.5,
		},
		{
			description: "index name is case insensitive",
			input:       SpectralInput{Index: "NDVI", Bands: map[string]float64{"nir": 0.6, "red": 0.2}},
			expect:      0.5,
		},
		{
			description: "ndwi",
			input:       SpectralInput{Index: "ndwi", Bands: map[string]float64{"green": 0.3, "nir": 0.1}},
			expect:      0.5,
		},
		{
			description: "evi",
			input:       SpectralInput{Index: "evi", Bands: map[string]float64{"nir": 0.5, "red": 0.2, "blue": 0.1}},
			expect:      2.5 * (0.5 - 0.2) / (0.5 + 6*0.2 - 7.5*0.1 + 1),
		},
		{
			description: "unknown index",
			input:       SpectralInput{Index: "savi", Bands: map[string]float64{"nir": 0.5, "red": 0.2}},
			expectError: `unknown index "savi"`,
		},
		{
			description: "missing band",
			input:       SpectralInput{Index: "ndvi", Bands: map[string]float64{"nir": 0.6}},
			expectError: `missing band "red"`,
		},
		{
			description: "degenerate denominator",
			input:       SpectralInput{Index: "ndvi", Bands: map[string]float64{"nir": 0.2, "red": -0.2}},
			expectError: "degenerate band values",
		},
	}
	for _, testCase := range testCases {
		actual, err := CalculateSpectralIndex(context.Background(), &testCase.input)
		if testCase.expectError != "" {
			if assert.Error(t, err, testCase.description) {
				assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
			}
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		result, ok := actual.(*SpectralResult)
		if assert.True(t, ok, testCase.description) {
			assert.InDelta(t, testCase.expect, result.Value, 1e-9, testCase.description)
		}
	}
}
