package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		vectors  [][]float32
		expected []float32
	}{
		{
			name:     "single vector is its own mean",
			vectors:  [][]float32{{1, 2, 3}},
			expected: []float32{1, 2, 3},
		},
		{
			name:     "element-wise mean",
			vectors:  [][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			expected: []float32{1.0 / 3, 1.0 / 3, 1.0 / 3},
		},
		{
			name:     "empty input",
			vectors:  nil,
			expected: nil,
		},
		{
			name:     "dimension mismatch",
			vectors:  [][]float32{{1, 2}, {1, 2, 3}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.vectors)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-6)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "identical vectors", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expected: 1},
		{name: "orthogonal vectors", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "opposite vectors", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 0}, expected: 0},
		{name: "dimension mismatch", a: []float32{1, 0}, b: []float32{1, 0, 0}, expected: 0},
		{name: "empty vectors", a: nil, b: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.7, 0.2}
	scaled := []float32{0.6, 1.4, 0.4}
	assert.InDelta(t, 1.0, CosineSimilarity(a, scaled), 1e-6)
}
