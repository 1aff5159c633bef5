package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectSkills(t *testing.T) {
	tests := []struct {
		name       string
		flagSkills []string
		extracted  []string
		want       []string
	}{
		{
			name:       "flags and extraction combined",
			flagSkills: []string{"Python"},
			extracted:  []string{"Docker", "Kubernetes"},
			want:       []string{"Python", "Docker", "Kubernetes"},
		},
		{
			name:      "extraction only",
			extracted: []string{"Docker"},
			want:      []string{"Docker"},
		},
		{
			name: "nothing found is an empty list, not a missing one",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectSkills(tt.flagSkills, tt.extracted)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
