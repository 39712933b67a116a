package userController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeParentingStyle(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
	}{
		{"empty", nil, ""},
		{"single", []string{"authoritative"}, "authoritative"},
		{"majority wins", []string{"permissive", "authoritative", "authoritative"}, "authoritative"},
		{"tie keeps first seen", []string{"permissive", "authoritative"}, "permissive"},
		{"blank answers skipped", []string{"", "", "uninvolved"}, "uninvolved"},
		{"all blank", []string{"", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeParentingStyle(tt.answers))
		})
	}
}
