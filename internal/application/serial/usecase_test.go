package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"vacío", "", nil},
		{"solo espacios", "   \n  \n", nil},
		{"una línea", "SN-001", []string{"SN-001"}},
		{"varias líneas", "SN-001\nSN-002\nSN-003", []string{"SN-001", "SN-002", "SN-003"}},
		{"líneas en blanco intercaladas", "SN-001\n\n\nSN-002", []string{"SN-001", "SN-002"}},
		{"espacios alrededor", "  SN-001  \n\tSN-002\t", []string{"SN-001", "SN-002"}},
		{"duplicados se conservan", "SN-001\nSN-001", []string{"SN-001", "SN-001"}},
		{"fin de línea final", "SN-001\n", []string{"SN-001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLines(tc.in))
		})
	}
}
