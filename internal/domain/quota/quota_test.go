package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesForSeconds(t *testing.T) {
	cases := []struct {
		name    string
		seconds int
		want    int
	}{
		{"zero", 0, 0},
		{"negative clamps to zero", -15, 0},
		{"one second rounds to zero", 1, 0},
		{"29 seconds rounds down", 29, 0},
		{"30 seconds rounds up", 30, 1},
		{"exactly one minute", 60, 1},
		{"89 seconds rounds down", 89, 1},
		{"90 seconds rounds up", 90, 2},
		{"typical listing tour", 154, 3},
		{"long video", 3600, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MinutesForSeconds(tc.seconds))
		})
	}
}
