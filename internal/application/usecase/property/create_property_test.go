package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12 Maple Street", "12-maple-street"},
		{"  Penthouse @ Riverside!  ", "penthouse-riverside"},
		{"Já Vendido", "j-vendido"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}
