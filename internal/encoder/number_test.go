package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_Zero(t *testing.T) {
	assert.Equal(t, "+[]", Number(0))
	assert.Equal(t, Zero, Number(0))
}

func TestNumber_Fixtures(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "+!![]"},
		{2, "+!![]+!![]"},
		{3, "+!![]+!![]+!![]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.n), "Number(%d)", tt.n)
	}
}

func TestNumber_LinearLength(t *testing.T) {
	for _, n := range []int{1, 13, 100} {
		got := Number(n)
		assert.Len(t, got, n*len(One))
		assert.Equal(t, n, strings.Count(got, One))
		assert.NoError(t, Validate(got))
	}
}

func TestNumber_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { Number(-1) })
}
