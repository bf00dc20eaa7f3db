package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, StatusValid, Combine())
	assert.Equal(t, StatusIncomplete, Combine(StatusValid, StatusIncomplete))
	assert.Equal(t, StatusError, Combine(StatusIncomplete, StatusError))

	all := []Status{StatusValid, StatusIncomplete, StatusError}
	t.Run("commutative", func(t *testing.T) {
		for _, a := range all {
			for _, b := range all {
				assert.Equal(t, Combine(a, b), Combine(b, a))
			}
		}
	})

	t.Run("associative", func(t *testing.T) {
		for _, a := range all {
			for _, b := range all {
				for _, c := range all {
					assert.Equal(t, Combine(Combine(a, b), c), Combine(a, Combine(b, c)))
					assert.Equal(t, Combine(a, b, c), Combine(a, Combine(b, c)))
				}
			}
		}
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "VALID", StatusValid.String())
	assert.Equal(t, "INCOMPLETE", StatusIncomplete.String())
	assert.Equal(t, "ERROR", StatusError.String())
	assert.True(t, StatusError.WorseThan(StatusIncomplete))
	assert.False(t, StatusValid.WorseThan(StatusValid))
}
