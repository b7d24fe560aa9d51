package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	l := NewLiveness()
	assert.True(t, l.Alive())

	l.Kill()
	assert.False(t, l.Alive())

	l.Kill()
	assert.False(t, l.Alive())

	var zero Liveness
	assert.False(t, zero.Alive())
}
