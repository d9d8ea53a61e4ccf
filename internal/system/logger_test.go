package system

import (
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	prev := Logger.GetLevel()
	t.Cleanup(func() { Logger.SetLevel(prev) })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, clog.DebugLevel, Logger.GetLevel())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, clog.DebugLevel, Logger.GetLevel())
}

func TestOr(t *testing.T) {
	assert.Same(t, Logger, Or(nil))
	l := Discard()
	assert.Same(t, l, Or(l))
}
