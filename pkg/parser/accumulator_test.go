package parser

import (
	"testing"

	"github.com/arthur-debert/confc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorTransitions(t *testing.T) {
	acc := newAccumulator()
	assert.Equal(t, Idle, acc.state())

	assert.Nil(t, acc.end(), "end while idle is a no-op")
	assert.False(t, acc.assign("x", types.Integer(1)), "assign while idle is refused")

	assert.True(t, acc.begin())
	assert.Equal(t, Accumulating, acc.state())
	assert.False(t, acc.begin(), "second begin keeps the open record")

	require.True(t, acc.assign("x", types.Integer(1)))
	r := acc.end()
	require.NotNil(t, r)
	assert.Equal(t, Idle, acc.state())

	doc, dropped := acc.finish()
	assert.Nil(t, dropped)
	require.Equal(t, 1, doc.Len())
	assert.Same(t, r, doc.Records()[0])
}

func TestAccumulatorSectionDoesNotNest(t *testing.T) {
	acc := newAccumulator()
	acc.section("security")
	assert.Equal(t, Accumulating, acc.state(), "section opens a record when idle")

	acc.assign("ssl", types.Boolean(true))
	acc.section("logging")
	acc.assign("logLevel", types.Text("warn"))
	r := acc.end()

	require.NotNil(t, r)
	assert.Equal(t, []string{"security", "ssl", "logging", "logLevel"}, r.Keys())
	v, _ := r.Get("security")
	assert.Equal(t, types.KindSection, v.Kind)
}

func TestAccumulatorFinishDropsOpenRecord(t *testing.T) {
	acc := newAccumulator()
	acc.begin()
	acc.assign("x", types.Integer(1))

	doc, dropped := acc.finish()
	assert.Equal(t, 0, doc.Len())
	require.NotNil(t, dropped)
	assert.Equal(t, 1, dropped.Len())
	assert.Equal(t, Idle, acc.state())
}
