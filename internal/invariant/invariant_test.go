package invariant

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test: sentinel")

func TestFailNil(t *testing.T) {
	require.NotPanics(t, func() { Fail(nil) })
}

func TestAssert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intrusive")
	defer teardown()

	require.NotPanics(t, func() { Assert(true, errTest, "never") })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, errTest))
		require.Equal(t, "test: sentinel: node 3 is linked", err.Error())
	}()
	Assert(false, errTest, "node %d is linked", 3)
}
