package csaerr_test

import (
	goerrors "errors"
	"testing"

	"github.com/csa-go/csa/csaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := csaerr.E(csaerr.MalformedInterval, "interval (3,1) has lo > hi")
	assert.Equal(t, "interval (3,1) has lo > hi: malformed interval", err.Error())
	assert.True(t, csaerr.Is(csaerr.MalformedInterval, err))
	assert.False(t, csaerr.Is(csaerr.NegativeIndex, err))
}

func TestErrorChaining(t *testing.T) {
	inner := csaerr.E(csaerr.OverlappingIntervals, "(0,5) overlaps (3,8)")
	outer := csaerr.E("failed to build interval set", inner)
	require.True(t, csaerr.Is(csaerr.OverlappingIntervals, outer))
	assert.Contains(t, outer.Error(), "overlapping intervals")
}

func TestUnwrap(t *testing.T) {
	cause := goerrors.New("boom")
	err := csaerr.E(csaerr.InfiniteOperation, cause)
	require.ErrorIs(t, err, cause)
}
