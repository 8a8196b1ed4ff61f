package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatesSubAntisymmetric(t *testing.T) {
	t.Parallel()

	r1 := Rates{KMT: 0.4, DPP: 0.3, Other: 0.1, NonVoter: 0.2}
	r2 := Rates{KMT: 0.3, DPP: 0.45, Other: 0.05, NonVoter: 0.2}

	forward := r2.Sub(r1)
	backward := r1.Sub(r2)

	assert.InDelta(t, -backward.KMT, forward.KMT, 1e-9)
	assert.InDelta(t, -backward.DPP, forward.DPP, 1e-9)
	assert.InDelta(t, -backward.Other, forward.Other, 1e-9)
	assert.InDelta(t, -backward.NonVoter, forward.NonVoter, 1e-9)

	assert.InDelta(t, -0.1, forward.KMT, 1e-9)
	assert.InDelta(t, 0.15, forward.DPP, 1e-9)
	assert.Zero(t, forward.NonVoter)
}
