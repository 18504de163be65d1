package swipecell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapDelta_ZeroIsZero(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 0.0, MapDelta(0, false, s))
	assert.Equal(t, 0.0, MapDelta(0, true, s))
}

func TestMapDelta_IdentityWithSurface(t *testing.T) {
	s := DefaultSettings()
	for _, d := range []float64{-500, -100, -0.5, 0.5, 42, 1000} {
		assert.Equal(t, d, MapDelta(d, true, s), "delta %v", d)
	}
}

func TestMapDelta_ClampsToMaxReveal(t *testing.T) {
	s := DefaultSettings()
	s.MaxReveal = 150

	assert.Equal(t, 100.0, MapDelta(100, true, s))
	assert.Equal(t, 150.0, MapDelta(400, true, s))
	assert.Equal(t, -150.0, MapDelta(-400, true, s))
}

func TestMapDelta_ElasticIsBoundedAndMonotonic(t *testing.T) {
	s := DefaultSettings()

	prev := 0.0
	for d := 1.0; d <= 100000; d *= 1.5 {
		got := MapDelta(d, false, s)
		assert.Less(t, got, s.ElasticBound, "delta %v", d)
		assert.Less(t, got, d, "delta %v", d)
		assert.GreaterOrEqual(t, got, prev, "delta %v", d)
		assert.Equal(t, -got, MapDelta(-d, false, s), "delta %v", d)
		prev = got
	}
}

func TestMapDelta_ElasticStartsAtElasticitySlope(t *testing.T) {
	s := DefaultSettings()
	got := MapDelta(0.001, false, s)
	assert.InDelta(t, 0.001*s.BounceElasticity, got, 1e-6)
}

func TestMapDelta_ElasticScenarioValue(t *testing.T) {
	s := DefaultSettings()
	// 60 * (1 - 1/(40*0.5/60 + 1)) = 15
	assert.InDelta(t, 15.0, MapDelta(40, false, s), 1e-9)
	assert.False(t, math.IsNaN(MapDelta(math.MaxFloat64, false, s)))
}

func TestUnelastic_InvertsElastic(t *testing.T) {
	s := DefaultSettings()
	for _, d := range []float64{0, 1, 15, 40, 200, 5000} {
		shown := elastic(d, s.BounceElasticity, s.ElasticBound)
		assert.InDelta(t, d, unelastic(shown, s.BounceElasticity, s.ElasticBound), 1e-6*(1+d))
	}
	assert.Equal(t, 70.0, unelastic(70, s.BounceElasticity, s.ElasticBound))
}
