package swipecell

import "math"

// MapDelta converts a raw horizontal displacement into the displayed offset.
//
// Toward a side with a surface the row tracks the finger 1:1, clamped to
// MaxReveal when one is set. Toward a side without a surface the row follows
// a diminishing curve that starts with slope BounceElasticity and approaches,
// but never reaches, ElasticBound.
func MapDelta(raw float64, hasSurface bool, s Settings) float64 {
	if raw == 0 {
		return 0
	}

	if hasSurface {
		if s.MaxReveal > 0 && math.Abs(raw) > s.MaxReveal {
			return math.Copysign(s.MaxReveal, raw)
		}
		return raw
	}

	return math.Copysign(elastic(math.Abs(raw), s.BounceElasticity, s.ElasticBound), raw)
}

// elastic is bound * (1 - 1/(d*k + 1)) with k chosen so the slope at 0 is
// elasticity. For elasticity < 1 the result is below both d and bound.
func elastic(d, elasticity, bound float64) float64 {
	if bound <= 0 || elasticity <= 0 {
		return 0
	}
	k := elasticity / bound
	return bound * (1 - 1/(d*k+1))
}

// unelastic inverts elastic for 0 <= d < bound. Offsets at or past the bound
// cannot come from elastic and are returned unchanged.
func unelastic(d, elasticity, bound float64) float64 {
	if bound <= 0 || elasticity <= 0 || d >= bound {
		return d
	}
	k := elasticity / bound
	return d / (k * (bound - d))
}
