package geom

// Overlaps reports whether the closed intervals [a1, a2] and [b1, b2]
// share at least one point. Bounds may be given in either order.
func Overlaps(a1, a2, b1, b2 float64) bool {
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return a1 <= b2 && b1 <= a2
}

// Subtract removes the closed interval [c1, c2] from [s1, s2] and returns
// the remaining pieces, 0, 1 or 2 of them. Pieces of zero length are
// dropped.
func Subtract(s1, s2, c1, c2 float64) [][2]float64 {
	if s1 > s2 {
		s1, s2 = s2, s1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	if !Overlaps(s1, s2, c1, c2) {
		return [][2]float64{{s1, s2}}
	}
	var pieces [][2]float64
	if s1 < c1 {
		pieces = append(pieces, [2]float64{s1, c1})
	}
	if c2 < s2 {
		pieces = append(pieces, [2]float64{c2, s2})
	}
	return pieces
}
