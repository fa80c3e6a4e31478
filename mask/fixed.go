package mask

// Fix materializes m's connections once, by iterating it in full, and
// returns a Finite mask that replays that exact realization on every
// later pass. Applied to a random mask, it pins down one draw instead
// of redrawing on every iteration.
func Fix(m Finite) Finite {
	var pairs []Pair
	for i, j := range Pairs(m) {
		pairs = append(pairs, Pair{I: i, J: j})
	}
	return Explicit(pairs)
}
