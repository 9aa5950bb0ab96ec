package tilegrid

// ScoreTable maps each dirt variant to the points awarded for digging it.
type ScoreTable struct {
	SoftA, SoftB, SoftC, SoftD int
}

// DigScore returns the points for digging c, or 0 if c is not diggable.
func (t ScoreTable) DigScore(c Code) int {
	switch c {
	case SoftA:
		return t.SoftA
	case SoftB:
		return t.SoftB
	case SoftC:
		return t.SoftC
	case SoftD:
		return t.SoftD
	}
	return 0
}
