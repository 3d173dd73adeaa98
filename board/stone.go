package board

type Stone int

const (
	None Stone = iota
	Black
	White
)

// NumStones is the number of distinct point occupancies.
const NumStones = 3

func (s Stone) Other() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "."
	}
}
