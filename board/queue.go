package board

// MoveQueue collects points in insertion order. It is owned by the caller;
// producers only append.
type MoveQueue struct {
	points []Point
}

func (q *MoveQueue) Add(p Point) {
	q.points = append(q.points, p)
}

func (q *MoveQueue) Len() int {
	return len(q.points)
}

func (q *MoveQueue) Points() []Point {
	points := make([]Point, len(q.points))
	copy(points, q.points)
	return points
}
