package ownermap

import (
	"fmt"

	"owner/board"
)

type GroupStatus int

const (
	Unresolved GroupStatus = iota
	Alive
	Dead
	StatusUnknown
)

func (s GroupStatus) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// GroupJudgement holds the status of every group, indexed by group id.
type GroupJudgement struct {
	Threshold float64
	Status    []GroupStatus
}

func NewGroupJudgement(numPoints int, thres float64) *GroupJudgement {
	return &GroupJudgement{
		Threshold: thres,
		Status:    make([]GroupStatus, numPoints),
	}
}

func (j *GroupJudgement) Of(g board.Group) GroupStatus {
	return j.Status[g]
}

// JudgeGroups decides for every group whether it survives the playouts.
// Points of one group that disagree, or any unclear point, make the group
// StatusUnknown.
func JudgeGroups(b board.Board, m *Map, j *GroupJudgement) {
	points := make([]board.Point, b.NumPoints())
	for i := range points {
		points[i] = board.Point(i)
	}
	judgeGroups(b, m, j, points)
}

func judgeGroups(b board.Board, m *Map, j *GroupJudgement, points []board.Point) {
	m.mustHavePlayouts()
	if len(j.Status) < b.NumPoints() {
		panic(fmt.Sprintf("group judgement has room for %d groups, board has %d points", len(j.Status), b.NumPoints()))
	}
	for i := range j.Status {
		j.Status[i] = Unresolved
	}

	for _, p := range points {
		g := b.GroupAt(p)
		if g == board.NoGroup {
			continue
		}

		pj := m.Judge(p, j.Threshold)
		if pj == Unknown {
			j.Status[g] = StatusUnknown
			continue
		}
		if j.Status[g] == StatusUnknown {
			continue
		}

		vote := pointVote(pj, b.At(p))
		if j.Status[g] == Unresolved {
			j.Status[g] = vote
		} else if j.Status[g] != vote {
			j.Status[g] = StatusUnknown
		}
	}
}

func pointVote(pj Judgement, color board.Stone) GroupStatus {
	switch pj {
	case judgementOf(color):
		return Alive
	case judgementOf(color.Other()):
		return Dead
	default:
		// Dame under a stone.
		return StatusUnknown
	}
}

// GroupsOfStatus appends every group with the given status to q, in board
// order.
func GroupsOfStatus(b board.Board, j *GroupJudgement, status GroupStatus, q *board.MoveQueue) {
	for i := 0; i < b.NumPoints(); i++ {
		p := board.Point(i)
		g := b.GroupAt(p)
		if g == board.NoGroup || g != board.Group(p) {
			continue
		}

		if j.Status[g] == Unresolved {
			panic(fmt.Sprintf("group %d has not been judged", g))
		}
		if j.Status[g] == status {
			q.Add(p)
		}
	}
}
