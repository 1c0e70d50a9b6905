package board

import (
	"container/heap"
	"fmt"
	"math"
	"strings"
)

// FormatMoves renders a move sequence as space-separated UCI-style strings.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// MovePriority represents the move order priority.
type MovePriority int16

// MovePriorityFn assigns a priority to moves.
type MovePriorityFn func(move Move) MovePriority

// PVFirst returns a MovePriorityFn that places every move in pv first, in pv
// order, ahead of all other moves (which are otherwise left in the order
// supplied to NewMoveList). This is the move-ordering step of a fixed-depth
// search: the previous root search's principal variation is replayed first.
func PVFirst(pv []Move) MovePriorityFn {
	rank := make(map[Move]MovePriority, len(pv))
	for i, m := range pv {
		rank[m] = MovePriority(len(pv) - i)
	}
	return func(m Move) MovePriority {
		for cand, p := range rank {
			if cand.Equals(m) {
				return MovePriority(math.MaxInt16) - MovePriority(len(pv)) + p
			}
		}
		return 0
	}
}

// ReverseIfBlack returns moves reversed when side is Black, unchanged
// otherwise. The generator produces moves walking the board from rank 8
// downward; reversing approximates "most advanced piece first" for Black.
func ReverseIfBlack(side Color, moves []Move) []Move {
	if side == White {
		return moves
	}
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m
	}
	return out
}

// MoveList is a move priority queue used for search move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities. Ties keep
// the relative order of the input slice, since heap insertion is stable with
// respect to insertion index on equal priority (see elm.seq).
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m), seq: i}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
	seq int
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	if h[i].val != h[j].val {
		return h[i].val > h[j].val
	}
	return h[i].seq < h[j].seq
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(elm))
}

func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[0 : n-1]
	return ret
}
