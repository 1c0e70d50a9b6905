package search

import (
	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/eval"
)

// AlphaBeta is a synchronous, fixed-depth negamax search with alpha-beta
// pruning. Pseudo-code:
//
// function alphabeta(node, depth, α, β) is
//
//	if depth = 0 or node is terminal then
//	    return the heuristic value of node
//	value := −∞
//	for each child of node do
//	    value := max(value, −alphabeta(child, depth − 1, −β, −α))
//	    α := max(α, value)
//	    if α ≥ β then
//	        break (* β cutoff *)
//	return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning. There is no
// transposition table, no iterative deepening, and no quiescence extension:
// every non-terminal leaf is scored by Eval at exactly depth plies from the
// root.
//
// AlphaBeta retains the principal variation of its last root search
// (lastPV) and replays it first at the root of the NEXT search, per the
// move-ordering rule that brings the previous top-level PV to the front of
// the list. Use a fresh AlphaBeta (or clear lastPV) to get depth-fixed
// determinism independent of search history.
type AlphaBeta struct {
	Eval eval.Evaluator

	lastPV []board.Move
}

// ClearPV drops the retained principal variation, so the next Search call
// orders the root purely by ReverseIfBlack.
func (p *AlphaBeta) ClearPV() {
	p.lastPV = nil
}

func (p *AlphaBeta) Search(b *board.Board, depth int) PV {
	var nodes uint64
	score, pv := p.search(b, depth, depth, eval.NegInfScore, eval.InfScore, &nodes)
	p.lastPV = append([]board.Move(nil), pv...)
	return PV{Moves: pv, Score: score, Nodes: nodes, Depth: depth}
}

func (p *AlphaBeta) search(b *board.Board, depth, rootDepth int, alpha, beta eval.Score, nodes *uint64) (eval.Score, []board.Move) {
	*nodes++

	if depth == 0 || b.TerminalStatus().IsTerminal() {
		return p.Eval.Evaluate(b), nil
	}

	var pvHint []board.Move
	if depth == rootDepth {
		pvHint = p.lastPV
	}

	side := b.Turn()
	list := orderMoves(side, b.LegalMoves(side), pvHint)

	var pv []board.Move
	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		b.MakeMove(m)
		score, rem := p.search(b, depth-1, rootDepth, beta.Negate(), alpha.Negate(), nodes)
		score = eval.IncrementMateDistance(score.Negate())
		b.UndoMove()

		if alpha.Less(score) {
			alpha = score
			pv = append([]board.Move{m}, rem...)
		}
		if beta.Less(alpha) || alpha == beta {
			break // beta cutoff
		}
	}

	return alpha, pv
}
