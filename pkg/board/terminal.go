package board

// TerminalStatus is the exclusive outcome of a position: exactly one value
// holds at any time (see Board.TerminalStatus).
type TerminalStatus uint8

const (
	InProgress TerminalStatus = iota
	WhiteWin
	BlackWin
	DrawStalemate
	Draw50Moves
	DrawRepetition
)

func (t TerminalStatus) IsDraw() bool {
	return t == DrawStalemate || t == Draw50Moves || t == DrawRepetition
}

func (t TerminalStatus) IsTerminal() bool {
	return t != InProgress
}

func (t TerminalStatus) String() string {
	switch t {
	case InProgress:
		return "in_progress"
	case WhiteWin:
		return "white_win"
	case BlackWin:
		return "black_win"
	case DrawStalemate:
		return "draw_stalemate"
	case Draw50Moves:
		return "draw_50moves"
	case DrawRepetition:
		return "draw_repetition"
	default:
		return "?"
	}
}
