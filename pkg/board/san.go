package board

import "strings"

// SAN renders m in standard algebraic notation, per spec.md §6. Check and
// checkmate suffixes are not computed here: the caller holds the Board and
// can append "+" or "#" after consulting CheckPaths on the resulting
// position.
func (m Move) SAN() string {
	if m.IsCastle() {
		if m.To.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if m.MoverKind == Pawn {
		if m.IsCapture() || m.IsEnPassant {
			sb.WriteByte("abcdefgh"[m.From.File()])
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteString(m.PromotionKind.Letter())
		}
		if m.IsEnPassant {
			sb.WriteString(" e.p.")
		}
		return sb.String()
	}

	sb.WriteString(m.MoverKind.Letter())
	if m.FileDisambig {
		sb.WriteByte("abcdefgh"[m.From.File()])
	}
	if m.RankDisambig {
		sb.WriteByte("87654321"[m.From.Rank()])
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}
