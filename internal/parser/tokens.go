package parser

import (
	"garnet/internal/token"
)

// The lexer streams heredoc bodies at the end of the physical line that
// opened them, after the rest of the line's tokens. The grammar is much
// simpler when a body directly follows its opener, so before parsing we
// splice each body run to sit right after its HeredocBegin.

type pendingOpener struct {
	outIdx   int // insertion point in the output slice
	litDepth int
	embDepth int
}

func isLiteralOpen(k token.Kind) bool {
	switch k {
	case token.StringBegin, token.XStringBegin, token.SymbolBegin,
		token.RegexpBegin, token.WordsBegin, token.SymbolsBegin:
		return true
	default:
		return false
	}
}

func isLiteralClose(k token.Kind) bool {
	return k == token.StringEnd || k == token.RegexpEnd
}

func isBodyPart(k token.Kind) bool {
	switch k {
	case token.StringContent, token.EmbVar, token.EmbExprBegin, token.HeredocEnd:
		return true
	default:
		return false
	}
}

func inlineHeredocBodies(toks []token.Token) []token.Token {
	found := false
	for _, t := range toks {
		if t.Kind == token.HeredocBegin {
			found = true
			break
		}
	}
	if !found {
		return toks
	}

	out := make([]token.Token, 0, len(toks))
	var pending []pendingOpener
	litDepth, embDepth := 0, 0

	i := 0
	for i < len(toks) {
		t := toks[i]

		if len(pending) > 0 && isBodyPart(t.Kind) &&
			litDepth == pending[0].litDepth && embDepth == pending[0].embDepth {
			// The body runs for every heredoc opened on this line sit here
			// back to back, in opener order.
			shift := 0
			for _, op := range pending {
				run, next := extractBodyRun(toks, i)
				i = next
				run = inlineHeredocBodies(run)
				at := op.outIdx + shift
				out = append(out[:at], append(append([]token.Token(nil), run...), out[at:]...)...)
				shift += len(run)
			}
			pending = pending[:0]
			continue
		}

		switch {
		case isLiteralOpen(t.Kind):
			litDepth++
		case isLiteralClose(t.Kind):
			litDepth--
		case t.Kind == token.EmbExprBegin:
			embDepth++
		case t.Kind == token.EmbExprEnd:
			embDepth--
		case t.Kind == token.HeredocBegin:
			pending = append(pending, pendingOpener{
				outIdx:   len(out) + 1,
				litDepth: litDepth,
				embDepth: embDepth,
			})
		}
		out = append(out, t)
		i++
	}
	return out
}

// extractBodyRun consumes one heredoc body starting at toks[i] and
// returns the run plus the index just past it. The run ends at the
// HeredocEnd token at the run's own nesting level; heredocs nested
// inside an interpolation close deeper and are carried along.
func extractBodyRun(toks []token.Token, i int) ([]token.Token, int) {
	start := i
	lit, emb := 0, 0
	for i < len(toks) {
		t := toks[i]
		i++
		switch {
		case isLiteralOpen(t.Kind):
			lit++
		case t.Kind == token.EmbExprBegin:
			emb++
		case t.Kind == token.EmbExprEnd:
			emb--
		case t.Kind == token.StringEnd || t.Kind == token.RegexpEnd:
			lit--
		case t.Kind == token.HeredocEnd:
			if lit == 0 && emb == 0 {
				return toks[start:i], i
			}
			lit--
		case t.Kind == token.HeredocBegin:
			lit++
		case t.Kind == token.EOF:
			return toks[start : i-1], i - 1
		}
	}
	return toks[start:i], i
}
