package tictactoe

import (
	"errors"
	"fmt"
)

var ErrUnknownPolicy = errors.New("unknown selection policy")

// drawWeight is how much a reachable draw is worth relative to a reachable win.
const drawWeight = 0.25

// TieBreak selects how candidates with an equal score are compared.
type TieBreak string

const (
	// TieBreakLegacy compares score, then loss percentage. The fewest-outcomes rule sits behind
	// an else-if that has already consumed equal scores, so it never fires. The initial
	// sentinel (score 0, loss 100) may also survive the whole scan.
	TieBreakLegacy TieBreak = "legacy"
	// TieBreakOrdered compares score, then loss percentage, then total outcomes, and always
	// adopts the first scored candidate.
	TieBreakOrdered TieBreak = "ordered"
)

// Decisive selects what happens when a candidate move ends the game on the spot.
type Decisive string

const (
	// DecisiveLegacy commits only when the enumeration of the candidate yields no leaves and
	// the board is terminal, and then skips just the rest of the current row.
	DecisiveLegacy Decisive = "legacy"
	// DecisiveImmediate commits to any move that ends the game and stops the scan.
	DecisiveImmediate Decisive = "immediate"
)

type Policy struct {
	TieBreak TieBreak
	Decisive Decisive
}

// DefaultPolicy keeps the legacy tie-break and decisive-move rules.
func DefaultPolicy() Policy {
	return Policy{TieBreak: TieBreakLegacy, Decisive: DecisiveLegacy}
}

func ParsePolicy(tieBreak, decisive string) (Policy, error) {
	policy := Policy{TieBreak: TieBreak(tieBreak), Decisive: Decisive(decisive)}

	switch policy.TieBreak {
	case TieBreakLegacy, TieBreakOrdered:
	default:
		return Policy{}, fmt.Errorf("%w: tie-break %q", ErrUnknownPolicy, tieBreak)
	}

	switch policy.Decisive {
	case DecisiveLegacy, DecisiveImmediate:
	default:
		return Policy{}, fmt.Errorf("%w: decisive %q", ErrUnknownPolicy, decisive)
	}

	return policy, nil
}

// Selection is the outcome of a move search.
type Selection struct {
	Row int `json:"row"`
	Col int `json:"col"`
	// Position is the board after the chosen move, or the untouched input when Found is false.
	Position Position `json:"position"`
	// WinPct is the score of the chosen move: win% plus a quarter of draw%.
	WinPct  float64 `json:"win_pct"`
	LossPct float64 `json:"loss_pct"`
	Tally   Tally   `json:"tally"`
	Found   bool    `json:"found"`
	// Evaluated is the number of candidate moves whose subtree was enumerated.
	Evaluated int `json:"evaluated"`
}

type candidate struct {
	score   float64
	lossPct float64
	total   int64
}

// SelectMove scans the empty squares in row-major order and picks the move for agent whose
// subtree scores best.
func SelectMove(pos Position, agent Side, policy Policy) Selection {
	best := Selection{Position: pos, Row: -1, Col: -1}
	bestCandidate := candidate{score: 0, lossPct: 100, total: 0}
	evaluated := 0

	board := pos

scan:
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !board[row][col].IsEmpty() {
				continue
			}

			stop, skipRow := false, false

			board.try(row, col, agent, func() {
				if policy.Decisive == DecisiveImmediate {
					if outcome := Evaluate(board, agent); outcome.IsTerminal() {
						var tally Tally
						tally.Record(outcome)
						evaluated++
						best = commit(board, row, col, score(tally), tally)
						stop = true
						return
					}
				}

				tally := Enumerate(board, agent, agent.Opponent())
				if tally.Total() == 0 {
					if Evaluate(board, agent).IsTerminal() {
						best = commit(board, row, col, bestCandidate, tally)
						skipRow = true
					}
					return
				}

				evaluated++

				current := score(tally)
				if policy.prefers(current, bestCandidate, best.Found) {
					best = commit(board, row, col, current, tally)
					bestCandidate = current
				}
			})

			if stop {
				break scan
			}
			if skipRow {
				break
			}
		}
	}

	best.Evaluated = evaluated

	return best
}

func commit(board Position, row, col int, c candidate, tally Tally) Selection {
	return Selection{
		Row:      row,
		Col:      col,
		Position: board,
		WinPct:   c.score,
		LossPct:  c.lossPct,
		Tally:    tally,
		Found:    true,
	}
}

func score(tally Tally) candidate {
	total := float64(tally.Total())
	winPct := float64(tally.Wins) / total * 100
	drawPct := float64(tally.Draws) / total * 100
	lossPct := float64(tally.Losses) / total * 100

	return candidate{
		score:   winPct + drawPct*drawWeight,
		lossPct: lossPct,
		total:   tally.Total(),
	}
}

// prefers reports whether current replaces best.
func (p Policy) prefers(current, best candidate, found bool) bool {
	if p.TieBreak == TieBreakOrdered {
		switch {
		case !found:
			return true
		case current.score > best.score:
			return true
		case current.score == best.score && current.lossPct < best.lossPct:
			return true
		case current.score == best.score && current.lossPct == best.lossPct && current.total < best.total:
			return true
		default:
			return false
		}
	}

	//nolint:gocritic,staticcheck // equal scores never reach the last branch
	if current.score > best.score {
		return true
	} else if current.score == best.score {
		return current.lossPct < best.lossPct
	} else if current.score == best.score && current.lossPct == best.lossPct {
		return current.total < best.total
	}

	return false
}
