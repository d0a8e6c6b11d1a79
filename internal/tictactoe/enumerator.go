package tictactoe

// Tally counts terminal leaves by outcome. Unfinished is never counted.
type Tally struct {
	Wins   int64 `json:"wins"`
	Losses int64 `json:"losses"`
	Draws  int64 `json:"draws"`
}

func (t Tally) Total() int64 {
	return t.Wins + t.Losses + t.Draws
}

// Add merges other into t key by key.
func (t *Tally) Add(other Tally) {
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Draws += other.Draws
}

// Record counts one terminal leaf.
func (t *Tally) Record(outcome Outcome) {
	switch outcome {
	case Win:
		t.Wins++
	case Loss:
		t.Losses++
	case Draw:
		t.Draws++
	case Unfinished:
	}
}

func (t Tally) Count(outcome Outcome) int64 {
	switch outcome {
	case Win:
		return t.Wins
	case Loss:
		return t.Losses
	case Draw:
		return t.Draws
	default:
		return 0
	}
}

// Enumerate walks every continuation of pos with toMove playing next and counts the terminal
// leaves from agent's point of view. The whole tree is expanded each call.
func Enumerate(pos Position, agent, toMove Side) Tally {
	var tally Tally

	if outcome := Evaluate(pos, agent); outcome.IsTerminal() {
		tally.Record(outcome)
		return tally
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !pos[row][col].IsEmpty() {
				continue
			}

			pos.try(row, col, toMove, func() {
				if outcome := Evaluate(pos, agent); outcome.IsTerminal() {
					tally.Record(outcome)
					return
				}

				tally.Add(Enumerate(pos, agent, toMove.Opponent()))
			})
		}
	}

	return tally
}
