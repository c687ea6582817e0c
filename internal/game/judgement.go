package game

// Judgement is the outcome of a lane activation.
type Judgement uint8

const (
	None Judgement = iota
	Perfect
	Great
	Good
	Miss
)

// Judgements lists the results that can be counted, tightest window first.
var Judgements = [...]Judgement{Perfect, Great, Good, Miss}

func (j Judgement) String() string {
	switch j {
	case Perfect:
		return "Perfect"
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Miss:
		return "Miss"
	}
	return ""
}

// Hit reports whether the judgement consumed a note.
func (j Judgement) Hit() bool {
	return j == Perfect || j == Great || j == Good
}
