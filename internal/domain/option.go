package domain

import "fmt"

// Option identifies one of the two answers of a Question.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
)

// Valid reports whether o is OptionA or OptionB.
func (o Option) Valid() bool {
	return o == OptionA || o == OptionB
}

// ParseOption accepts "A"/"B" and the original "yes"/"no" spellings.
func ParseOption(s string) (Option, error) {
	switch s {
	case "A", "a", "yes", "Yes":
		return OptionA, nil
	case "B", "b", "no", "No":
		return OptionB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOption, s)
	}
}

// Tally counts votes per chosen option.
type Tally struct {
	A int `json:"option_a"`
	B int `json:"option_b"`
}

// Add counts one vote for o.
func (t *Tally) Add(o Option) {
	switch o {
	case OptionA:
		t.A++
	case OptionB:
		t.B++
	}
}

func (t Tally) Total() int {
	return t.A + t.B
}

// Winner returns the option with strictly more votes.
// A tie resolves to OptionA.
func (t Tally) Winner() Option {
	if t.B > t.A {
		return OptionB
	}
	return OptionA
}

// Percentages returns each option's share of the total, rounded to one decimal.
func (t Tally) Percentages() (float64, float64) {
	total := t.Total()
	if total == 0 {
		return 0, 0
	}
	return RoundTo(float64(t.A)/float64(total)*100, 1), RoundTo(float64(t.B)/float64(total)*100, 1)
}
