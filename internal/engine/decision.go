package engine

import "fmt"

// DecisionKind identifies which yes/no question the resolver is asking.
type DecisionKind string

const (
	// DecideConcedeAfterAttack asks the occupant, right after their claws
	// landed, whether they abandon Tokyo.
	DecideConcedeAfterAttack DecisionKind = "ConcedeAfterAttack"
	// DecideConcedeToChallenge asks the occupant whether they yield Tokyo to
	// a challenger's claws.
	DecideConcedeToChallenge DecisionKind = "ConcedeToChallenge"
	// DecideEnterZone asks the active player whether they step into a vacant
	// Tokyo.
	DecideEnterZone DecisionKind = "EnterZone"
)

// Decision is a single yes/no question the resolver puts to the driver in
// the middle of turn resolution. Default is the answer the driver must fall
// back to on empty or unintelligible input; the resolver never sees
// malformed input.
type Decision struct {
	Kind     DecisionKind
	Actor    string // ID of the active player this turn
	Occupant string // ID of the current Tokyo occupant, empty if vacant
	Claws    int
	Default  bool
}

// Prompt renders the question for an interactive driver.
func (d Decision) Prompt() string {
	switch d.Kind {
	case DecideConcedeAfterAttack:
		return fmt.Sprintf("%s has finished attacking. CONCEDE Tokyo?", d.Occupant)
	case DecideConcedeToChallenge:
		return fmt.Sprintf("%s challenges %s with %d claw(s). Should %s CONCEDE Tokyo?",
			d.Actor, d.Occupant, d.Claws, d.Occupant)
	case DecideEnterZone:
		return fmt.Sprintf("Tokyo is vacant. %s rolled %d claw(s). ENTER Tokyo?", d.Actor, d.Claws)
	}
	return string(d.Kind)
}

// DecisionProvider supplies answers to the resolver's decision points. The
// resolver blocks on AskYesNo until an answer arrives; turns are strictly
// serialized, so there is no timeout and no cancellation.
type DecisionProvider interface {
	AskYesNo(d Decision) bool
}

// DecisionFunc adapts a plain function to a DecisionProvider.
type DecisionFunc func(d Decision) bool

// AskYesNo implements DecisionProvider.
func (f DecisionFunc) AskYesNo(d Decision) bool { return f(d) }

// AutoDecider answers every question with its default. Useful for
// non-interactive simulated games.
var AutoDecider = DecisionFunc(func(d Decision) bool { return d.Default })
