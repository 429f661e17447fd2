package delivery

import "fmt"

// Rule names the transition rule that rejected a request.
type Rule int

const (
	RuleBackwards Rule = iota + 1
	RuleCompleteRequiresApproval
	RuleCompletedNotCancellable
)

func (r Rule) String() string {
	switch r {
	case RuleBackwards:
		return "a delivery cannot transition backwards"
	case RuleCompleteRequiresApproval:
		return "a delivery must be approved before it is completed"
	case RuleCompletedNotCancellable:
		return "a completed delivery cannot be cancelled"
	default:
		return "unknown transition rule"
	}
}

// TransitionError reports a rejected state change.
type TransitionError struct {
	From State
	To   State
	Rule Rule
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move delivery from %s to %s: %s", e.From, e.To, e.Rule)
}

// TransitionTo returns to if s may move there. The rules are evaluated in a
// fixed order and the first violation wins:
//
//  1. to < s is rejected (no moving backwards).
//  2. to == Completed requires s == Approved.
//  3. to == Cancelled is rejected when s == Completed.
//
// Same-state requests pass unless rule 2 applies, so Completed -> Completed
// is rejected.
func (s State) TransitionTo(to State) (State, error) {
	if err := to.Validate(); err != nil {
		return s, err
	}
	if rule, ok := s.violatedRule(to); ok {
		return s, &TransitionError{From: s, To: to, Rule: rule}
	}
	return to, nil
}

// CanTransitionTo is TransitionTo without the result.
func (s State) CanTransitionTo(to State) error {
	_, err := s.TransitionTo(to)
	return err
}

func (s State) violatedRule(to State) (Rule, bool) {
	switch {
	case to < s:
		return RuleBackwards, true
	case to == Completed && s != Approved:
		return RuleCompleteRequiresApproval, true
	case to == Cancelled && s == Completed:
		return RuleCompletedNotCancellable, true
	}
	return 0, false
}
