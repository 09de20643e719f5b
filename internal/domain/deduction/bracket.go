package deduction

// LatenessBracket classifies minutes-late into the bucket that decides
// which deduction rule, if any, applies. NONE is a representable outcome,
// not an accidental fallthrough.
type LatenessBracket string

const (
	BracketNone          LatenessBracket = "NONE"
	BracketTolerated     LatenessBracket = "TOLERATED"
	BracketCompensable   LatenessBracket = "COMPENSABLE"
	BracketUncompensable LatenessBracket = "UNCOMPENSABLE"
)

const (
	// ToleranceMinutes of lateness always carry zero penalty.
	ToleranceMinutes = 30
	// CompensableLimitMinutes is the upper bound of lateness that can still
	// be offset by overtime. Above it the full rule applies regardless.
	CompensableLimitMinutes = 90
	// OvertimeRatio is the minutes of overtime required per minute of
	// compensable lateness.
	OvertimeRatio = 2
)

// BracketFor is a pure function of minutes-late.
func BracketFor(minutesLate int) LatenessBracket {
	switch {
	case minutesLate <= 0:
		return BracketNone
	case minutesLate <= ToleranceMinutes:
		return BracketTolerated
	case minutesLate <= CompensableLimitMinutes:
		return BracketCompensable
	default:
		return BracketUncompensable
	}
}
