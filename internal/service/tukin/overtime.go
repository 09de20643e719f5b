package tukin

import (
	"math"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
)

// Compensate determines how much of a compensable lateness penalty is offset
// by overtime worked the same day. It returns the waived and residual
// compensable minutes; the residual is matched against the compensable-late
// rule as ordinary lateness.
//
// Only the COMPENSABLE bracket (31-90 minutes) is eligible: the first 30
// minutes always carry zero penalty, and lateness above 90 minutes applies
// its full rule regardless of overtime.
func Compensate(minutesLate, departureDelta int) (compensated, residual int) {
	if deduction.BracketFor(minutesLate) != deduction.BracketCompensable {
		return 0, 0
	}

	compensable := minutesLate - deduction.ToleranceMinutes
	required := compensable * deduction.OvertimeRatio

	switch {
	case departureDelta >= required:
		return compensable, 0
	case departureDelta <= 0:
		return 0, compensable
	default:
		// Pro-rata: residual = compensable * (1 - delta/required), rounded
		// to the nearest whole minute.
		r := float64(compensable) * (1 - float64(departureDelta)/float64(required))
		residual = int(math.Round(r))
		return compensable - residual, residual
	}
}
