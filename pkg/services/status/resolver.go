package status

import (
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// Resolve maps the stored status and contract dates of c to its effective status at now.
// Priority: canceled > finalized > delinquent > at-risk > active.
func Resolve(c domain.Customer, now time.Time) domain.ClientStatus {
	if c.Status == domain.StatusCanceled {
		return domain.ClientCanceled
	}

	if c.EndDate != nil && reached(now, *c.EndDate) {
		return domain.ClientFinalized
	}

	switch c.Status {
	case domain.StatusDelinquent:
		return domain.ClientDelinquent
	case domain.StatusAtRisk:
		return domain.ClientAtRisk
	}

	return domain.ClientActive
}

// reached reports whether now is at or past end. The end date's calendar day counts as reached
// from its first instant, judged in now's location.
func reached(now, end time.Time) bool {
	if !now.Before(end) {
		return true
	}
	ey, em, ed := end.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ey == ny && em == nm && ed == nd
}

// Resolver binds Resolve to a clock.
type Resolver struct {
	clock clock.Clock
}

func NewResolver(c clock.Clock) *Resolver {
	return &Resolver{clock: clock.OrSystem(c)}
}

func (r *Resolver) Resolve(c domain.Customer) domain.ClientStatus {
	return Resolve(c, r.clock.Now())
}
