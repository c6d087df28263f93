package abstracts

import (
	"errors"
	"time"
)

var ErrNotAccepted = errors.New("only accepted abstracts can be published")

// Accept moves the abstract to accepted from any status. The acceptance
// timestamp is stamped on the first entry only; re-accepting keeps it.
func (a *Abstract) Accept(now time.Time) {
	a.Status = StatusAccepted
	if a.AcceptedAt == nil {
		t := now
		a.AcceptedAt = &t
	}
}

// Reject moves the abstract to rejected from any status. A previously
// published abstract is pulled from the showcase, since published implies
// accepted.
func (a *Abstract) Reject(now time.Time) {
	a.Status = StatusRejected
	a.Published = false
	if a.RejectedAt == nil {
		t := now
		a.RejectedAt = &t
	}
}

// Publish puts an accepted abstract on the public showcase. The publication
// timestamp survives later unpublish/publish cycles.
func (a *Abstract) Publish(now time.Time) error {
	if a.Status != StatusAccepted {
		return ErrNotAccepted
	}
	a.Published = true
	if a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}
	return nil
}

func (a *Abstract) Unpublish() {
	a.Published = false
}

// MarkUnderReview applies the first-review transition: only a pending
// abstract moves; later reviews leave the status alone.
func (a *Abstract) MarkUnderReview() {
	if a.Status == StatusPending {
		a.Status = StatusUnderReview
	}
}
