package abstracts

import (
	"testing"
	"time"
)

func TestAcceptStampsTimestampOnce(t *testing.T) {
	a := &Abstract{Status: StatusPending}

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	a.Accept(first)
	if a.Status != StatusAccepted {
		t.Fatalf("status = %q, want %q", a.Status, StatusAccepted)
	}
	if a.AcceptedAt == nil || !a.AcceptedAt.Equal(first) {
		t.Fatalf("AcceptedAt = %v, want %v", a.AcceptedAt, first)
	}

	a.Accept(first.Add(24 * time.Hour))
	if !a.AcceptedAt.Equal(first) {
		t.Errorf("re-accept moved AcceptedAt to %v, want original %v", a.AcceptedAt, first)
	}
}

func TestRejectClearsPublished(t *testing.T) {
	now := time.Now()
	a := &Abstract{Status: StatusAccepted, Published: true}
	a.PublishedAt = &now

	a.Reject(now)
	if a.Status != StatusRejected {
		t.Fatalf("status = %q, want %q", a.Status, StatusRejected)
	}
	if a.Published {
		t.Error("rejected abstract still published")
	}
	if a.RejectedAt == nil {
		t.Error("RejectedAt not set")
	}
	// publication history survives, only the flag drops
	if a.PublishedAt == nil {
		t.Error("PublishedAt cleared on reject")
	}
}

func TestAcceptRejectFlipFlop(t *testing.T) {
	a := &Abstract{Status: StatusPending}
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	a.Accept(t0)
	a.Reject(t0.Add(time.Hour))
	a.Accept(t0.Add(2 * time.Hour))

	if a.Status != StatusAccepted {
		t.Fatalf("status = %q after flip-flop, want accepted", a.Status)
	}
	if !a.AcceptedAt.Equal(t0) {
		t.Errorf("AcceptedAt = %v, want first acceptance %v", a.AcceptedAt, t0)
	}
	if !a.RejectedAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("RejectedAt = %v, want first rejection %v", a.RejectedAt, t0.Add(time.Hour))
	}
}

func TestPublishRequiresAccepted(t *testing.T) {
	for _, status := range []string{StatusPending, StatusUnderReview, StatusRejected} {
		a := &Abstract{Status: status}
		if err := a.Publish(time.Now()); err == nil {
			t.Errorf("Publish from %q succeeded, want error", status)
		}
		if a.Published {
			t.Errorf("Publish from %q set the flag", status)
		}
	}
}

func TestPublishedAtSurvivesRepublish(t *testing.T) {
	a := &Abstract{Status: StatusAccepted}
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := a.Publish(first); err != nil {
		t.Fatal(err)
	}
	a.Unpublish()
	if a.Published {
		t.Fatal("still published after Unpublish")
	}
	if err := a.Publish(first.Add(48 * time.Hour)); err != nil {
		t.Fatal(err)
	}
	if !a.PublishedAt.Equal(first) {
		t.Errorf("PublishedAt = %v after republish, want first %v", a.PublishedAt, first)
	}
}

func TestMarkUnderReviewOnlyFromPending(t *testing.T) {
	a := &Abstract{Status: StatusPending}
	a.MarkUnderReview()
	if a.Status != StatusUnderReview {
		t.Fatalf("status = %q, want under_review", a.Status)
	}

	// subsequent reviews leave the status alone
	a.MarkUnderReview()
	if a.Status != StatusUnderReview {
		t.Fatalf("second MarkUnderReview changed status to %q", a.Status)
	}

	accepted := &Abstract{Status: StatusAccepted}
	accepted.MarkUnderReview()
	if accepted.Status != StatusAccepted {
		t.Errorf("MarkUnderReview moved accepted abstract to %q", accepted.Status)
	}
}
