package abstracts

import (
	"math"
	"testing"
)

func TestRecalculateAverage(t *testing.T) {
	a := &Abstract{}
	if got := a.RecalculateAverage(); got != 0 {
		t.Errorf("average of no reviews = %v, want 0", got)
	}

	a.Reviews = []Review{{Score: 6}, {Score: 8}}
	if got := a.RecalculateAverage(); got != 7.0 {
		t.Errorf("average of 6 and 8 = %v, want 7.0", got)
	}

	a.Reviews = []Review{{Score: 1}, {Score: 2}, {Score: 2}}
	want := 5.0 / 3.0
	if got := a.RecalculateAverage(); math.Abs(got-want) > 1e-9 {
		t.Errorf("average = %v, want %v", got, want)
	}
	if a.AverageScore != a.RecalculateAverage() {
		t.Error("AverageScore field not kept in sync")
	}
}

func TestMessageForCoversEveryStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusUnderReview, StatusAccepted, StatusRejected} {
		if MessageFor(status) == "" {
			t.Errorf("MessageFor(%q) is empty", status)
		}
	}
	if MessageFor("bogus") != "" {
		t.Error("MessageFor should be empty for unknown status")
	}
	if MessageFor(StatusAccepted) == MessageFor(StatusRejected) {
		t.Error("accepted and rejected share a message")
	}
}

func TestIsValidScore(t *testing.T) {
	for score, want := range map[int]bool{0: false, 1: true, 5: true, 10: true, 11: false, -3: false} {
		if got := IsValidScore(score); got != want {
			t.Errorf("IsValidScore(%d) = %v, want %v", score, got, want)
		}
	}
}

func TestDepartmentValidation(t *testing.T) {
	if !IsValidDepartment("cardiology") {
		t.Error("cardiology rejected")
	}
	if !IsValidDepartment(DepartmentOtherKey) {
		t.Error("other rejected")
	}
	if IsValidDepartment("astrology") {
		t.Error("unknown department accepted")
	}
}

func TestDepartmentLabel(t *testing.T) {
	a := &Abstract{Department: "neurology"}
	if a.DepartmentLabel() != "neurology" {
		t.Errorf("label = %q", a.DepartmentLabel())
	}

	a = &Abstract{Department: DepartmentOtherKey, DepartmentOther: "Medical Physics"}
	if a.DepartmentLabel() != "Medical Physics" {
		t.Errorf("label = %q, want override", a.DepartmentLabel())
	}
}
