package eligibility

import (
	"testing"
	"time"

	"quiz-assignment-service/internal/models"
)

func intervalQuiz(handling models.TimeFrameHandling) *models.Quiz {
	return &models.Quiz{
		ID:                 "quiz-1",
		IsActive:           true,
		TriggerType:        models.TriggerTimeInterval,
		TriggerDelayAmount: 1,
		TriggerDelayUnit:   models.UnitDays,
		TriggerStartFrom:   models.StartFromRegistration,
		TimeFrameHandling:  handling,
	}
}

func userRegisteredAt(t time.Time) *models.User {
	return &models.User{ID: "user-1", CreatedAt: t}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestEvaluateActiveGate(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	quiz := intervalQuiz(models.AllUsers)
	quiz.IsActive = false

	d := Evaluate(userRegisteredAt(now.AddDate(0, 0, -7)), quiz, nil, now)
	if d.Eligible {
		t.Error("Expected inactive quiz to be ineligible")
	}
	if d.Reason != ReasonQuizInactive {
		t.Errorf("Expected reason %s, got %s", ReasonQuizInactive, d.Reason)
	}
}

func TestEvaluateDueGate(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		registeredAt time.Time
		pending      *models.PendingQuiz
		wantEligible bool
		wantReason   Reason
	}{
		{
			"fresh pair not yet due",
			now.Add(-time.Hour),
			nil,
			false, ReasonNotYetDue,
		},
		{
			"fresh pair past trigger date",
			now.AddDate(0, 0, -2),
			nil,
			true, ReasonEligible,
		},
		{
			"pending with future scheduled date",
			now.AddDate(0, 0, -30),
			&models.PendingQuiz{QuizID: "quiz-1", ScheduledFor: ptrTime(now.Add(time.Hour))},
			false, ReasonNotYetDue,
		},
		{
			"pending with past scheduled date",
			now.Add(-time.Hour),
			&models.PendingQuiz{QuizID: "quiz-1", ScheduledFor: ptrTime(now.Add(-time.Minute))},
			true, ReasonEligible,
		},
		{
			"pending without scheduled date",
			now.AddDate(0, 0, -30),
			&models.PendingQuiz{QuizID: "quiz-1"},
			false, ReasonNotYetDue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(userRegisteredAt(tc.registeredAt), intervalQuiz(models.AllUsers), tc.pending, now)
			if d.Eligible != tc.wantEligible || d.Reason != tc.wantReason {
				t.Errorf("Expected (%v, %s), got (%v, %s)", tc.wantEligible, tc.wantReason, d.Eligible, d.Reason)
			}
		})
	}
}

func TestEvaluateAdminAssignmentSkipsDueCheck(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	quiz := &models.Quiz{
		ID:                "quiz-2",
		IsActive:          true,
		TriggerType:       models.TriggerAdminAssignment,
		TimeFrameHandling: models.AllUsers,
	}
	// Registered a second ago, no delay configured to have elapsed.
	d := Evaluate(userRegisteredAt(now.Add(-time.Second)), quiz, nil, now)
	if !d.Eligible {
		t.Errorf("Expected admin assignment to be eligible, got %s", d.Reason)
	}
}

func TestEvaluateTimeFramePolicies(t *testing.T) {
	noon := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	registered := noon.AddDate(0, 0, -7)

	dayWindow := &models.TimeFrame{From: "09:00", To: "17:00"}

	testCases := []struct {
		name         string
		handling     models.TimeFrameHandling
		timeFrame    *models.TimeFrame
		now          time.Time
		wantEligible bool
		wantReason   Reason
	}{
		{"all users with window", models.AllUsers, dayWindow, noon, true, ReasonEligible},
		{"all users without window", models.AllUsers, nil, noon, true, ReasonEligible},
		{"respect inside window", models.RespectTimeFrame, dayWindow, noon, true, ReasonEligible},
		{"respect outside window", models.RespectTimeFrame, dayWindow, evening, false, ReasonOutsideWindow},
		{"respect without window", models.RespectTimeFrame, nil, noon, false, ReasonNoTimeFrame},
		{"outside-only inside window", models.OutsideTimeFrameOnly, dayWindow, noon, false, ReasonInsideWindow},
		{"outside-only outside window", models.OutsideTimeFrameOnly, dayWindow, evening, true, ReasonEligible},
		{"outside-only without window", models.OutsideTimeFrameOnly, nil, noon, true, ReasonEligible},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := intervalQuiz(tc.handling)
			user := userRegisteredAt(registered)
			user.TimeFrame = tc.timeFrame
			d := Evaluate(user, quiz, nil, tc.now)
			if d.Eligible != tc.wantEligible || d.Reason != tc.wantReason {
				t.Errorf("Expected (%v, %s), got (%v, %s)", tc.wantEligible, tc.wantReason, d.Eligible, d.Reason)
			}
		})
	}
}

func TestEvaluateLegacyFallback(t *testing.T) {
	noon := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	registered := noon.AddDate(0, 0, -7)
	dayWindow := &models.TimeFrame{From: "09:00", To: "17:00"}

	legacy := intervalQuiz(models.TimeFrameHandling("SOMETIMES"))
	legacy.RespectUserTimeFrame = true

	user := userRegisteredAt(registered)
	user.TimeFrame = dayWindow

	if d := Evaluate(user, legacy, nil, noon); !d.Eligible {
		t.Errorf("Expected legacy respect flag to pass inside window, got %s", d.Reason)
	}
	if d := Evaluate(user, legacy, nil, evening); d.Eligible {
		t.Error("Expected legacy respect flag to fail outside window")
	}

	permissive := intervalQuiz(models.TimeFrameHandling(""))
	permissive.RespectUserTimeFrame = false
	if d := Evaluate(user, permissive, nil, evening); !d.Eligible {
		t.Errorf("Expected legacy non-respect quiz to pass, got %s", d.Reason)
	}
}

func TestTriggerDate(t *testing.T) {
	registered := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	quiz := intervalQuiz(models.AllUsers)
	quiz.TriggerDelayAmount = 2
	quiz.TriggerDelayUnit = models.UnitWeeks

	got := TriggerDate(userRegisteredAt(registered), quiz)
	want := registered.Add(14 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
