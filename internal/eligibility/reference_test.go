package eligibility

import (
	"testing"
	"time"

	"quiz-assignment-service/internal/models"
)

func TestReferenceDate(t *testing.T) {
	registered := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	middle := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	withHistory := &models.User{
		CreatedAt: registered,
		QuizResults: []models.QuizResult{
			{QuizID: "b", SubmittedAt: middle},
			{QuizID: "a", SubmittedAt: first},
			{QuizID: "c", SubmittedAt: last},
		},
	}
	fresh := &models.User{CreatedAt: registered}

	testCases := []struct {
		name     string
		user     *models.User
		from     models.StartFrom
		expected time.Time
	}{
		{"registration", withHistory, models.StartFromRegistration, registered},
		{"first quiz", withHistory, models.StartFromFirstQuiz, first},
		{"last quiz", withHistory, models.StartFromLastQuiz, last},
		{"first quiz without history falls back", fresh, models.StartFromFirstQuiz, registered},
		{"last quiz without history falls back", fresh, models.StartFromLastQuiz, registered},
		{"unrecognized falls back to registration", withHistory, models.StartFrom("BIRTHDAY"), registered},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReferenceDate(tc.user, tc.from)
			if !got.Equal(tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestReferenceDateIsPure(t *testing.T) {
	user := &models.User{
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		QuizResults: []models.QuizResult{
			{QuizID: "a", SubmittedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
			{QuizID: "b", SubmittedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	firstCall := ReferenceDate(user, models.StartFromFirstQuiz)
	secondCall := ReferenceDate(user, models.StartFromFirstQuiz)
	if !firstCall.Equal(secondCall) {
		t.Errorf("Expected identical results, got %v then %v", firstCall, secondCall)
	}
	if user.QuizResults[0].QuizID != "a" {
		t.Error("Expected quiz history order to be untouched")
	}
}
