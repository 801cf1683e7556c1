package eligibility

import (
	"log"
	"time"

	"quiz-assignment-service/internal/models"
)

// ReferenceDate resolves the anchor timestamp the trigger delay counts
// from. FIRST_QUIZ and LAST_QUIZ fall back to the registration date
// when the user has no completed quizzes; an unrecognized value falls
// back to REGISTRATION.
func ReferenceDate(user *models.User, from models.StartFrom) time.Time {
	switch from {
	case models.StartFromRegistration:
		return user.CreatedAt
	case models.StartFromFirstQuiz:
		if t, ok := earliestResult(user.QuizResults); ok {
			return t
		}
		return user.CreatedAt
	case models.StartFromLastQuiz:
		if t, ok := latestResult(user.QuizResults); ok {
			return t
		}
		return user.CreatedAt
	default:
		log.Printf("[ELIGIBILITY] unrecognized trigger start %q, defaulting to registration", from)
		return user.CreatedAt
	}
}

func earliestResult(results []models.QuizResult) (time.Time, bool) {
	if len(results) == 0 {
		return time.Time{}, false
	}
	t := results[0].SubmittedAt
	for _, r := range results[1:] {
		if r.SubmittedAt.Before(t) {
			t = r.SubmittedAt
		}
	}
	return t, true
}

func latestResult(results []models.QuizResult) (time.Time, bool) {
	if len(results) == 0 {
		return time.Time{}, false
	}
	t := results[0].SubmittedAt
	for _, r := range results[1:] {
		if r.SubmittedAt.After(t) {
			t = r.SubmittedAt
		}
	}
	return t, true
}
