package models

import (
	"testing"
	"time"
)

func TestUserQuizLookups(t *testing.T) {
	now := time.Now()
	user := &User{
		ID:        "user-1",
		CreatedAt: now.AddDate(0, 0, -30),
		PendingQuizzes: []PendingQuiz{
			{QuizID: "pending-1", AssignedAt: now},
		},
		QuizResults: []QuizResult{
			{QuizID: "done-1", SubmittedAt: now},
		},
		SkippedQuizzes: []SkippedQuiz{
			{QuizID: "skipped-1", SkippedAt: now},
		},
	}

	if user.PendingFor("pending-1") == nil {
		t.Error("Expected pending entry for pending-1")
	}
	if user.PendingFor("done-1") != nil {
		t.Error("Expected no pending entry for done-1")
	}
	if !user.HasCompleted("done-1") {
		t.Error("Expected done-1 to be completed")
	}
	if user.HasCompleted("pending-1") {
		t.Error("Expected pending-1 to not be completed")
	}
	if !user.HasSkipped("skipped-1") {
		t.Error("Expected skipped-1 to be skipped")
	}
	if user.HasSkipped("done-1") {
		t.Error("Expected done-1 to not be skipped")
	}
}

func TestPendingForReturnsMutableEntry(t *testing.T) {
	user := &User{
		PendingQuizzes: []PendingQuiz{{QuizID: "quiz-1"}},
	}
	p := user.PendingFor("quiz-1")
	p.IsAvailable = true
	if !user.PendingQuizzes[0].IsAvailable {
		t.Error("Expected PendingFor to reference the stored entry")
	}
}
