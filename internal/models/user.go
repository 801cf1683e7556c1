package models

import "time"

type AssignmentType string

const (
	AssignmentAdminManual  AssignmentType = "ADMIN_MANUAL"
	AssignmentTimeInterval AssignmentType = "TIME_INTERVAL"
)

// TimeFrame is a daily recurring availability window. From/To are
// "HH:MM" clock strings; IsWithinTimeFrame is the last precomputed
// window status, used only when the bounds cannot be evaluated live.
type TimeFrame struct {
	From              string `bson:"from" json:"from"`
	To                string `bson:"to" json:"to"`
	IsWithinTimeFrame bool   `bson:"is_within_time_frame" json:"is_within_time_frame"`
}

type QuizResult struct {
	QuizID      string    `bson:"quiz_id" json:"quiz_id"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
	Score       float64   `bson:"score" json:"score"`
}

type PendingQuiz struct {
	QuizID         string         `bson:"quiz_id" json:"quiz_id"`
	AssignedAt     time.Time      `bson:"assigned_at" json:"assigned_at"`
	AssignedBy     string         `bson:"assigned_by" json:"assigned_by"`
	AssignmentType AssignmentType `bson:"assignment_type" json:"assignment_type"`
	ScheduledFor   *time.Time     `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	IsAvailable    bool           `bson:"is_available" json:"is_available"`
}

type SkippedQuiz struct {
	QuizID    string    `bson:"quiz_id" json:"quiz_id"`
	SkippedAt time.Time `bson:"skipped_at" json:"skipped_at"`
	Reason    string    `bson:"reason" json:"reason"`
}

type User struct {
	ID             string        `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	QuizResults    []QuizResult  `bson:"quiz_results" json:"quiz_results"`
	PendingQuizzes []PendingQuiz `bson:"pending_quizzes" json:"pending_quizzes"`
	SkippedQuizzes []SkippedQuiz `bson:"skipped_quizzes" json:"skipped_quizzes"`
	TimeFrame      *TimeFrame    `bson:"time_frame,omitempty" json:"time_frame,omitempty"`
}

// PendingFor returns the user's pending entry for quizID, or nil.
func (u *User) PendingFor(quizID string) *PendingQuiz {
	for i := range u.PendingQuizzes {
		if u.PendingQuizzes[i].QuizID == quizID {
			return &u.PendingQuizzes[i]
		}
	}
	return nil
}

func (u *User) HasCompleted(quizID string) bool {
	for i := range u.QuizResults {
		if u.QuizResults[i].QuizID == quizID {
			return true
		}
	}
	return false
}

func (u *User) HasSkipped(quizID string) bool {
	for i := range u.SkippedQuizzes {
		if u.SkippedQuizzes[i].QuizID == quizID {
			return true
		}
	}
	return false
}
