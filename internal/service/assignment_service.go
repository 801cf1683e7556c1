package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"quiz-assignment-service/internal/eligibility"
	"quiz-assignment-service/internal/models"
	"quiz-assignment-service/internal/repository"
)

// ErrNoAssigner aborts a whole batch run: automated assignments cannot
// be created without an identity to attribute them to.
var ErrNoAssigner = errors.New("service: no system assigner configured")

// ErrAlreadyAssigned is returned when a manual assignment targets a
// quiz the user already has pending.
var ErrAlreadyAssigned = errors.New("service: quiz already assigned to user")

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	AppendPendingQuiz(ctx context.Context, userID string, entry models.PendingQuiz) (bool, error)
	RecordResult(ctx context.Context, userID string, result models.QuizResult) error
	RecordSkip(ctx context.Context, userID string, skip models.SkippedQuiz) error
}

type QuizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	FindActiveByTriggerType(ctx context.Context, t models.TriggerType) ([]models.Quiz, error)
}

type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

type AssignmentService struct {
	Users      UserStore
	Quizzes    QuizStore
	publisher  EventPublisher
	assignerID string
}

func NewAssignmentService(users UserStore, quizzes QuizStore, publisher EventPublisher, assignerID string) *AssignmentService {
	return &AssignmentService{
		Users:      users,
		Quizzes:    quizzes,
		publisher:  publisher,
		assignerID: assignerID,
	}
}

// ActiveQuizForUser returns the quiz the user should see right now:
// the oldest-assigned pending quiz that passes eligibility, or nil
// when none does. Pending entries referencing deleted quizzes are
// dropped with a warning.
func (s *AssignmentService) ActiveQuizForUser(ctx context.Context, userID string) (*models.Quiz, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		pending models.PendingQuiz
		quiz    *models.Quiz
	}
	var candidates []candidate
	for _, p := range user.PendingQuizzes {
		quiz, err := s.Quizzes.FindByID(ctx, p.QuizID)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("[ASSIGNMENT] user %s has pending entry for missing quiz %s, skipping", userID, p.QuizID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load quiz %s: %w", p.QuizID, err)
		}
		candidates = append(candidates, candidate{pending: p, quiz: quiz})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].pending.AssignedAt.Before(candidates[j].pending.AssignedAt)
	})

	now := time.Now()
	for i := range candidates {
		d := eligibility.Evaluate(user, candidates[i].quiz, &candidates[i].pending, now)
		if d.Eligible {
			return candidates[i].quiz, nil
		}
	}
	return nil, nil
}

// RunAutoAssignment sweeps all users against all active TIME_INTERVAL
// quizzes and creates pending entries for newly due pairs. Safe to
// re-run: pairs already pending, completed or skipped are never
// assigned again. Returns the number of assignments created.
func (s *AssignmentService) RunAutoAssignment(ctx context.Context) (int, error) {
	if s.assignerID == "" {
		return 0, ErrNoAssigner
	}

	quizzes, err := s.Quizzes.FindActiveByTriggerType(ctx, models.TriggerTimeInterval)
	if err != nil {
		return 0, fmt.Errorf("load interval quizzes: %w", err)
	}
	users, err := s.Users.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}

	now := time.Now()
	created := 0
	for i := range users {
		n, err := s.assignDueQuizzes(ctx, &users[i], quizzes, now)
		if err != nil {
			log.Printf("[ASSIGNMENT] user %s: %v, continuing batch", users[i].ID, err)
			continue
		}
		created += n
	}

	if s.publisher != nil {
		s.publisher.Publish("quiz.batch.finished", map[string]interface{}{
			"created":  created,
			"users":    len(users),
			"quizzes":  len(quizzes),
			"ran_at":   now,
			"assigner": s.assignerID,
		})
	}
	return created, nil
}

func (s *AssignmentService) assignDueQuizzes(ctx context.Context, user *models.User, quizzes []models.Quiz, now time.Time) (int, error) {
	created := 0
	for i := range quizzes {
		quiz := &quizzes[i]
		if user.PendingFor(quiz.ID) != nil || user.HasCompleted(quiz.ID) || user.HasSkipped(quiz.ID) {
			continue
		}
		d := eligibility.Evaluate(user, quiz, nil, now)
		if !d.Eligible {
			continue
		}
		trigger := eligibility.TriggerDate(user, quiz)
		entry := models.PendingQuiz{
			QuizID:         quiz.ID,
			AssignedAt:     now,
			AssignedBy:     s.assignerID,
			AssignmentType: models.AssignmentTimeInterval,
			ScheduledFor:   &trigger,
			IsAvailable:    true,
		}
		inserted, err := s.Users.AppendPendingQuiz(ctx, user.ID, entry)
		if err != nil {
			log.Printf("[ASSIGNMENT] append quiz %s for user %s: %v", quiz.ID, user.ID, err)
			continue
		}
		if !inserted {
			// Lost the race against a concurrent run, the entry exists.
			continue
		}
		created++
		if s.publisher != nil {
			s.publisher.Publish("quiz.assignment.created", map[string]interface{}{
				"user_id":       user.ID,
				"quiz_id":       quiz.ID,
				"scheduled_for": trigger,
				"assigned_by":   s.assignerID,
			})
		}
	}
	return created, nil
}

// AssignManually creates an ADMIN_MANUAL pending entry attributed to
// the acting admin.
func (s *AssignmentService) AssignManually(ctx context.Context, userID, quizID, assignedBy string, scheduledFor *time.Time) error {
	if _, err := s.Quizzes.FindByID(ctx, quizID); err != nil {
		return err
	}
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		return err
	}
	entry := models.PendingQuiz{
		QuizID:         quizID,
		AssignedAt:     time.Now(),
		AssignedBy:     assignedBy,
		AssignmentType: models.AssignmentAdminManual,
		ScheduledFor:   scheduledFor,
		IsAvailable:    true,
	}
	inserted, err := s.Users.AppendPendingQuiz(ctx, userID, entry)
	if err != nil {
		return err
	}
	if !inserted {
		return ErrAlreadyAssigned
	}
	if s.publisher != nil {
		s.publisher.Publish("quiz.assignment.created", map[string]interface{}{
			"user_id":     userID,
			"quiz_id":     quizID,
			"assigned_by": assignedBy,
		})
	}
	return nil
}

// CompleteQuiz consumes the user's pending entry into a quiz result.
func (s *AssignmentService) CompleteQuiz(ctx context.Context, userID, quizID string, score float64) error {
	result := models.QuizResult{
		QuizID:      quizID,
		SubmittedAt: time.Now(),
		Score:       score,
	}
	if err := s.Users.RecordResult(ctx, userID, result); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.Publish("quiz.assignment.completed", map[string]interface{}{
			"user_id": userID,
			"quiz_id": quizID,
			"score":   score,
		})
	}
	return nil
}

// SkipQuiz consumes the user's pending entry into a skip marker.
func (s *AssignmentService) SkipQuiz(ctx context.Context, userID, quizID, reason string) error {
	skip := models.SkippedQuiz{
		QuizID:    quizID,
		SkippedAt: time.Now(),
		Reason:    reason,
	}
	if err := s.Users.RecordSkip(ctx, userID, skip); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.Publish("quiz.assignment.skipped", map[string]interface{}{
			"user_id": userID,
			"quiz_id": quizID,
			"reason":  reason,
		})
	}
	return nil
}
