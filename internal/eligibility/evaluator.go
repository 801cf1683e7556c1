package eligibility

import (
	"log"
	"time"

	"quiz-assignment-service/internal/models"
)

// Reason explains why a (user, quiz) pair was or was not eligible.
type Reason string

const (
	ReasonEligible      Reason = "ELIGIBLE"
	ReasonQuizInactive  Reason = "QUIZ_INACTIVE"
	ReasonNotYetDue     Reason = "NOT_YET_DUE"
	ReasonOutsideWindow Reason = "OUTSIDE_TIME_FRAME"
	ReasonInsideWindow  Reason = "INSIDE_TIME_FRAME"
	ReasonNoTimeFrame   Reason = "NO_TIME_FRAME"
)

type Decision struct {
	Eligible bool
	Reason   Reason
}

func eligible() Decision {
	return Decision{Eligible: true, Reason: ReasonEligible}
}

func ineligible(r Reason) Decision {
	return Decision{Reason: r}
}

// TriggerDate computes when a TIME_INTERVAL quiz becomes due for the
// user: the resolved reference date plus the configured delay.
func TriggerDate(user *models.User, quiz *models.Quiz) time.Time {
	ref := ReferenceDate(user, quiz.TriggerStartFrom)
	return ref.Add(DelayDuration(quiz.TriggerDelayAmount, quiz.TriggerDelayUnit))
}

// Evaluate decides whether quiz should be presented to user right now.
// pending is the user's existing pending entry for this quiz, nil when
// the pair is being evaluated for a fresh assignment. The checks
// short-circuit in a fixed order: active gate, due gate, time-frame
// policy.
func Evaluate(user *models.User, quiz *models.Quiz, pending *models.PendingQuiz, now time.Time) Decision {
	if !quiz.IsActive {
		return ineligible(ReasonQuizInactive)
	}
	if quiz.TriggerType == models.TriggerTimeInterval {
		var due time.Time
		if pending != nil {
			if pending.ScheduledFor == nil {
				return ineligible(ReasonNotYetDue)
			}
			due = *pending.ScheduledFor
		} else {
			due = TriggerDate(user, quiz)
		}
		if now.Before(due) {
			return ineligible(ReasonNotYetDue)
		}
	}
	return timeFrameDecision(user, quiz, now)
}

func timeFrameDecision(user *models.User, quiz *models.Quiz, now time.Time) Decision {
	switch quiz.TimeFrameHandling {
	case models.AllUsers:
		return eligible()
	case models.RespectTimeFrame:
		return requireInsideWindow(user, now)
	case models.OutsideTimeFrameOnly:
		inside, known := userInsideWindow(user, now)
		if known && inside {
			return ineligible(ReasonInsideWindow)
		}
		// No window at all counts as outside.
		return eligible()
	default:
		log.Printf("[ELIGIBILITY] quiz %s has unrecognized time frame handling %q, using legacy flag",
			quiz.ID, quiz.TimeFrameHandling)
		if quiz.RespectUserTimeFrame {
			return requireInsideWindow(user, now)
		}
		return eligible()
	}
}

func requireInsideWindow(user *models.User, now time.Time) Decision {
	inside, known := userInsideWindow(user, now)
	if !known {
		return ineligible(ReasonNoTimeFrame)
	}
	if !inside {
		return ineligible(ReasonOutsideWindow)
	}
	return eligible()
}
