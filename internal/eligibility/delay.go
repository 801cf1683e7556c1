package eligibility

import (
	"log"
	"time"

	"quiz-assignment-service/internal/models"
)

// DelayDuration converts a trigger delay (amount, unit) into a
// duration. An unrecognized unit falls back to days.
func DelayDuration(amount int, unit models.DelayUnit) time.Duration {
	switch unit {
	case models.UnitSeconds:
		return time.Duration(amount) * time.Second
	case models.UnitMinutes:
		return time.Duration(amount) * time.Minute
	case models.UnitHours:
		return time.Duration(amount) * time.Hour
	case models.UnitDays:
		return time.Duration(amount) * 24 * time.Hour
	case models.UnitWeeks:
		return time.Duration(amount) * 7 * 24 * time.Hour
	default:
		log.Printf("[ELIGIBILITY] unrecognized delay unit %q, defaulting to days", unit)
		return time.Duration(amount) * 24 * time.Hour
	}
}
