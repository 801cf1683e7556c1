package eligibility

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"quiz-assignment-service/internal/models"
)

// InTimeFrame reports whether now's time-of-day falls inside the daily
// window [from, to], both given as "HH:MM". A window whose from is
// later than its to wraps around midnight (22:00-06:00 covers the
// night hours).
func InTimeFrame(from, to string, now time.Time) (bool, error) {
	fromMin, err := parseClock(from)
	if err != nil {
		return false, err
	}
	toMin, err := parseClock(to)
	if err != nil {
		return false, err
	}
	nowMin := now.Hour()*60 + now.Minute()
	if fromMin <= toMin {
		return nowMin >= fromMin && nowMin <= toMin, nil
	}
	return nowMin >= fromMin || nowMin <= toMin, nil
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// userInsideWindow reports whether the user is currently inside their
// daily window. known is false when the user has no time-frame at all.
// When the bounds are missing or unparseable the stored precomputed
// status is used instead of a live evaluation.
func userInsideWindow(user *models.User, now time.Time) (inside, known bool) {
	tf := user.TimeFrame
	if tf == nil {
		return false, false
	}
	if tf.From == "" || tf.To == "" {
		return tf.IsWithinTimeFrame, true
	}
	in, err := InTimeFrame(tf.From, tf.To, now)
	if err != nil {
		log.Printf("[ELIGIBILITY] user %s has malformed time frame (%s-%s), using stored status: %v",
			user.ID, tf.From, tf.To, err)
		return tf.IsWithinTimeFrame, true
	}
	return in, true
}
