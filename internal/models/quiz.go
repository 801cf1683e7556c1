package models

import "time"

type TriggerType string

const (
	TriggerTimeInterval    TriggerType = "TIME_INTERVAL"
	TriggerAdminAssignment TriggerType = "ADMIN_ASSIGNMENT"
)

type DelayUnit string

const (
	UnitSeconds DelayUnit = "seconds"
	UnitMinutes DelayUnit = "minutes"
	UnitHours   DelayUnit = "hours"
	UnitDays    DelayUnit = "days"
	UnitWeeks   DelayUnit = "weeks"
)

type StartFrom string

const (
	StartFromRegistration StartFrom = "REGISTRATION"
	StartFromFirstQuiz    StartFrom = "FIRST_QUIZ"
	StartFromLastQuiz     StartFrom = "LAST_QUIZ"
)

type TimeFrameHandling string

const (
	RespectTimeFrame     TimeFrameHandling = "RESPECT_TIMEFRAME"
	AllUsers             TimeFrameHandling = "ALL_USERS"
	OutsideTimeFrameOnly TimeFrameHandling = "OUTSIDE_TIMEFRAME_ONLY"
)

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	QuestionText string   `bson:"question_text" json:"question_text"`
	Type         string   `bson:"type" json:"type"`
	Options      []Option `bson:"options" json:"options"`
}

// Quiz is a quiz definition together with its assignment trigger rules.
// TriggerDelayAmount/Unit and TriggerStartFrom apply only to
// TIME_INTERVAL quizzes; ADMIN_ASSIGNMENT quizzes are pushed by hand.
type Quiz struct {
	ID                 string            `bson:"_id,omitempty" json:"id"`
	Title              string            `bson:"title" json:"title"`
	Description        string            `bson:"description" json:"description"`
	IsActive           bool              `bson:"is_active" json:"is_active"`
	TriggerType        TriggerType       `bson:"trigger_type" json:"trigger_type"`
	TriggerDelayAmount int               `bson:"trigger_delay_amount" json:"trigger_delay_amount"`
	TriggerDelayUnit   DelayUnit         `bson:"trigger_delay_unit" json:"trigger_delay_unit"`
	TriggerStartFrom   StartFrom         `bson:"trigger_start_from" json:"trigger_start_from"`
	TimeFrameHandling  TimeFrameHandling `bson:"time_frame_handling" json:"time_frame_handling"`
	// Legacy flag, consulted only when TimeFrameHandling is unrecognized.
	RespectUserTimeFrame bool       `bson:"respect_user_time_frame" json:"respect_user_time_frame"`
	Questions            []Question `bson:"questions" json:"questions"`
	CreatedAt            time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at" json:"updated_at"`
}
