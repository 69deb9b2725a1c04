package entity

import "time"

// Step so'rov oqimidagi bosqich
type Step int

const (
	StepIdle Step = iota
	StepPhone
	StepName
	StepLocation
	StepCategorySelect
	StepServiceSelect
	StepDescription
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepPhone:
		return "phone"
	case StepName:
		return "name"
	case StepLocation:
		return "location"
	case StepCategorySelect:
		return "category_select"
	case StepServiceSelect:
		return "service_select"
	case StepDescription:
		return "description"
	default:
		return "unknown"
	}
}

// RequestSession per-chat holatni saqlaydi: joriy bosqich va yig'ilgan maydonlar.
// Only the handler of the current step mutates a session.
type RequestSession struct {
	ChatID        int64
	Username      string
	Step          Step
	Phone         string
	Name          string
	Location      string
	CategoryKey   string
	CategoryLabel string
	ServiceKey    string
	ServiceLabel  string
	Description   string
	StartedAt     time.Time
	LastUpdate    time.Time
}

// Active reports whether the session is attached to a step.
func (s *RequestSession) Active() bool {
	return s != nil && s.Step != StepIdle
}
