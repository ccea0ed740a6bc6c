package models

type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "SUBMITTED"
	ApplicationReviewed    ApplicationStatus = "REVIEWED"
	ApplicationInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationAccepted    ApplicationStatus = "ACCEPTED"
)

// порядок шагов при отображении
var applicationSteps = []ApplicationStatus{
	ApplicationSubmitted,
	ApplicationReviewed,
	ApplicationInterviewed,
	ApplicationRejected,
	ApplicationAccepted,
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationSubmitted:   "Отклик отправлен",
	ApplicationReviewed:    "Резюме просмотрено",
	ApplicationInterviewed: "Собеседование пройдено",
	ApplicationRejected:    "Отказ",
	ApplicationAccepted:    "Оффер",
}

// допустимые переходы, повторная установка текущего статуса разрешена всегда
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationSubmitted:   {ApplicationReviewed, ApplicationRejected},
	ApplicationReviewed:    {ApplicationInterviewed, ApplicationRejected},
	ApplicationInterviewed: {ApplicationAccepted, ApplicationRejected},
	ApplicationRejected:    {},
	ApplicationAccepted:    {},
}

func ApplicationSteps() []ApplicationStatus {
	result := make([]ApplicationStatus, len(applicationSteps))
	copy(result, applicationSteps)
	return result
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationTransitions[s]
	return exist
}

func (s ApplicationStatus) IsTerminal() bool {
	next, exist := applicationTransitions[s]
	return exist && len(next) == 0
}

// StepIndex позиция статуса в списке шагов, -1 для неизвестного статуса
func (s ApplicationStatus) StepIndex() int {
	for idx, step := range applicationSteps {
		if step == s {
			return idx
		}
	}
	return -1
}

func (s ApplicationStatus) CanTransitionTo(to ApplicationStatus) bool {
	if !s.IsValid() || !to.IsValid() {
		return false
	}
	if s == to {
		return true
	}
	for _, next := range applicationTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
