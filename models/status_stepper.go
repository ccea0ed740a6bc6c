package models

// StatusStepper модель отображения статуса отклика списком шагов
type StatusStepper struct {
	Steps   []ApplicationStatus
	Current ApplicationStatus
	Active  int // -1, если статус не входит в список шагов
}

func NewStatusStepper(current ApplicationStatus) StatusStepper {
	return StatusStepper{
		Steps:   ApplicationSteps(),
		Current: current,
		Active:  current.StepIndex(),
	}
}

// Select меняет только отображаемый шаг, статус отклика не сохраняется
func (s *StatusStepper) Select(idx int) bool {
	if idx < 0 || idx >= len(s.Steps) {
		return false
	}
	s.Active = idx
	return true
}

func (s StatusStepper) ActiveStatus() (ApplicationStatus, bool) {
	if s.Active < 0 || s.Active >= len(s.Steps) {
		return "", false
	}
	return s.Steps[s.Active], true
}
