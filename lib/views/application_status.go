package views

import (
	"context"
	"fmt"
	"io"
	"recruit-backend/lib/client"
	"recruit-backend/models"
	applicationapimodels "recruit-backend/models/api/application"
	"strings"
	"sync"
)

// ApplicationStatusView статус отклика списком шагов
type ApplicationStatusView struct {
	remote[applicationapimodels.ApplicationView]

	stepperMu sync.Mutex
	stepper   *models.StatusStepper
}

func NewApplicationStatusView(api client.Provider, applicationID string) *ApplicationStatusView {
	v := &ApplicationStatusView{}
	v.name = "application-status"
	v.fetch = func(ctx context.Context) (applicationapimodels.ApplicationView, error) {
		return api.GetApplication(ctx, applicationID)
	}
	return v
}

func (v *ApplicationStatusView) Load(ctx context.Context) error {
	if err := v.remote.Load(ctx); err != nil {
		return err
	}
	rec, _ := v.get()
	stepper := models.NewStatusStepper(rec.Status)
	v.stepperMu.Lock()
	v.stepper = &stepper
	v.stepperMu.Unlock()
	return nil
}

// Stepper пустой список шагов, пока отклик не загружен
func (v *ApplicationStatusView) Stepper() models.StatusStepper {
	v.stepperMu.Lock()
	defer v.stepperMu.Unlock()
	if v.stepper == nil {
		return models.StatusStepper{Active: -1}
	}
	result := *v.stepper
	result.Steps = append([]models.ApplicationStatus(nil), v.stepper.Steps...)
	return result
}

// Select выбор шага пользователем, на сервер не отправляется
func (v *ApplicationStatusView) Select(idx int) bool {
	v.stepperMu.Lock()
	defer v.stepperMu.Unlock()
	if v.stepper == nil {
		return false
	}
	return v.stepper.Select(idx)
}

func (v *ApplicationStatusView) Render(w io.Writer) error {
	if v.Loading() {
		_, err := fmt.Fprintln(w, mutedStyle.Render(loadingPlaceholder))
		return err
	}
	stepper := v.Stepper()
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Статус отклика"))
	sb.WriteString("\n")
	for idx, step := range stepper.Steps {
		line := fmt.Sprintf("%d. %s", idx+1, step.ToHuman())
		if idx == stepper.Active {
			sb.WriteString(activeStyle.Render("> " + line))
		} else {
			sb.WriteString(mutedStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	if stepper.Active < 0 && stepper.Current != "" {
		sb.WriteString(fmt.Sprintf("неизвестный статус: %s\n", stepper.Current))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
