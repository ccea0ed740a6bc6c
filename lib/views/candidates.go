package views

import (
	"context"
	"fmt"
	"io"
	"recruit-backend/lib/client"
	applicationapimodels "recruit-backend/models/api/application"
	userapimodels "recruit-backend/models/api/user"
	"strings"
)

// CandidateGridView все зарегистрированные пользователи
type CandidateGridView struct {
	remote[[]userapimodels.UserView]
}

func NewCandidateGridView(api client.Provider) *CandidateGridView {
	v := &CandidateGridView{}
	v.name = "candidate-grid"
	v.fetch = api.GetUsers
	return v
}

func (v *CandidateGridView) Users() []userapimodels.UserView {
	list, _ := v.get()
	return list
}

func (v *CandidateGridView) Render(w io.Writer) error {
	if v.Loading() {
		_, err := fmt.Fprintln(w, mutedStyle.Render(loadingPlaceholder))
		return err
	}
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Кандидаты"))
	sb.WriteString("\n")
	for _, user := range v.Users() {
		sb.WriteString(fmt.Sprintf("%s %s\t%s\t%s\n", user.FirstName, user.LastName, user.Email, user.PhoneNumber))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// JobPostCandidatesView отклики на одну вакансию
type JobPostCandidatesView struct {
	remote[[]applicationapimodels.ApplicationView]
	JobPostID string
}

func NewJobPostCandidatesView(api client.Provider, jobPostID string) *JobPostCandidatesView {
	v := &JobPostCandidatesView{JobPostID: jobPostID}
	v.name = "job-post-candidates"
	v.fetch = func(ctx context.Context) ([]applicationapimodels.ApplicationView, error) {
		return api.JobPostCandidates(ctx, jobPostID)
	}
	return v
}

func (v *JobPostCandidatesView) Applications() []applicationapimodels.ApplicationView {
	list, _ := v.get()
	return list
}

func (v *JobPostCandidatesView) Render(w io.Writer) error {
	if v.Loading() {
		_, err := fmt.Fprintln(w, mutedStyle.Render(loadingPlaceholder))
		return err
	}
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Кандидаты по вакансии"))
	sb.WriteString("\n")
	for _, item := range v.Applications() {
		name := item.CandidateID
		if item.Candidate != nil {
			name = item.Candidate.FirstName + " " + item.Candidate.LastName
		}
		sb.WriteString(fmt.Sprintf("%s\t%s\t%s\n", name, item.Status.ToHuman(), item.SubmissionDate.Format("02.01.2006")))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
