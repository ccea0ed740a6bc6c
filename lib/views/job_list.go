package views

import (
	"context"
	"fmt"
	"io"
	"recruit-backend/lib/client"
	"recruit-backend/lib/jobfilter"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	"strings"
)

// JobListView список вакансий по фильтрам из общего состояния
type JobListView struct {
	remote[[]jobpostapimodels.JobPostView]
	store *jobfilter.Store
}

func NewJobListView(api client.Provider, store *jobfilter.Store) *JobListView {
	v := &JobListView{store: store}
	v.name = "job-list"
	v.fetch = func(ctx context.Context) ([]jobpostapimodels.JobPostView, error) {
		return api.ListJobPosts(ctx, jobfilter.JobListSlice(store.State()))
	}
	return v
}

// Watch перезагружает список при каждом изменении фильтров вакансий.
// Загрузки не объединяются и не отменяются: при частых изменениях запросы идут параллельно,
// Loading сбрасывается первым завершившимся, а список остается от ответа, пришедшего последним,
// даже если он относится к более старому фильтру.
func (v *JobListView) Watch(ctx context.Context) (unsubscribe func()) {
	return jobfilter.Subscribe(v.store, jobfilter.JobListSlice, func(jobpostapimodels.JobPostFilter) {
		_ = v.Load(ctx)
	})
}

func (v *JobListView) JobPosts() []jobpostapimodels.JobPostView {
	list, _ := v.get()
	return list
}

func (v *JobListView) Render(w io.Writer) error {
	if v.Loading() {
		_, err := fmt.Fprintln(w, mutedStyle.Render(loadingPlaceholder))
		return err
	}
	sb := strings.Builder{}
	sb.WriteString(titleStyle.Render("Вакансии"))
	sb.WriteString("\n")
	for _, item := range v.JobPosts() {
		sb.WriteString(fmt.Sprintf("%s\t%s\t%d-%d\n", item.Title, item.Location, item.SalaryFrom, item.SalaryTo))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
