package views

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"recruit-backend/lib/client"
	"recruit-backend/lib/jobfilter"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	userapimodels "recruit-backend/models/api/user"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	calls   atomic.Int32
	fail    atomic.Bool
	release chan struct{}

	mu      sync.Mutex
	filters []jobpostapimodels.JobPostFilter
	status  models.ApplicationStatus
}

func newTestServer() *testServer {
	s := &testServer{status: models.ApplicationReviewed}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		if s.release != nil {
			<-s.release
		}
		w.Header().Set("Content-Type", "application/json")
		if s.fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(apimodels.NewError("ошибка"))
			return
		}
		switch r.URL.Path {
		case "/api/v1/getUsers":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]userapimodels.UserView{
				{ID: "1", FirstName: "Анна", LastName: "Смирнова", Email: "anna@example.com"},
			}))
		case "/api/v1/app/jobposts/jp-1/candidates":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]applicationapimodels.ApplicationView{
				{ID: "a-1", Status: models.ApplicationSubmitted, Candidate: &userapimodels.UserView{FirstName: "Анна", LastName: "Смирнова"}},
			}))
		case "/api/v1/app/applications/a-1":
			s.mu.Lock()
			status := s.status
			s.mu.Unlock()
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse(applicationapimodels.ApplicationView{ID: "a-1", Status: status}))
		case "/api/v1/app/jobposts/list":
			filter := jobpostapimodels.JobPostFilter{}
			_ = json.NewDecoder(r.Body).Decode(&filter)
			s.mu.Lock()
			s.filters = append(s.filters, filter)
			s.mu.Unlock()
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]jobpostapimodels.JobPostView{
				{ID: "jp-1", JobPostData: jobpostapimodels.JobPostData{Title: "Go-разработчик", Location: filter.Location}},
			}))
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(apimodels.NewError("не найдено"))
		}
	}))
	return s
}

func TestCandidateGridView(t *testing.T) {
	t.Run(`one fetch per load`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		v := NewCandidateGridView(client.NewProvider(s.URL, ""))
		require.Len(t, v.Users(), 0)
		require.Nil(t, v.Load(context.TODO()))
		require.Equal(t, int32(1), s.calls.Load())
		require.Len(t, v.Users(), 1)

		buf := new(bytes.Buffer)
		require.Nil(t, v.Render(buf))
		require.Contains(t, buf.String(), "anna@example.com")
	})

	t.Run(`failure keeps previous state without retry`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		v := NewCandidateGridView(client.NewProvider(s.URL, ""))
		require.Nil(t, v.Load(context.TODO()))
		s.fail.Store(true)
		require.NotNil(t, v.Load(context.TODO()))
		require.Equal(t, int32(2), s.calls.Load())
		require.Len(t, v.Users(), 1)
		require.False(t, v.Loading())
	})

	t.Run(`failure on first load stays empty`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		s.fail.Store(true)
		v := NewCandidateGridView(client.NewProvider(s.URL, ""))
		require.NotNil(t, v.Load(context.TODO()))
		require.Len(t, v.Users(), 0)
	})

	t.Run(`loading placeholder`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		s.release = make(chan struct{})
		v := NewCandidateGridView(client.NewProvider(s.URL, ""))
		done := make(chan error, 1)
		go func() { done <- v.Load(context.TODO()) }()
		require.Eventually(t, v.Loading, time.Second, 5*time.Millisecond)

		buf := new(bytes.Buffer)
		require.Nil(t, v.Render(buf))
		require.Contains(t, buf.String(), loadingPlaceholder)

		close(s.release)
		require.Nil(t, <-done)
		require.False(t, v.Loading())
	})
}

func TestJobPostCandidatesView(t *testing.T) {
	s := newTestServer()
	defer s.Close()

	v := NewJobPostCandidatesView(client.NewProvider(s.URL, ""), "jp-1")
	require.Nil(t, v.Load(context.TODO()))
	require.Len(t, v.Applications(), 1)
	buf := new(bytes.Buffer)
	require.Nil(t, v.Render(buf))
	require.Contains(t, buf.String(), "Анна Смирнова")
	require.Contains(t, buf.String(), "Отклик отправлен")

	unknown := NewJobPostCandidatesView(client.NewProvider(s.URL, ""), "jp-2")
	require.NotNil(t, unknown.Load(context.TODO()))
	require.Len(t, unknown.Applications(), 0)
}

func TestApplicationStatusView(t *testing.T) {
	t.Run(`active step and local select`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		v := NewApplicationStatusView(client.NewProvider(s.URL, ""), "a-1")
		require.False(t, v.Select(0))
		require.Nil(t, v.Load(context.TODO()))
		require.Equal(t, 1, v.Stepper().Active)

		require.True(t, v.Select(3))
		require.Equal(t, 3, v.Stepper().Active)
		require.Equal(t, models.ApplicationReviewed, v.Stepper().Current)
		require.Equal(t, int32(1), s.calls.Load())

		buf := new(bytes.Buffer)
		require.Nil(t, v.Render(buf))
		require.Contains(t, buf.String(), "> 4. Отказ")
	})

	t.Run(`unknown status`, func(t *testing.T) {
		s := newTestServer()
		defer s.Close()
		s.status = "HIRED"
		v := NewApplicationStatusView(client.NewProvider(s.URL, ""), "a-1")
		require.Nil(t, v.Load(context.TODO()))
		require.Equal(t, -1, v.Stepper().Active)

		buf := new(bytes.Buffer)
		require.Nil(t, v.Render(buf))
		require.Contains(t, buf.String(), "неизвестный статус: HIRED")
		require.NotContains(t, buf.String(), ">")
	})
}

func TestJobListView(t *testing.T) {
	s := newTestServer()
	defer s.Close()
	store := jobfilter.NewStore(jobfilter.State{})
	v := NewJobListView(client.NewProvider(s.URL, ""), store)
	unsubscribe := v.Watch(context.TODO())

	require.Nil(t, v.Load(context.TODO()))
	store.Dispatch(jobfilter.ToggleSidebar{})
	require.Equal(t, int32(1), s.calls.Load())

	store.Dispatch(jobfilter.SetLocation{Value: "Москва"})
	store.Dispatch(jobfilter.SetSalary{Value: jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}})
	require.Equal(t, int32(3), s.calls.Load())
	require.Equal(t, "Москва", v.JobPosts()[0].Location)

	s.mu.Lock()
	last := s.filters[len(s.filters)-1]
	s.mu.Unlock()
	require.Equal(t, jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}, last.Salary)
	require.Equal(t, "Москва", last.Location)

	unsubscribe()
	store.Dispatch(jobfilter.SetKeyword{Value: "go"})
	require.Equal(t, int32(3), s.calls.Load())
}
