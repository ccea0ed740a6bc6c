package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	userapimodels "recruit-backend/models/api/user"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	var mu sync.Mutex
	var lastAuth string
	var lastFilter jobpostapimodels.JobPostFilter
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		lastAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/getUsers":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]userapimodels.UserView{{ID: "1", Email: "anna@example.com"}}))
		case "/api/v1/getUserByEmail":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(apimodels.NewError("пользователь не найден"))
		case "/api/v1/app/jobposts/list":
			_ = json.NewDecoder(r.Body).Decode(&lastFilter)
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse([]jobpostapimodels.JobPostView{}))
		case "/api/v1/app/applications/42":
			_ = json.NewEncoder(w).Encode(apimodels.NewResponse(applicationapimodels.ApplicationView{ID: "42", Status: models.ApplicationInterviewed, StatusStep: 2}))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}
	}))
	defer server.Close()
	c := NewProvider(server.URL+"/", "token")

	t.Run(`decodes envelope`, func(t *testing.T) {
		list, err := c.GetUsers(context.TODO())
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "anna@example.com", list[0].Email)
		mu.Lock()
		require.Equal(t, "Bearer token", lastAuth)
		mu.Unlock()

		rec, err := c.GetApplication(context.TODO(), "42")
		require.Nil(t, err)
		require.Equal(t, models.ApplicationInterviewed, rec.Status)
	})

	t.Run(`sends filter`, func(t *testing.T) {
		filter := jobpostapimodels.JobPostFilter{Keyword: "go", Salary: jobpostapimodels.SalaryRange{Min: 5000, Max: 10000}}
		list, err := c.ListJobPosts(context.TODO(), filter)
		require.Nil(t, err)
		require.Len(t, list, 0)
		mu.Lock()
		require.Equal(t, filter, lastFilter)
		mu.Unlock()
	})

	t.Run(`api error`, func(t *testing.T) {
		_, err := c.GetUserByEmail(context.TODO(), "nobody@example.com")
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, "пользователь не найден", apiErr.Message)
	})

	t.Run(`non json error`, func(t *testing.T) {
		_, err := c.JobPostCandidates(context.TODO(), "1")
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	})
}
