package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	userapimodels "recruit-backend/models/api/user"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider клиент api бэк-офиса
type Provider interface {
	GetUsers(ctx context.Context) ([]userapimodels.UserView, error)
	GetUserByEmail(ctx context.Context, email string) (userapimodels.UserView, error)
	ListJobPosts(ctx context.Context, filter jobpostapimodels.JobPostFilter) ([]jobpostapimodels.JobPostView, error)
	JobPostCandidates(ctx context.Context, jobPostID string) ([]applicationapimodels.ApplicationView, error)
	GetApplication(ctx context.Context, id string) (applicationapimodels.ApplicationView, error)
	ChangeApplicationStatus(ctx context.Context, id string, change applicationapimodels.StatusChange) (applicationapimodels.ApplicationView, error)
}

const (
	usersPath             string = "%s/api/v1/getUsers"
	userByEmailPath       string = "%s/api/v1/getUserByEmail?email=%s"
	jobPostListPath       string = "%s/api/v1/app/jobposts/list"
	candidatesPath        string = "%s/api/v1/app/jobposts/%s/candidates"
	applicationPath       string = "%s/api/v1/app/applications/%s"
	applicationStatusPath string = "%s/api/v1/app/applications/%s/status"
)

const defaultHTTPTimeout = 30 * time.Second

// Error ответ api с кодом не 2xx
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ошибка api (%d): %s", e.StatusCode, e.Message)
}

func NewProvider(host, accessToken string) Provider {
	return &impl{
		host:        strings.TrimRight(host, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

type impl struct {
	host        string
	accessToken string
	httpClient  *http.Client
}

func (i impl) GetUsers(ctx context.Context) ([]userapimodels.UserView, error) {
	list := []userapimodels.UserView{}
	err := i.do(ctx, http.MethodGet, fmt.Sprintf(usersPath, i.host), nil, &list)
	return list, err
}

func (i impl) GetUserByEmail(ctx context.Context, email string) (userapimodels.UserView, error) {
	user := userapimodels.UserView{}
	err := i.do(ctx, http.MethodGet, fmt.Sprintf(userByEmailPath, i.host, url.QueryEscape(email)), nil, &user)
	return user, err
}

func (i impl) ListJobPosts(ctx context.Context, filter jobpostapimodels.JobPostFilter) ([]jobpostapimodels.JobPostView, error) {
	list := []jobpostapimodels.JobPostView{}
	err := i.do(ctx, http.MethodPost, fmt.Sprintf(jobPostListPath, i.host), filter, &list)
	return list, err
}

func (i impl) JobPostCandidates(ctx context.Context, jobPostID string) ([]applicationapimodels.ApplicationView, error) {
	list := []applicationapimodels.ApplicationView{}
	err := i.do(ctx, http.MethodGet, fmt.Sprintf(candidatesPath, i.host, url.PathEscape(jobPostID)), nil, &list)
	return list, err
}

func (i impl) GetApplication(ctx context.Context, id string) (applicationapimodels.ApplicationView, error) {
	rec := applicationapimodels.ApplicationView{}
	err := i.do(ctx, http.MethodGet, fmt.Sprintf(applicationPath, i.host, url.PathEscape(id)), nil, &rec)
	return rec, err
}

func (i impl) ChangeApplicationStatus(ctx context.Context, id string, change applicationapimodels.StatusChange) (applicationapimodels.ApplicationView, error) {
	rec := applicationapimodels.ApplicationView{}
	err := i.do(ctx, http.MethodPut, fmt.Sprintf(applicationStatusPath, i.host, url.PathEscape(id)), change, &rec)
	return rec, err
}

func (i impl) do(ctx context.Context, method, uri string, request, data interface{}) error {
	logger := log.
		WithField("method", method).
		WithField("external_request", uri)
	var body io.Reader
	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			return errors.Wrap(err, "ошибка сериализации запроса")
		}
		body = bytes.NewReader(payload)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	r.Header.Add("Content-Type", "application/json")
	if i.accessToken != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.accessToken))
	}
	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса")
		return errors.Wrap(err, "ошибка отправки запроса")
	}
	defer response.Body.Close()
	// читаем Body только 1 раз
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "ошибка чтения ответа")
	}
	logger = logger.WithField("response_status_code", response.StatusCode)

	envelope := apimodels.Response{Data: data}
	unmErr := json.Unmarshal(responseBody, &envelope)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := envelope.Message
		if unmErr != nil || message == "" {
			message = http.StatusText(response.StatusCode)
		}
		logger.WithField("response_body", string(responseBody)).Warn("api вернул ошибку")
		return &Error{StatusCode: response.StatusCode, Message: message}
	}
	if unmErr != nil {
		logger.WithError(unmErr).Error("ошибка разбора ответа")
		return errors.Wrap(unmErr, "ошибка разбора ответа")
	}
	return nil
}
