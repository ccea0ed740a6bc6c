package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	applicationhandler "recruit-backend/lib/application"
	contacthandler "recruit-backend/lib/contact"
	usershandler "recruit-backend/lib/users"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	contactapimodels "recruit-backend/models/api/contact"
	userapimodels "recruit-backend/models/api/user"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	open := func(ctx *fiber.Ctx) error { return ctx.Next() }
	apiV1 := fiber.New()
	InitUserApiRouters(apiV1, open)
	InitContactApiRouters(apiV1, open)
	backOffice := fiber.New()
	apiV1.Mount("/app", backOffice)
	InitJobPostApiRouters(backOffice)
	InitApplicationApiRouters(backOffice)
	app := fiber.New()
	app.Mount("/api/v1", apiV1)
	return app
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, contentType string, body io.Reader) (*http.Response, envelope) {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req)
	require.Nil(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	result := envelope{}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.Nil(t, json.Unmarshal(raw, &result))
	}
	return resp, result
}

func TestContactApi(t *testing.T) {
	contacthandler.Instance = &fakeContacts{recs: map[string]contactapimodels.ContactView{}}
	app := newTestApp()

	t.Run(`create then list`, func(t *testing.T) {
		body := `{"username":"anna","email":"anna@example.com","subject":"Вакансия","message":"Здравствуйте"}`
		resp, result := doRequest(t, app, http.MethodPost, "/api/v1/create", fiber.MIMEApplicationJSON, strings.NewReader(body))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.Equal(t, apimodels.StatusSuccess, result.Status)
		created := contactapimodels.ContactView{}
		require.Nil(t, json.Unmarshal(result.Data, &created))
		require.NotEmpty(t, created.ID)

		resp, result = doRequest(t, app, http.MethodGet, "/api/v1/contacts", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list := []contactapimodels.ContactView{}
		require.Nil(t, json.Unmarshal(result.Data, &list))
		require.Len(t, list, 1)
		require.Equal(t, "Здравствуйте", list[0].Message)

		resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/contact/"+created.ID, "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp, _ = doRequest(t, app, http.MethodDelete, "/api/v1/contact/"+created.ID, "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp, _ = doRequest(t, app, http.MethodDelete, "/api/v1/contact/"+created.ID, "", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`validation error`, func(t *testing.T) {
		resp, result := doRequest(t, app, http.MethodPost, "/api/v1/create", fiber.MIMEApplicationJSON, strings.NewReader(`{"username":"anna"}`))
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, apimodels.StatusFail, result.Status)
	})

	t.Run(`malformed email is accepted`, func(t *testing.T) {
		body := `{"username":"anna","email":"not-an-email","subject":"s","message":"m"}`
		resp, result := doRequest(t, app, http.MethodPost, "/api/v1/create", fiber.MIMEApplicationJSON, strings.NewReader(body))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.Equal(t, apimodels.StatusSuccess, result.Status)
	})

	t.Run(`broken body`, func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/create", fiber.MIMEApplicationJSON, strings.NewReader(`{`))
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`storage error is generic`, func(t *testing.T) {
		contacthandler.Instance = &fakeContacts{failList: true}
		defer func() { contacthandler.Instance = &fakeContacts{recs: map[string]contactapimodels.ContactView{}} }()
		resp, result := doRequest(t, app, http.MethodGet, "/api/v1/contacts", "", nil)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, "Ошибка получения списка обращений", result.Message)
	})
}

func TestUserApi(t *testing.T) {
	users := &fakeUsers{}
	usershandler.Instance = users
	app := newTestApp()

	t.Run(`register multipart`, func(t *testing.T) {
		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		require.Nil(t, w.WriteField("firstName", "Анна"))
		require.Nil(t, w.WriteField("lastName", "Смирнова"))
		require.Nil(t, w.WriteField("email", "anna@example.com"))
		part, err := w.CreateFormFile("picture", "me.png")
		require.Nil(t, err)
		_, err = part.Write([]byte("png"))
		require.Nil(t, err)
		require.Nil(t, w.Close())

		resp, result := doRequest(t, app, http.MethodPost, "/api/v1/register", w.FormDataContentType(), body)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		view := userapimodels.UserView{}
		require.Nil(t, json.Unmarshal(result.Data, &view))
		require.Equal(t, "anna@example.com", view.Email)
		require.NotNil(t, users.picture)
		require.Equal(t, "me.png", users.picture.Name)
		require.Equal(t, []byte("png"), users.picture.Body)
	})

	t.Run(`register duplicate`, func(t *testing.T) {
		body := `{"firstName":"Анна","lastName":"Смирнова","email":"anna@example.com"}`
		resp, result := doRequest(t, app, http.MethodPost, "/api/v1/register", fiber.MIMEApplicationJSON, strings.NewReader(body))
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
		require.Equal(t, apimodels.StatusFail, result.Status)
	})

	t.Run(`get by email`, func(t *testing.T) {
		resp, result := doRequest(t, app, http.MethodGet, "/api/v1/getUserByEmail?email=anna@example.com", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		view := userapimodels.UserView{}
		require.Nil(t, json.Unmarshal(result.Data, &view))
		require.Equal(t, "Анна", view.FirstName)

		resp, result = doRequest(t, app, http.MethodGet, "/api/v1/getUserByEmail?email=nobody@example.com", "", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, apimodels.StatusFail, result.Status)
	})

	t.Run(`list`, func(t *testing.T) {
		resp, result := doRequest(t, app, http.MethodGet, "/api/v1/getUsers", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list := []userapimodels.UserView{}
		require.Nil(t, json.Unmarshal(result.Data, &list))
		require.Len(t, list, 1)
	})
}

func TestApplicationApi(t *testing.T) {
	applications := &fakeApplications{}
	applicationhandler.Instance = applications
	app := newTestApp()
	id := uuid.NewString()

	t.Run(`get`, func(t *testing.T) {
		applications.rec = &applicationapimodels.ApplicationView{ID: id, Status: models.ApplicationReviewed, StatusStep: 1}
		resp, result := doRequest(t, app, http.MethodGet, "/api/v1/app/applications/"+id, "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		view := applicationapimodels.ApplicationView{}
		require.Nil(t, json.Unmarshal(result.Data, &view))
		require.Equal(t, 1, view.StatusStep)

		resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/app/applications/"+uuid.NewString(), "", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run(`status conflict`, func(t *testing.T) {
		resp, result := doRequest(t, app, http.MethodPut, "/api/v1/app/applications/"+id+"/status", fiber.MIMEApplicationJSON, strings.NewReader(`{"status":"SUBMITTED"}`))
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
		require.NotEmpty(t, result.Message)
	})

	t.Run(`candidates`, func(t *testing.T) {
		resp, result := doRequest(t, app, http.MethodGet, "/api/v1/app/jobposts/"+id+"/candidates", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "[]", string(result.Data))
	})

	t.Run(`export`, func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/app/jobposts/"+id+"/candidates/export", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "candidates.xlsx")
	})
}

type fakeContacts struct {
	recs     map[string]contactapimodels.ContactView
	failList bool
}

func (f *fakeContacts) Create(data contactapimodels.ContactData) (contactapimodels.ContactView, error) {
	if err := data.Validate(); err != nil {
		return contactapimodels.ContactView{}, err
	}
	view := contactapimodels.ContactView{ContactData: data, ID: uuid.NewString()}
	f.recs[view.ID] = view
	return view, nil
}

func (f *fakeContacts) List() ([]contactapimodels.ContactView, error) {
	if f.failList {
		return nil, io.ErrUnexpectedEOF
	}
	list := []contactapimodels.ContactView{}
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeContacts) Get(id string) (contactapimodels.ContactView, error) {
	rec, ok := f.recs[id]
	if !ok {
		return contactapimodels.ContactView{}, apperrors.NotFound("обращение не найдено")
	}
	return rec, nil
}

func (f *fakeContacts) Delete(id string) error {
	if _, ok := f.recs[id]; !ok {
		return apperrors.NotFound("обращение не найдено")
	}
	delete(f.recs, id)
	return nil
}

type fakeUsers struct {
	recs    []userapimodels.UserView
	picture *apimodels.UploadFile
}

func (f *fakeUsers) Register(_ context.Context, data userapimodels.RegisterData, picture *apimodels.UploadFile) (userapimodels.UserView, error) {
	if err := data.Validate(); err != nil {
		return userapimodels.UserView{}, err
	}
	for _, rec := range f.recs {
		if rec.Email == data.Email {
			return userapimodels.UserView{}, apperrors.Conflict("пользователь с таким email уже зарегистрирован")
		}
	}
	f.picture = picture
	view := userapimodels.UserView{ID: uuid.NewString(), FirstName: data.FirstName, LastName: data.LastName, Email: data.Email}
	f.recs = append(f.recs, view)
	return view, nil
}

func (f *fakeUsers) List() ([]userapimodels.UserView, error) {
	return f.recs, nil
}

func (f *fakeUsers) GetByEmail(email string) (userapimodels.UserView, error) {
	for _, rec := range f.recs {
		if rec.Email == email {
			return rec, nil
		}
	}
	return userapimodels.UserView{}, apperrors.NotFound("пользователь не найден")
}

type fakeApplications struct {
	rec *applicationapimodels.ApplicationView
}

func (f *fakeApplications) Create(_ context.Context, data applicationapimodels.ApplicationData, _ *apimodels.UploadFile) (applicationapimodels.ApplicationView, error) {
	return applicationapimodels.ApplicationView{ID: uuid.NewString(), CandidateID: data.CandidateID, JobPostID: data.JobPostID}, nil
}

func (f *fakeApplications) Get(id string) (applicationapimodels.ApplicationView, error) {
	if f.rec == nil || f.rec.ID != id {
		return applicationapimodels.ApplicationView{}, apperrors.NotFound("отклик не найден")
	}
	return *f.rec, nil
}

func (f *fakeApplications) ListByJobPost(_ string) ([]applicationapimodels.ApplicationView, error) {
	return []applicationapimodels.ApplicationView{}, nil
}

func (f *fakeApplications) ChangeStatus(_ context.Context, id string, change applicationapimodels.StatusChange) (applicationapimodels.ApplicationView, error) {
	rec, err := f.Get(id)
	if err != nil {
		return rec, err
	}
	if !rec.Status.CanTransitionTo(models.ApplicationStatus(change.Status)) {
		return rec, apperrors.Conflict("переход недопустим")
	}
	rec.Status = models.ApplicationStatus(change.Status)
	return rec, nil
}

func (f *fakeApplications) History(_ string) ([]applicationapimodels.ApplicationHistoryView, error) {
	return []applicationapimodels.ApplicationHistoryView{}, nil
}

func (f *fakeApplications) ExportCandidates(_ string) (*bytes.Buffer, error) {
	return bytes.NewBufferString("xlsx"), nil
}
