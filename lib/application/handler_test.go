package applicationhandler

import (
	"context"
	xlsexport "recruit-backend/lib/export/xls"
	filestorage "recruit-backend/lib/file-storage"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	dbmodels "recruit-backend/models/db"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestApplicationHandler(t *testing.T) {
	t.Run(`create checks references`, func(t *testing.T) {
		i, env := getInstance()
		_, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: uuid.NewString(), JobPostID: env.jobPost.ID}, nil)
		require.True(t, apperrors.IsValidation(err))
		require.Equal(t, "кандидат не найден", err.Error())

		_, err = i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: "42"}, nil)
		require.True(t, apperrors.IsValidation(err))
		require.Equal(t, "вакансия не найдена", err.Error())

		_, err = i.Create(context.TODO(), applicationapimodels.ApplicationData{}, nil)
		require.True(t, apperrors.IsValidation(err))
		require.Len(t, env.apps.recs, 0)
	})

	t.Run(`create with cv upload`, func(t *testing.T) {
		i, env := getInstance()
		view, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: env.jobPost.ID},
			&apimodels.UploadFile{Name: "cv.pdf", Body: []byte("%PDF")})
		require.Nil(t, err)
		require.Equal(t, models.ApplicationSubmitted, view.Status)
		require.Equal(t, 0, view.StatusStep)
		require.Equal(t, "http://files/application-cv/cv.pdf", view.CV)
		require.NotNil(t, view.Candidate)
		require.NotNil(t, view.JobPost)
		require.False(t, view.SubmissionDate.IsZero())

		history, err := i.History(view.ID)
		require.Nil(t, err)
		require.Len(t, history, 1)
		require.Equal(t, models.ApplicationSubmitted, history[0].NewStatus)
	})

	t.Run(`get embeds job post`, func(t *testing.T) {
		i, env := getInstance()
		created, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: env.jobPost.ID, CV: "http://cv"}, nil)
		require.Nil(t, err)
		view, err := i.Get(created.ID)
		require.Nil(t, err)
		require.Equal(t, env.jobPost.Title, view.JobPost.Title)
		require.Equal(t, "http://cv", view.CV)

		_, err = i.Get(uuid.NewString())
		require.True(t, apperrors.IsNotFound(err))
		_, err = i.Get("abc")
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`list by job post embeds candidate`, func(t *testing.T) {
		i, env := getInstance()
		_, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: env.jobPost.ID}, nil)
		require.Nil(t, err)
		list, err := i.ListByJobPost(env.jobPost.ID)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, env.candidate.Email, list[0].Candidate.Email)

		_, err = i.ListByJobPost(uuid.NewString())
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`status transitions`, func(t *testing.T) {
		i, env := getInstance()
		created, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: env.jobPost.ID}, nil)
		require.Nil(t, err)

		_, err = i.ChangeStatus(context.TODO(), created.ID, applicationapimodels.StatusChange{Status: "HIRED"})
		require.True(t, apperrors.IsValidation(err))

		_, err = i.ChangeStatus(context.TODO(), created.ID, applicationapimodels.StatusChange{Status: "ACCEPTED"})
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

		for _, status := range []string{"REVIEWED", "INTERVIEWED", "ACCEPTED"} {
			view, err := i.ChangeStatus(context.TODO(), created.ID, applicationapimodels.StatusChange{Status: status, Comment: "ok"})
			require.Nil(t, err)
			require.Equal(t, models.ApplicationStatus(status), view.Status)
		}
		_, err = i.ChangeStatus(context.TODO(), created.ID, applicationapimodels.StatusChange{Status: "REJECTED"})
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

		view, err := i.ChangeStatus(context.TODO(), created.ID, applicationapimodels.StatusChange{Status: "ACCEPTED"})
		require.Nil(t, err)
		require.Equal(t, 4, view.StatusStep)

		history, err := i.History(created.ID)
		require.Nil(t, err)
		require.Len(t, history, 4)
		require.Equal(t, models.ApplicationInterviewed, history[3].OldStatus)
		require.Equal(t, models.ApplicationAccepted, history[3].NewStatus)

		_, err = i.ChangeStatus(context.TODO(), uuid.NewString(), applicationapimodels.StatusChange{Status: "REVIEWED"})
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`export candidates`, func(t *testing.T) {
		i, env := getInstance()
		_, err := i.Create(context.TODO(), applicationapimodels.ApplicationData{CandidateID: env.candidate.ID, JobPostID: env.jobPost.ID}, nil)
		require.Nil(t, err)
		buf, err := i.ExportCandidates(env.jobPost.ID)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		rows, err := f.GetRows("Кандидаты")
		require.Nil(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Анна Смирнова", rows[1][0])

		_, err = i.ExportCandidates(uuid.NewString())
		require.True(t, apperrors.IsNotFound(err))
	})
}

type testEnv struct {
	apps      *fakeApplicationStore
	candidate dbmodels.User
	jobPost   dbmodels.JobPost
}

func getInstance() (impl, testEnv) {
	candidate := dbmodels.User{FirstName: "Анна", LastName: "Смирнова", Email: "anna@example.com"}
	candidate.ID = uuid.NewString()
	jobPost := dbmodels.JobPost{Title: "Go-разработчик"}
	jobPost.ID = uuid.NewString()

	jobPosts := &fakeJobPostStore{recs: map[string]dbmodels.JobPost{jobPost.ID: jobPost}}
	users := &fakeUserStore{recs: map[string]dbmodels.User{candidate.ID: candidate}}
	apps := &fakeApplicationStore{recs: map[string]dbmodels.Application{}, users: users, jobPosts: jobPosts}
	xlsexport.NewHandler()
	i := impl{
		store:        apps,
		historyStore: &fakeHistoryStore{},
		userStore:    users,
		jobPostStore: jobPosts,
		fileStorage:  fakeFiles{},
		xlsExport:    xlsexport.Instance,
	}
	return i, testEnv{apps: apps, candidate: candidate, jobPost: jobPost}
}

type fakeApplicationStore struct {
	mu       sync.Mutex
	recs     map[string]dbmodels.Application
	users    *fakeUserStore
	jobPosts *fakeJobPostStore
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.Candidate = nil
	rec.JobPost = nil
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	jobPost, _ := f.jobPosts.GetByID(rec.JobPostID)
	rec.JobPost = jobPost
	return &rec, nil
}

func (f *fakeApplicationStore) ListByJobPost(jobPostID string) ([]dbmodels.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.JobPostID == jobPostID {
			candidate, _ := f.users.GetByID(rec.CandidateID)
			rec.Candidate = candidate
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) UpdateStatus(id string, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.recs[id]
	rec.Status = status
	f.recs[id] = rec
	return nil
}

type fakeHistoryStore struct {
	recs []dbmodels.ApplicationHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.ApplicationHistory) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeHistoryStore) List(applicationID string) ([]dbmodels.ApplicationHistory, error) {
	list := []dbmodels.ApplicationHistory{}
	for _, rec := range f.recs {
		if rec.ApplicationID == applicationID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeUserStore struct {
	recs map[string]dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeUserStore) List() ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	if rec, ok := f.recs[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.recs {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

type fakeJobPostStore struct {
	recs map[string]dbmodels.JobPost
}

func (f *fakeJobPostStore) Create(rec dbmodels.JobPost) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeJobPostStore) GetByID(id string) (*dbmodels.JobPost, error) {
	if rec, ok := f.recs[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeJobPostStore) List(_ jobpostapimodels.JobPostFilter) ([]dbmodels.JobPost, error) {
	list := []dbmodels.JobPost{}
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, nil
}

type fakeFiles struct{}

func (f fakeFiles) Upload(_ context.Context, folder filestorage.Folder, file apimodels.UploadFile) (string, error) {
	return "http://files/" + string(folder) + "/" + file.Name, nil
}
