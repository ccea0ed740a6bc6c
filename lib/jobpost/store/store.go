package jobpoststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	dbmodels "recruit-backend/models/db"
	"strings"
	"time"
)

type Provider interface {
	Create(rec dbmodels.JobPost) (id string, err error)
	GetByID(id string) (*dbmodels.JobPost, error)
	List(filter jobpostapimodels.JobPostFilter) ([]dbmodels.JobPost, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPost) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления вакансии")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobPost, error) {
	rec := dbmodels.JobPost{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter jobpostapimodels.JobPostFilter) ([]dbmodels.JobPost, error) {
	list := []dbmodels.JobPost{}
	tx := i.db.Model(dbmodels.JobPost{})
	tx = i.addFilter(tx, filter)
	err := tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter jobpostapimodels.JobPostFilter) *gorm.DB {
	if filter.Keyword != "" {
		keyword := likePattern(filter.Keyword)
		tx = tx.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, keyword, keyword)
	}
	if filter.Location != "" {
		tx = tx.Where(`LOWER(location) LIKE ? ESCAPE '\'`, likePattern(filter.Location))
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.JobType != "" {
		tx = tx.Where("job_type = ?", filter.JobType)
	}
	if filter.Experience != "" {
		tx = tx.Where("experience = ?", filter.Experience)
	}
	// вилки пересекаются, 0 - граница не указана
	if filter.Salary.Min > 0 {
		tx = tx.Where("(salary_to = 0 OR salary_to >= ?)", filter.Salary.Min)
	}
	if filter.Salary.Max > 0 {
		tx = tx.Where("salary_from <= ?", filter.Salary.Max)
	}
	if filter.Tag != "" {
		tx = tx.Where("? = ANY(tags)", filter.Tag)
	}
	if since, ok := filter.PostedSince(time.Now()); ok {
		tx = tx.Where("created_at >= ?", since)
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern поиск подстроки без учета регистра, спецсимволы LIKE в запросе пользователя экранируются
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}
