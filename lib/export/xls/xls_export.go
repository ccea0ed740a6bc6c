package xlsexport

import (
	"bytes"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidates(jobPost dbmodels.JobPost, list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const candidatesSheet = "Кандидаты"

var candidateHeaders = []string{"ФИО", "Email", "Телефон", "Вакансия", "Статус", "Дата отклика", "Резюме"}

func (i impl) ExportCandidates(jobPost dbmodels.JobPost, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list), false); err != nil {
			return nil, errors.Wrap(err, "ошибка оформления таблицы в xlsx")
		}
		for _, item := range list {
			row++
			if err = writeRow(f, sheet, row, candidateRow(jobPost, item)); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	if err = f.SetSheetName(sheet, candidatesSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func candidateRow(jobPost dbmodels.JobPost, item dbmodels.Application) []interface{} {
	fio, email, phone := "", "", ""
	if item.Candidate != nil {
		fio = item.Candidate.GetFullName()
		email = item.Candidate.Email
		phone = item.Candidate.PhoneNumber
	}
	submitted := ""
	if !item.SubmissionDate.IsZero() {
		submitted = item.SubmissionDate.Format("02.01.2006")
	}
	return []interface{}{fio, email, phone, jobPost.Title, item.Status.ToHuman(), submitted, item.CV}
}
