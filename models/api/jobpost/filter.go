package jobpostapimodels

import "time"

type DatePosted string

const (
	PostedAnytime    DatePosted = "all"
	PostedLastHour   DatePosted = "last-hour"
	PostedLastDay    DatePosted = "last-24-hours"
	PostedLastWeek   DatePosted = "last-7-days"
	PostedLast14Days DatePosted = "last-14-days"
	PostedLastMonth  DatePosted = "last-30-days"
)

var datePostedWindow = map[DatePosted]time.Duration{
	PostedLastHour:   time.Hour,
	PostedLastDay:    24 * time.Hour,
	PostedLastWeek:   7 * 24 * time.Hour,
	PostedLast14Days: 14 * 24 * time.Hour,
	PostedLastMonth:  30 * 24 * time.Hour,
}

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// JobPostFilter фильтр списка вакансий, пустые поля не участвуют в отборе
type JobPostFilter struct {
	Keyword    string      `json:"keyword"`
	Location   string      `json:"location"`
	Category   string      `json:"category"`
	JobType    string      `json:"jobType"`
	DatePosted DatePosted  `json:"datePosted"`
	Experience string      `json:"experience"`
	Salary     SalaryRange `json:"salary"`
	Tag        string      `json:"tag"`
}

// PostedSince нижняя граница даты публикации, false если ограничения нет
func (f JobPostFilter) PostedSince(now time.Time) (time.Time, bool) {
	window, ok := datePostedWindow[f.DatePosted]
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-window), true
}
