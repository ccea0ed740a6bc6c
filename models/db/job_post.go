package dbmodels

import "github.com/lib/pq"

type JobPost struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Location    string         `gorm:"type:varchar(255);index"`
	Category    string         `gorm:"type:varchar(100);index"`
	JobType     string         `gorm:"type:varchar(50)"`
	Experience  string         `gorm:"type:varchar(50)"`
	SalaryFrom  int            // 0 - не указано
	SalaryTo    int            // 0 - не указано
	Tags        pq.StringArray `gorm:"type:text[]"`
}
