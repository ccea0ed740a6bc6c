package dbmodels

type ProfileHistory struct {
	BaseModel
	CV            string `gorm:"type:text;not null"`
	ExtractedData string `gorm:"type:text;not null"`
}
