package models

type UserRole string

const (
	CandidateRole UserRole = "CANDIDATE"
	HrRole        UserRole = "HR"
	AdminRole     UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	CandidateRole: "Кандидат",
	HrRole:        "HR-специалист",
	AdminRole:     "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
