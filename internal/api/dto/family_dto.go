package dto

type AddMemberDTO struct {
	Name                string   `json:"name" validate:"required,max=100"`
	DateOfBirth         string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender              *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	RelationshipToAdmin string   `json:"relationship" validate:"required,max=30"`
	MedicalConditions   []string `json:"medicalConditions,omitempty"`
}

type UpdateMemberDTO struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender              *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	RelationshipToAdmin *string  `json:"relationship,omitempty" validate:"omitempty,max=30"`
	MedicalConditions   []string `json:"medicalConditions,omitempty"`
}

type MemberDTO struct {
	UserID            uint64   `json:"userId"`
	Name              string   `json:"name"`
	DateOfBirth       string   `json:"dateOfBirth"`
	Gender            *string  `json:"gender,omitempty"`
	Relationship      *string  `json:"relationship,omitempty"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
}

// MemberOverviewDTO 家庭总览里每个成员的接种概况
type MemberOverviewDTO struct {
	UserID         uint64  `json:"userId"`
	Name           string  `json:"name"`
	Relationship   *string `json:"relationship,omitempty"`
	PendingCount   int     `json:"pendingCount"`
	CompletedCount int     `json:"completedCount"`
	NextDueDate    *string `json:"nextDueDate,omitempty"`
	NextVaccine    *string `json:"nextVaccine,omitempty"`
}
