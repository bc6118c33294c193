package models

import "time"

// Lead is a contact-form submission from a prospective student.
type Lead struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"not null" json:"email"`
	Phone            string    `gorm:"not null" json:"phone"`
	CourseLookingFor string    `gorm:"column:course_looking_for;not null" json:"course_looking_for"`
	Message          *string   `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadInput is the request body of the create and update endpoints.
// Field names follow the public form contract.
type LeadInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CourseLookingFor string `json:"courseLookingFor"`
	Message          string `json:"message"`
}
