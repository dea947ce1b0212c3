package models

import (
	"time"
)

// AdmissionStatus represents the review state of an application
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "pending"
	AdmissionApproved AdmissionStatus = "approved"
	AdmissionRejected AdmissionStatus = "rejected"
)

// Admission represents an admission application submitted from the public site.
// Everything except the status is immutable after submission.
type Admission struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	StudentName    string          `json:"student_name" gorm:"not null"`
	ParentName     string          `json:"parent_name" gorm:"not null"`
	Email          string          `json:"email" gorm:"not null"`
	Phone          string          `json:"phone" gorm:"not null"`
	Grade          string          `json:"grade" gorm:"not null"`
	DOB            string          `json:"dob" gorm:"not null"`
	Address        string          `json:"address" gorm:"not null"`
	PreviousSchool string          `json:"previous_school"`
	Status         AdmissionStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	SubmittedAt    time.Time       `json:"submitted_at"`
}
