package dto

// AdmissionCreateRequest represents a public admission application
type AdmissionCreateRequest struct {
	StudentName    string `json:"student_name" binding:"required"`
	ParentName     string `json:"parent_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Grade          string `json:"grade" binding:"required"`
	DOB            string `json:"dob" binding:"required"`
	Address        string `json:"address" binding:"required"`
	PreviousSchool string `json:"previous_school"`
}

// AdmissionStatusUpdateRequest represents a status transition request
type AdmissionStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
