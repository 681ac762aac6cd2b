package dto

// CreateClassRequest adds a class/section for the tenant.
type CreateClassRequest struct {
	Name    string `json:"name" binding:"required,max=20" example:"5"`
	Section string `json:"section" binding:"omitempty,max=10" example:"A"`
}

// CreateSubjectRequest adds a subject for the tenant.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Mathematics"`
	Code string `json:"code" binding:"required,max=20" example:"MATH"`
}
