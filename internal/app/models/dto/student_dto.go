package dto

// CreateStudentRequest enrolls a new student. The service creates the backing
// user, finds or creates the parent user when parentEmail is given, and
// writes the student row, all in one transaction.
type CreateStudentRequest struct {
	AdmissionNo string `json:"admissionNo" binding:"required,admissionno" example:"ADM001"`
	FirstName   string `json:"firstName" binding:"required,min=2,max=100" example:"Asha"`
	LastName    string `json:"lastName" binding:"required,min=2,max=100" example:"Rao"`
	Email       string `json:"email" binding:"omitempty,email"` // Optional; generated from admission number when empty
	ClassName   string `json:"className" binding:"required,max=20" example:"5"`
	Section     string `json:"section" binding:"omitempty,max=10" example:"A"`
	ParentEmail string `json:"parentEmail" binding:"omitempty,email"`
	ParentFirst string `json:"parentFirstName" binding:"omitempty,max=100"`
	ParentLast  string `json:"parentLastName" binding:"omitempty,max=100"`
}

// UpdateStudentRequest updates mutable student fields.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,min=2,max=100"`
	ClassName *string `json:"className" binding:"omitempty,max=20"`
	Section   *string `json:"section" binding:"omitempty,max=10"`
}

// StudentListResponse is a paginated student listing.
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentResponse is the view model for a single student.
type StudentResponse struct {
	ID          int64  `json:"id"`
	AdmissionNo string `json:"admissionNo"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	ClassName   string `json:"className"`
	Section     string `json:"section"`
	ParentEmail string `json:"parentEmail,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// ImportResultResponse summarises a CSV bulk import.
type ImportResultResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// CreateTeacherRequest creates a teacher with a backing user account.
type CreateTeacherRequest struct {
	EmployeeNo string `json:"employeeNo" binding:"required,max=20" example:"EMP007"`
	FirstName  string `json:"firstName" binding:"required,min=2,max=100"`
	LastName   string `json:"lastName" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Specialty  string `json:"specialty" binding:"omitempty,max=100" example:"Mathematics"`
}

// UpdateTeacherRequest updates mutable teacher fields.
type UpdateTeacherRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,min=2,max=100"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
}
