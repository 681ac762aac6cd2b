package models

import "time"

// FeeStructure defines a fee definition based on the 'fee_structures' table.
// Applies to a (school, class, academic year) combination.
type FeeStructure struct {
	ID           int64        `json:"id" db:"id"`
	SchoolID     int64        `json:"schoolId" db:"school_id"`
	ClassName    string       `json:"className" db:"class_name" example:"5"`
	AcademicYear string       `json:"academicYear" db:"academic_year" example:"2024-2025"`
	Name         string       `json:"name" db:"name" example:"Tuition"`
	Amount       float64      `json:"amount" db:"amount" example:"1000"`
	Frequency    FeeFrequency `json:"frequency" db:"frequency" example:"TERMLY"`
	Category     string       `json:"category" db:"category" example:"academic"`
	IsOptional   bool         `json:"isOptional" db:"is_optional"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

// FeePayment records a payment against a fee structure for a student.
// ReceiptNo is globally unique.
type FeePayment struct {
	ID             int64     `json:"id" db:"id"`
	SchoolID       int64     `json:"schoolId" db:"school_id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	FeeStructureID int64     `json:"feeStructureId" db:"fee_structure_id"`
	Amount         float64   `json:"amount" db:"amount" example:"600"`
	Method         string    `json:"method" db:"method" example:"cash"`
	ReceiptNo      string    `json:"receiptNo" db:"receipt_no" example:"RCP-9f1c2a"`
	PaidAt         time.Time `json:"paidAt" db:"paid_at"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
