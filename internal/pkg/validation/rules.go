package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Subdomain: lowercase alphanumeric with inner hyphens, 3-40 chars
	SubdomainPattern = `^[a-z0-9](?:[a-z0-9-]{1,38}[a-z0-9])$`

	// Admission number: uppercase alphanumeric, 3-20 chars
	AdmissionNoPattern = `^[A-Z0-9]{3,20}$`

	// Academic year: "2024-2025"
	AcademicYearPattern = `^\d{4}-\d{4}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Subdomain    *regexp.Regexp
	AdmissionNo  *regexp.Regexp
	AcademicYear *regexp.Regexp
}{
	Subdomain:    regexp.MustCompile(SubdomainPattern),
	AdmissionNo:  regexp.MustCompile(AdmissionNoPattern),
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
}

// IsValidSubdomain reports whether s is an acceptable tenant subdomain.
func IsValidSubdomain(s string) bool {
	return CompiledPatterns.Subdomain.MatchString(s)
}

// IsValidAdmissionNo reports whether s is an acceptable admission number.
func IsValidAdmissionNo(s string) bool {
	return CompiledPatterns.AdmissionNo.MatchString(s)
}

// IsValidAcademicYear reports whether s looks like "2024-2025".
func IsValidAcademicYear(s string) bool {
	return CompiledPatterns.AcademicYear.MatchString(s)
}

// RegisterCustomValidators registers domain validators with gin's binding
// engine so DTO tags like `binding:"subdomain"` work.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
			return IsValidSubdomain(fl.Field().String())
		})
		_ = v.RegisterValidation("admissionno", func(fl validator.FieldLevel) bool {
			return IsValidAdmissionNo(fl.Field().String())
		})
		_ = v.RegisterValidation("academicyear", func(fl validator.FieldLevel) bool {
			return IsValidAcademicYear(fl.Field().String())
		})
	}
}
