package validation

import (
	"regexp"
	"strings"

	"github.com/YuvarajaDev/NoeonApi/models"
)

// Error describes a rejected submission. The message is safe to show
// to the form user.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Deliberately permissive shape checks, not full RFC validation.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateLead checks a submitted form body. It returns nil when the
// input is acceptable, otherwise an *Error naming the first violation.
func ValidateLead(in models.LeadInput) *Error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	course := strings.TrimSpace(in.CourseLookingFor)

	if name == "" || email == "" || phone == "" || course == "" {
		return &Error{Message: "Please provide all required fields"}
	}
	if !emailPattern.MatchString(email) {
		return &Error{Message: "Please provide a valid email address"}
	}
	if !phonePattern.MatchString(phone) {
		return &Error{Message: "Please provide a valid 10-digit phone number"}
	}
	return nil
}
