package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateDialectID checks that a dialect identifier looks sane before it
// reaches the catalog lookup
func ValidateDialectID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ValidationError{Field: "dialect", Message: "dialect is required"}
	}
	return nil
}

// ValidateQuizSubmission checks the shape of a submitted quiz attempt.
// Scores are recomputed server-side, so only structural problems are
// rejected here.
func ValidateQuizSubmission(quizID string, totalQuestions, answerCount int) error {
	if strings.TrimSpace(quizID) == "" {
		return ValidationError{Field: "quizId", Message: "quiz id is required"}
	}
	if totalQuestions <= 0 {
		return ValidationError{Field: "totalQuestions", Message: "quiz must contain at least one question"}
	}
	if answerCount != totalQuestions {
		return ValidationError{Field: "answers", Message: "answer count must match question count"}
	}
	return nil
}
