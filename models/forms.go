package models

import (
	"net/url"
	"strconv"
	"strings"
)

// ValidationError names the form field that failed and carries the
// operator-facing message. Malformed input must never take the process down,
// so every parse failure surfaces as one of these.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TuitionRequest is the type-checked form of a /calculate submission.
type TuitionRequest struct {
	FirstName      string
	LastName       string
	NumCredits     uint8
	NewStudent     bool
	Orientation    bool
	StudentType    Residency
	StudentStudies Studies
}

// LookupRequest is the type-checked form of a /lookup submission.
type LookupRequest struct {
	FirstName string
	LastName  string
}

// provided reports whether a form field holds anything besides whitespace.
// Browsers submit empty inputs as empty strings, so absent and blank are the
// same case here.
func provided(val string) bool {
	return strings.TrimSpace(val) != ""
}

// ParseLookupForm validates a /lookup submission. Both names are required;
// no further validation is applied.
func ParseLookupForm(form url.Values) (LookupRequest, error) {
	firstName := form.Get("first_name")
	if !provided(firstName) {
		return LookupRequest{}, &ValidationError{Field: "first_name", Message: "First name not provided"}
	}
	lastName := form.Get("last_name")
	if !provided(lastName) {
		return LookupRequest{}, &ValidationError{Field: "last_name", Message: "Last name not provided"}
	}
	return LookupRequest{FirstName: firstName, LastName: lastName}, nil
}

// ParseTuitionForm validates a /calculate submission and produces the
// type-checked request. It is a pure function over the form values.
func ParseTuitionForm(form url.Values) (TuitionRequest, error) {
	var req TuitionRequest

	req.FirstName = form.Get("first_name")
	if !provided(req.FirstName) {
		return TuitionRequest{}, &ValidationError{Field: "first_name", Message: "No first name was provided!"}
	}

	req.LastName = form.Get("last_name")
	if !provided(req.LastName) {
		return TuitionRequest{}, &ValidationError{Field: "last_name", Message: "No last name was provided!"}
	}

	rawCredits := form.Get("num_credits")
	if !provided(rawCredits) {
		return TuitionRequest{}, &ValidationError{Field: "num_credits", Message: "No credits were provided!"}
	}
	credits, err := strconv.ParseUint(strings.TrimSpace(rawCredits), 10, 8)
	if err != nil {
		return TuitionRequest{}, &ValidationError{Field: "num_credits", Message: "Number of credits must be a whole number from 0 to 255."}
	}
	req.NumCredits = uint8(credits)

	// Checkboxes arrive as the literal "on" when ticked and are absent
	// otherwise; any other value counts as unticked.
	req.NewStudent = form.Get("new_student") == "on"
	req.Orientation = form.Get("orientation") == "on"

	studentType := form.Get("student_type")
	if !provided(studentType) {
		return TuitionRequest{}, &ValidationError{Field: "student_type", Message: "User must be either a nonresident or resident."}
	}
	if studentType == "resident" {
		req.StudentType = Resident
	} else {
		req.StudentType = NonResident
	}

	studentStudies := form.Get("student_studies")
	if !provided(studentStudies) {
		return TuitionRequest{}, &ValidationError{Field: "student_studies", Message: "User must be either a undergraduate or graduate."}
	}
	switch studentStudies {
	case "undergraduate":
		req.StudentStudies = Undergraduate
	case "nonresident":
		// Long-standing quirk: this branch matches the literal "nonresident"
		// where "graduate" was clearly intended, so "graduate" falls through
		// to Undergraduate. Kept bit-for-bit until the fee owners rule on it.
		req.StudentStudies = Graduate
	default:
		req.StudentStudies = Undergraduate
	}

	return req, nil
}
