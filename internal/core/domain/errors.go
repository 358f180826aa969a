package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP layer.
// The API error handler maps each of these to a deterministic status code.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCodigoTaken        = errors.New("codigo already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenNotFound = errors.New("access token not found")
	ErrTokenExpired  = errors.New("access token expired")

	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrExamNotFound    = errors.New("exam not found")

	// ErrReferencedByExams is returned when deleting a student, teacher or
	// subject that existing exam rows still point to (FK RESTRICT).
	ErrReferencedByExams = errors.New("record is referenced by existing exams")
)
