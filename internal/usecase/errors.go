package usecase

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrExtractionFailed   = errors.New("requirement extraction failed")
	ErrCollaboratorFailed = errors.New("collaborator failed")
	ErrInternal           = errors.New("internal error")
)
