package assignment

import "errors"

var (
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrAssignmentExists    = errors.New("user is already assigned to this project")
	ErrAssigneeNotEmployee = errors.New("only employees can be assigned to projects")
)
