package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectCodeExists = errors.New("project code already exists")
	ErrProjectInactive   = errors.New("project is not open for work")
	ErrProjectHasWork    = errors.New("project has assignments or timesheets")
	ErrProjectEditDenied = errors.New("not allowed to edit this project")
)
