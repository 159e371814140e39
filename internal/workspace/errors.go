package workspace

import "errors"

var (
	ErrOrganizationRequired = errors.New("organization is required")
	ErrTitleRequired        = errors.New("title is required")
	ErrInvalidTimeRange     = errors.New("event must end after it starts")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrMissingUser          = errors.New("user is required")
)
