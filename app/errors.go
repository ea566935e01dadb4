package app

import "github.com/ayoisaiah/stint/internal/apperr"

var (
	errProjectNotFound = &apperr.Error{
		Message: "project %q not found",
	}

	errSessionNotFound = &apperr.Error{
		Message: "session %q not found",
	}

	errMissingArgument = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid --%s date",
	}
)
