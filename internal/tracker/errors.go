package tracker

import "github.com/ayoisaiah/stint/internal/apperr"

var (
	ErrSessionActive = &apperr.Error{
		Message: "a session is already in progress: stop it before starting a new one",
	}

	ErrEmptyProjectName = &apperr.Error{
		Message: "project name cannot be empty",
	}

	ErrProjectFinalized = &apperr.Error{
		Message: "sessions cannot be assigned to the finalized project %q",
	}

	ErrSessionNotFound = &apperr.Error{
		Message: "session %q not found",
	}

	errPersist = &apperr.Error{
		Message: "unable to save state",
	}
)
