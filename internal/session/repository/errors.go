package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert session")
	ErrFailedToGet    = errors.New("failed to get session")
	ErrFailedToUpdate = errors.New("failed to update session")
	ErrFailedToDelete = errors.New("failed to delete session")
)
