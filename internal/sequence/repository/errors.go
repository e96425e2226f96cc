package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert sequence")
	ErrFailedToGet    = errors.New("failed to get sequence")
	ErrFailedToList   = errors.New("failed to list sequences")
	ErrFailedToUpdate = errors.New("failed to update sequence")
	ErrFailedToDelete = errors.New("failed to delete sequence")
)
