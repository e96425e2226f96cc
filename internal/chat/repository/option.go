package repository

type CreateOptions struct {
	UserID     string
	SequenceID string
	Role       string
	Content    string
}
