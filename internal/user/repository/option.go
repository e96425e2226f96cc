package repository

type CreateOptions struct {
	ID                 string
	Email              string
	Name               string
	Company            string
	CompanyDescription string
}
