package user

import "time"

// PlaceholderName is given to accounts created on first contact.
const PlaceholderName = "Demo User"

// User is the recruiter the conversation belongs to.
type User struct {
	ID                 string
	Email              string
	Name               string
	Company            string
	CompanyDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Info is the projection of a User the orchestrator prompt needs.
type Info struct {
	UserID             string
	CompanyName        string
	CompanyDescription string
}

// Info returns the orchestrator projection of u.
func (u User) Info() Info {
	return Info{
		UserID:             u.ID,
		CompanyName:        u.Company,
		CompanyDescription: u.CompanyDescription,
	}
}
