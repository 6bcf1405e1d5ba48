package models

import "time"

// ProfileUpdate lists the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string
	FirstName   *string
	LastName    *string
	Title       *string
	Specialty   *string
	Gender      *string
	Dob         *time.Time
}

func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.FirstName == nil && p.LastName == nil &&
		p.Title == nil && p.Specialty == nil && p.Gender == nil && p.Dob == nil
}

// Apply copies the set fields onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Specialty != nil {
		u.Specialty = *p.Specialty
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.Dob != nil {
		dob := *p.Dob
		u.Dob = &dob
	}
}
