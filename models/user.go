package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DisplayName   string             `json:"displayName" bson:"displayName"`
	FirstName     string             `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	Title         string             `json:"title,omitempty" bson:"title,omitempty"`
	Specialty     string             `json:"specialty,omitempty" bson:"specialty,omitempty"`
	NPINumber     string             `json:"npiNumber,omitempty" bson:"npiNumber,omitempty"`
	LicenseNumber string             `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	PracticeName  string             `json:"practiceName,omitempty" bson:"practiceName,omitempty"`
	PracticeType  string             `json:"practiceType,omitempty" bson:"practiceType,omitempty"`
	EHR           string             `json:"ehr,omitempty" bson:"ehr,omitempty"`
	State         string             `json:"state,omitempty" bson:"state,omitempty"`
	TermsConsent  bool               `json:"termsConsent" bson:"termsConsent"`
	HIPAAConsent  bool               `json:"hipaaConsent" bson:"hipaaConsent"`
	Gender        string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Dob           *time.Time         `json:"dob,omitempty" bson:"dob,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Sanitized returns a copy without the password hash.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// AuthUser is the subset of the profile returned by checkAuth.
type AuthUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Specialty   string `json:"specialty"`
}

func (u User) Summary() AuthUser {
	return AuthUser{
		ID:          u.ID.Hex(),
		DisplayName: u.DisplayName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Title:       u.Title,
		Specialty:   u.Specialty,
	}
}
