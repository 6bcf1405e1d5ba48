package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DoseTaken  = "taken"
	DoseMissed = "missed"
)

type Medication struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID   `json:"userId" bson:"userId"`
	MedicineName    string               `json:"medicineName" bson:"medicineName"`
	DosageQuantity  string               `json:"dosageQuantity" bson:"dosageQuantity"`
	DosageUnit      string               `json:"dosageUnit" bson:"dosageUnit"`
	Frequency       []string             `json:"frequency" bson:"frequency"`
	StartDate       time.Time            `json:"startDate" bson:"startDate"`
	EndDate         time.Time            `json:"endDate" bson:"endDate"`
	ExpiryDate      time.Time            `json:"expiryDate" bson:"expiryDate"`
	CurrentQuantity string               `json:"currentQuantity" bson:"currentQuantity"`
	DosageHistory   []primitive.ObjectID `json:"dosageHistory" bson:"dosageHistory"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ActiveOn reports whether day falls inside the course, both ends inclusive.
func (m Medication) ActiveOn(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(m.StartDate)) && !d.After(Day(m.EndDate))
}

type Dosage struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	MedicationID primitive.ObjectID `json:"medicationId" bson:"medicationId"`
	Date         time.Time          `json:"date" bson:"date"`
	Time         string             `json:"time" bson:"time"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
