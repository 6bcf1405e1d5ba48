// Package repository keeps storage behind small interfaces so services never
// see a driver type. Mongo backs production; the in-memory variants back
// local runs and tests.
package repository

import (
	"context"
	"errors"
	"time"

	"MediSure/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("repository: not found")
	ErrDuplicate = errors.New("repository: duplicate key")
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) (*models.User, error)
}

// ReportFilter bounds the report timestamp to [From, To).
type ReportFilter struct {
	From *time.Time
	To   *time.Time
}

func (f ReportFilter) Match(ts time.Time) bool {
	if f.From != nil && ts.Before(*f.From) {
		return false
	}
	if f.To != nil && !ts.Before(*f.To) {
		return false
	}
	return true
}

type ScanReportRepository interface {
	Create(ctx context.Context, report *models.ScanReport) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ScanReport, error)
	// ListByUser returns the user's reports, newest timestamp first.
	ListByUser(ctx context.Context, userID primitive.ObjectID, filter ReportFilter) ([]models.ScanReport, error)
}

type MedicationRepository interface {
	Create(ctx context.Context, med *models.Medication) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medication, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Medication, error)
	ListActive(ctx context.Context, day time.Time) ([]models.Medication, error)
	AddFrequency(ctx context.Context, id primitive.ObjectID, at string) error
	AppendDosage(ctx context.Context, id primitive.ObjectID, dosageID primitive.ObjectID) error
}

type DosageRepository interface {
	Create(ctx context.Context, dosage *models.Dosage) error
	ListByUserOnDay(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]models.Dosage, error)
	Exists(ctx context.Context, medicationID primitive.ObjectID, day time.Time, at string) (bool, error)
}

type Repositories struct {
	Users       UserRepository
	ScanReports ScanReportRepository
	Medications MedicationRepository
	Dosages     DosageRepository
}
