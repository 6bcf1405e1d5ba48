package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/util"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MedicationInput struct {
	MedicineName    string   `json:"medicineName" validate:"required"`
	DosageQuantity  string   `json:"dosageQuantity" validate:"required"`
	DosageUnit      string   `json:"dosageUnit" validate:"required"`
	Frequency       []string `json:"frequency" validate:"required,min=1,dive,hhmm"`
	StartDate       string   `json:"startDate" validate:"required"`
	EndDate         string   `json:"endDate" validate:"required"`
	ExpiryDate      string   `json:"expiryDate" validate:"required"`
	CurrentQuantity string   `json:"currentQuantity" validate:"required"`
}

type DoseInput struct {
	ID        string `json:"id" validate:"required"`
	Frequency string `json:"frequency" validate:"omitempty,hhmm"`
	Date      string `json:"date"`
	Time      string `json:"time" validate:"required,hhmm"`
	Status    string `json:"status" validate:"required,oneof=taken missed"`
}

type MedicationService struct {
	meds     repository.MedicationRepository
	dosages  repository.DosageRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewMedicationService(meds repository.MedicationRepository, dosages repository.DosageRepository) *MedicationService {
	return &MedicationService{
		meds:     meds,
		dosages:  dosages,
		validate: newValidator(),
		now:      time.Now,
	}
}

/*
* Every field is required and every frequency entry is HH:MM
* Dates accept YYYY-MM-DD or RFC3339
* The course cannot end before it starts
 */
func (s *MedicationService) Add(ctx context.Context, userID primitive.ObjectID, in MedicationInput) (*models.Medication, error) {
	in.MedicineName = strings.TrimSpace(in.MedicineName)
	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	parsed := map[string]time.Time{}
	for _, field := range []struct{ name, raw string }{
		{"startDate", in.StartDate},
		{"endDate", in.EndDate},
		{"expiryDate", in.ExpiryDate},
	} {
		t, ok := parseDate(field.raw)
		if !ok {
			return nil, util.FieldValidationError(util.INVALID_DATE, map[string]string{field.name: "date"})
		}
		parsed[field.name] = t
	}
	if parsed["endDate"].Before(parsed["startDate"]) {
		return nil, util.FieldValidationError(util.END_DATE_BEFORE_START, map[string]string{"endDate": "gtefield"})
	}

	now := s.now().UTC()
	med := &models.Medication{
		UserID:          userID,
		MedicineName:    in.MedicineName,
		DosageQuantity:  in.DosageQuantity,
		DosageUnit:      in.DosageUnit,
		Frequency:       dedupe(in.Frequency),
		StartDate:       parsed["startDate"],
		EndDate:         parsed["endDate"],
		ExpiryDate:      parsed["expiryDate"],
		CurrentQuantity: in.CurrentQuantity,
		DosageHistory:   []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.meds.Create(ctx, med); err != nil {
		logger.Log.Error("Error while saving the medication", zap.Error(err))
		return nil, util.InternalError(err)
	}
	return med, nil
}

func (s *MedicationService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Medication, error) {
	meds, err := s.meds.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error("Error while listing medications", zap.Error(err))
		return nil, util.InternalError(err)
	}
	return meds, nil
}

/*
* The medication must belong to the caller
* An extra frequency time is added to the course when sent
* The dosage is saved and pushed onto the history
 */
func (s *MedicationService) RecordDose(ctx context.Context, userID primitive.ObjectID, in DoseInput) (*models.Dosage, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	day := s.now()
	if strings.TrimSpace(in.Date) != "" {
		t, ok := parseDate(in.Date)
		if !ok {
			return nil, util.FieldValidationError(util.INVALID_DATE, map[string]string{"date": "date"})
		}
		day = t
	}

	med, err := s.owned(ctx, userID, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Frequency != "" {
		if err := s.meds.AddFrequency(ctx, med.ID, in.Frequency); err != nil {
			logger.Log.Error("Error while adding the frequency", zap.Error(err))
			return nil, util.InternalError(err)
		}
	}
	return s.recordDose(ctx, med, day, in.Time, in.Status)
}

func (s *MedicationService) owned(ctx context.Context, userID primitive.ObjectID, rawID string) (*models.Medication, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, util.NotFoundError(util.MEDICATION_NOT_FOUND)
	}
	med, err := s.meds.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.NotFoundError(util.MEDICATION_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("Error while fetching the medication", zap.Error(err))
		return nil, util.InternalError(err)
	}
	if med.UserID != userID {
		return nil, util.NotFoundError(util.MEDICATION_NOT_FOUND)
	}
	return med, nil
}

func (s *MedicationService) recordDose(ctx context.Context, med *models.Medication, day time.Time, at string, status string) (*models.Dosage, error) {
	dosage := &models.Dosage{
		UserID:       med.UserID,
		MedicationID: med.ID,
		Date:         models.Day(day),
		Time:         at,
		Status:       status,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.dosages.Create(ctx, dosage); err != nil {
		logger.Log.Error("Error while saving the dosage", zap.Error(err))
		return nil, util.InternalError(err)
	}
	if err := s.meds.AppendDosage(ctx, med.ID, dosage.ID); err != nil {
		logger.Log.Error("Error while linking the dosage", zap.Error(err))
		return nil, util.InternalError(err)
	}
	return dosage, nil
}

/*
* For every course active on day, each frequency time without a dosage
* gets a missed dosage. Returns how many were written.
 */
func (s *MedicationService) SweepMissed(ctx context.Context, day time.Time) (int, error) {
	meds, err := s.meds.ListActive(ctx, day)
	if err != nil {
		return 0, err
	}

	written := 0
	for i := range meds {
		med := &meds[i]
		for _, at := range med.Frequency {
			exists, err := s.dosages.Exists(ctx, med.ID, day, at)
			if err != nil {
				return written, err
			}
			if exists {
				continue
			}
			if _, err := s.recordDose(ctx, med, day, at, models.DoseMissed); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
