package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"MediSure/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[primitive.ObjectID]models.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Update(_ context.Context, id primitive.ObjectID, update models.ProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	update.Apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

// Count is used by tests to assert that rejected signups stored nothing.
func (r *MemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

type MemoryScanReportRepository struct {
	mu      sync.RWMutex
	reports map[primitive.ObjectID]models.ScanReport
}

func NewMemoryScanReportRepository() *MemoryScanReportRepository {
	return &MemoryScanReportRepository{reports: map[primitive.ObjectID]models.ScanReport{}}
}

func (r *MemoryScanReportRepository) Create(_ context.Context, report *models.ScanReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	stored := *report
	stored.Predictions = append([]string(nil), report.Predictions...)
	stored.Images = append([]string(nil), report.Images...)
	r.reports[report.ID] = stored
	return nil
}

func (r *MemoryScanReportRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.ScanReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rep, nil
}

func (r *MemoryScanReportRepository) ListByUser(_ context.Context, userID primitive.ObjectID, filter ReportFilter) ([]models.ScanReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.ScanReport{}
	for _, rep := range r.reports {
		if rep.UserID == userID && filter.Match(rep.Timestamp) {
			out = append(out, rep)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

type MemoryMedicationRepository struct {
	mu   sync.RWMutex
	meds map[primitive.ObjectID]models.Medication
}

func NewMemoryMedicationRepository() *MemoryMedicationRepository {
	return &MemoryMedicationRepository{meds: map[primitive.ObjectID]models.Medication{}}
}

func (r *MemoryMedicationRepository) Create(_ context.Context, med *models.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if med.ID.IsZero() {
		med.ID = primitive.NewObjectID()
	}
	if med.DosageHistory == nil {
		med.DosageHistory = []primitive.ObjectID{}
	}
	stored := *med
	stored.Frequency = append([]string(nil), med.Frequency...)
	r.meds[med.ID] = stored
	return nil
}

func (r *MemoryMedicationRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	med, ok := r.meds[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &med, nil
}

func (r *MemoryMedicationRepository) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Medication{}
	for _, med := range r.meds {
		if med.UserID == userID {
			out = append(out, med)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (r *MemoryMedicationRepository) ListActive(_ context.Context, day time.Time) ([]models.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Medication{}
	for _, med := range r.meds {
		if med.ActiveOn(day) {
			out = append(out, med)
		}
	}
	return out, nil
}

func (r *MemoryMedicationRepository) AddFrequency(_ context.Context, id primitive.ObjectID, at string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	med, ok := r.meds[id]
	if !ok {
		return ErrNotFound
	}
	for _, f := range med.Frequency {
		if f == at {
			return nil
		}
	}
	med.Frequency = append(med.Frequency, at)
	r.meds[id] = med
	return nil
}

func (r *MemoryMedicationRepository) AppendDosage(_ context.Context, id primitive.ObjectID, dosageID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	med, ok := r.meds[id]
	if !ok {
		return ErrNotFound
	}
	med.DosageHistory = append(med.DosageHistory, dosageID)
	r.meds[id] = med
	return nil
}

type MemoryDosageRepository struct {
	mu      sync.RWMutex
	dosages []models.Dosage
}

func NewMemoryDosageRepository() *MemoryDosageRepository {
	return &MemoryDosageRepository{}
}

func (r *MemoryDosageRepository) Create(_ context.Context, dosage *models.Dosage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dosage.ID.IsZero() {
		dosage.ID = primitive.NewObjectID()
	}
	r.dosages = append(r.dosages, *dosage)
	return nil
}

func (r *MemoryDosageRepository) ListByUserOnDay(_ context.Context, userID primitive.ObjectID, day time.Time) ([]models.Dosage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d := models.Day(day)
	out := []models.Dosage{}
	for _, dosage := range r.dosages {
		if dosage.UserID == userID && dosage.Date.Equal(d) {
			out = append(out, dosage)
		}
	}
	return out, nil
}

func (r *MemoryDosageRepository) Exists(_ context.Context, medicationID primitive.ObjectID, day time.Time, at string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d := models.Day(day)
	for _, dosage := range r.dosages {
		if dosage.MedicationID == medicationID && dosage.Date.Equal(d) && dosage.Time == at {
			return true, nil
		}
	}
	return false, nil
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Users:       NewMemoryUserRepository(),
		ScanReports: NewMemoryScanReportRepository(),
		Medications: NewMemoryMedicationRepository(),
		Dosages:     NewMemoryDosageRepository(),
	}
}
