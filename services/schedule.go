package services

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/schedule"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var pillColors = []string{"blue", "red", "green"}

type ScheduleService struct {
	meds *MedicationService
	now  func() time.Time
}

func NewScheduleService(meds *MedicationService) *ScheduleService {
	return &ScheduleService{meds: meds, now: time.Now}
}

/*
* No medications at all: the starter schedule
* Otherwise one slot per frequency time of the courses active today, sorted by time
* The latest dosage of each medication at that time decides the slot status
 */
func (s *ScheduleService) Today(ctx context.Context, userID primitive.ObjectID) (schedule.State, error) {
	meds, err := s.meds.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(meds) == 0 {
		return schedule.Default(), nil
	}

	today := s.now()
	dosages, err := s.meds.dosages.ListByUserOnDay(ctx, userID, today)
	if err != nil {
		logger.Log.Error("Error while listing today's dosages", zap.Error(err))
		return nil, util.InternalError(err)
	}
	latest := map[string]string{}
	for _, d := range dosages {
		latest[d.MedicationID.Hex()+"@"+d.Time] = d.Status
	}

	byTime := map[string][]models.Medication{}
	for _, med := range meds {
		if !med.ActiveOn(today) {
			continue
		}
		for _, at := range med.Frequency {
			byTime[at] = append(byTime[at], med)
		}
	}
	times := make([]string, 0, len(byTime))
	for at := range byTime {
		times = append(times, at)
	}
	sort.Strings(times)

	state := make(schedule.State, 0, len(times))
	for _, at := range times {
		slot := schedule.Slot{ID: at, Time: clockLabel(at), Title: slotTitle(at)}
		taken, missed := 0, 0
		for i, med := range byTime[at] {
			slot.Pills = append(slot.Pills, schedule.Pill{Name: med.MedicineName, DotColor: pillColors[i%len(pillColors)]})
			slot.MedicationIDs = append(slot.MedicationIDs, med.ID.Hex())
			switch latest[med.ID.Hex()+"@"+at] {
			case models.DoseTaken:
				taken++
			case models.DoseMissed:
				missed++
			}
		}
		slot.Completed = taken == len(byTime[at])
		slot.Missed = !slot.Completed && missed > 0
		state = append(state, slot)
	}
	return state, nil
}

/*
* Reject invalid actions before touching the state
* updateStatus on a slot built from medications records one dosage per medication
* Every medication must be owned, active today and due at the slot time before any dosage is written
 */
func (s *ScheduleService) Apply(ctx context.Context, userID primitive.ObjectID, state schedule.State, action schedule.Action) (schedule.State, error) {
	if err := action.Validate(); err != nil {
		return nil, scheduleActionError(err)
	}
	next := schedule.Reduce(state, action)

	if action.Type != schedule.ActionUpdateStatus {
		return next, nil
	}
	slot, ok := state.Find(action.ID)
	if !ok || len(slot.MedicationIDs) == 0 || !hhmmPattern.MatchString(slot.ID) {
		return next, nil
	}

	today := s.now()
	meds := make([]*models.Medication, 0, len(slot.MedicationIDs))
	for _, rawID := range dedupe(slot.MedicationIDs) {
		med, err := s.meds.owned(ctx, userID, rawID)
		if err != nil {
			return nil, err
		}
		if !med.ActiveOn(today) || !slices.Contains(med.Frequency, slot.ID) {
			return nil, util.FieldValidationError(util.DOSE_NOT_SCHEDULED, map[string]string{"id": "scheduled"})
		}
		meds = append(meds, med)
	}
	for _, med := range meds {
		if _, err := s.meds.recordDose(ctx, med, today, slot.ID, action.Status); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func scheduleActionError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrSlotIDRequired):
		return util.FieldValidationError(util.SLOT_ID_REQUIRED, map[string]string{"id": "required"})
	case errors.Is(err, schedule.ErrInvalidStatus):
		return util.FieldValidationError(util.INVALID_DOSAGE_STATUS, map[string]string{"status": "oneof"})
	default:
		return util.FieldValidationError(util.INVALID_SCHEDULE_ACTION, map[string]string{"type": "oneof"})
	}
}

// clockLabel renders "13:00" as "1:00 PM".
func clockLabel(at string) string {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return at
	}
	return t.Format("3:04 PM")
}

func slotTitle(at string) string {
	switch {
	case at < "12:00":
		return "Morning Medications"
	case at < "17:00":
		return "Afternoon Medications"
	case at < "21:00":
		return "Evening Medications"
	default:
		return "Night Medications"
	}
}
