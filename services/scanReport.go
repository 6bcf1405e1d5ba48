package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const displayDateLayout = "Jan 2, 2006"

var reportColors = map[string]string{
	models.ScanTypeCT:   "from-cyan-500 to-blue-500",
	models.ScanTypeXRay: "from-purple-500 to-indigo-500",
}

const defaultReportColor = "from-rose-400 to-red-500"

var scanTypeAliases = map[string]string{
	"ct":      models.ScanTypeCT,
	"ct scan": models.ScanTypeCT,
	"ct-scan": models.ScanTypeCT,
	"ctscan":  models.ScanTypeCT,
	"x-ray":   models.ScanTypeXRay,
	"xray":    models.ScanTypeXRay,
	"x ray":   models.ScanTypeXRay,
}

// NormalizeScanType maps any accepted spelling onto one of the two stored values.
func NormalizeScanType(raw string) (string, bool) {
	canonical, ok := scanTypeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

// ReportCache is satisfied by *redis.Cache.
type ReportCache interface {
	SetCache(ctx context.Context, key string, value interface{}) error
	GetCache(ctx context.Context, key string, dst interface{}) (bool, error)
}

type ScanReportInput struct {
	PatientName string   `json:"patientName"`
	ScanType    string   `json:"scanType"`
	Predictions []string `json:"predictions"`
	Images      []string `json:"images"`
	PhoneNumber string   `json:"phoneNumber"`
}

type ScanReportService struct {
	reports      repository.ScanReportRepository
	cache        ReportCache
	imageBaseURL string
	now          func() time.Time
}

// NewScanReportService accepts a nil cache; reads then always hit the repository.
func NewScanReportService(reports repository.ScanReportRepository, cache ReportCache, imageBaseURL string) *ScanReportService {
	return &ScanReportService{
		reports:      reports,
		cache:        cache,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		now:          time.Now,
	}
}

/*
* patientName and scanType are required
* scanType is stored in its canonical form, the raw value is kept aside
* Predictions and images keep the order they were sent in
 */
func (s *ScanReportService) Create(ctx context.Context, userID primitive.ObjectID, in ScanReportInput) (*models.ScanReport, error) {
	patient := strings.TrimSpace(in.PatientName)
	if patient == "" {
		return nil, util.FieldValidationError(util.PATIENT_NAME_REQUIRED, map[string]string{"patientName": "required"})
	}
	if strings.TrimSpace(in.ScanType) == "" {
		return nil, util.FieldValidationError(util.SCAN_TYPE_REQUIRED, map[string]string{"scanType": "required"})
	}
	scanType, ok := NormalizeScanType(in.ScanType)
	if !ok {
		return nil, util.FieldValidationError(util.INVALID_SCAN_TYPE, map[string]string{"scanType": "oneof"})
	}

	now := s.now().UTC()
	report := &models.ScanReport{
		PatientName:      patient,
		ScanType:         scanType,
		OriginalScanType: in.ScanType,
		Predictions:      nonNil(in.Predictions),
		Images:           nonNil(in.Images),
		PhoneNumber:      strings.TrimSpace(in.PhoneNumber),
		UserID:           userID,
		Timestamp:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		logger.Log.Error("Error while saving the scan report", zap.Error(err))
		return nil, util.InternalError(err)
	}
	s.cacheReport(ctx, report)
	return report, nil
}

/*
* Reports come back newest first
* An optional YYYY-MM-DD date keeps only that UTC day
 */
func (s *ScanReportService) List(ctx context.Context, userID primitive.ObjectID, date string) ([]models.ScanReportView, error) {
	var filter repository.ReportFilter
	if date = strings.TrimSpace(date); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, util.FieldValidationError(util.INVALID_DATE_FILTER, map[string]string{"date": "date"})
		}
		next := day.AddDate(0, 0, 1)
		filter.From, filter.To = &day, &next
	}

	reports, err := s.reports.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.Log.Error("Error while listing scan reports", zap.Error(err))
		return nil, util.InternalError(err)
	}

	views := make([]models.ScanReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, Decorate(r))
	}
	return views, nil
}

/*
* Try the cache first, then the repository
* Malformed ids, missing reports and reports of other users are all not found
 */
func (s *ScanReportService) GetByID(ctx context.Context, userID primitive.ObjectID, rawID string) (*models.ScanReportView, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, util.NotFoundError(util.SCAN_REPORT_NOT_FOUND)
	}

	report, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, util.NotFoundError(util.SCAN_REPORT_NOT_FOUND)
	}
	view := Decorate(*report)
	return &view, nil
}

// GetImages resolves stored filenames against the image origin.
func (s *ScanReportService) GetImages(ctx context.Context, userID primitive.ObjectID, rawID string) ([]string, *models.ReportDetails, error) {
	view, err := s.GetByID(ctx, userID, rawID)
	if err != nil {
		return nil, nil, err
	}

	images := make([]string, 0, len(view.Images))
	for _, name := range view.Images {
		images = append(images, s.imageURL(name))
	}
	details := &models.ReportDetails{
		ID:          view.ID.Hex(),
		PatientName: view.PatientName,
		ScanType:    view.ScanType,
		Predictions: view.Predictions,
		Timestamp:   view.Timestamp,
	}
	return images, details, nil
}

func (s *ScanReportService) load(ctx context.Context, id primitive.ObjectID) (*models.ScanReport, error) {
	key := util.ScanReportKey + id.Hex()
	if s.cache != nil {
		var cached models.ScanReport
		hit, err := s.cache.GetCache(ctx, key, &cached)
		if err != nil {
			logger.Log.Warn("Scan report cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return &cached, nil
		}
	}

	report, err := s.reports.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, util.NotFoundError(util.SCAN_REPORT_NOT_FOUND)
	}
	if err != nil {
		logger.Log.Error("Error while fetching the scan report", zap.Error(err))
		return nil, util.InternalError(err)
	}
	s.cacheReport(ctx, report)
	return report, nil
}

func (s *ScanReportService) cacheReport(ctx context.Context, report *models.ScanReport) {
	if s.cache == nil {
		return
	}
	key := util.ScanReportKey + report.ID.Hex()
	if err := s.cache.SetCache(ctx, key, report); err != nil {
		logger.Log.Warn("Scan report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *ScanReportService) imageURL(name string) string {
	if u, err := url.Parse(name); err == nil && u.IsAbs() {
		return name
	}
	return s.imageBaseURL + "/api/uploads/" + strings.TrimLeft(name, "/")
}

// Decorate adds the display color and formatted date.
func Decorate(r models.ScanReport) models.ScanReportView {
	color, ok := reportColors[r.ScanType]
	if !ok {
		color = defaultReportColor
	}
	return models.ScanReportView{
		ScanReport:    r,
		Color:         color,
		FormattedDate: r.Timestamp.UTC().Format(displayDateLayout),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
