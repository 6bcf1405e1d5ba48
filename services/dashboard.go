package services

import (
	"context"
	"math"
	"time"

	"MediSure/config/logger"
	"MediSure/models"
	"MediSure/repository"
	"MediSure/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const recentReports = 3

var distributionOrder = []struct {
	name  string
	color string
}{
	{models.ScanTypeCT, "bg-sky-400"},
	{models.ScanTypeXRay, "bg-amber-400"},
}

type DashboardService struct {
	reports repository.ScanReportRepository
	now     func() time.Time
}

func NewDashboardService(reports repository.ScanReportRepository) *DashboardService {
	return &DashboardService{reports: reports, now: time.Now}
}

/*
* One pass over the caller's reports
* Percentages are rounded and zero when there are no reports
* Recent holds the newest three, already decorated
 */
func (s *DashboardService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*models.Dashboard, error) {
	reports, err := s.reports.ListByUser(ctx, userID, repository.ReportFilter{})
	if err != nil {
		logger.Log.Error("Error while building the dashboard", zap.Error(err))
		return nil, util.InternalError(err)
	}

	today := models.Day(s.now())
	counts := map[string]int{}
	out := &models.Dashboard{
		Total:        len(reports),
		Distribution: make([]models.ScanTypeShare, 0, len(distributionOrder)),
		Recent:       make([]models.ScanReportView, 0, recentReports),
	}
	for i, r := range reports {
		counts[r.ScanType]++
		if models.Day(r.Timestamp).Equal(today) {
			out.TestsToday++
		}
		if i < recentReports {
			out.Recent = append(out.Recent, Decorate(r))
		}
	}

	for _, entry := range distributionOrder {
		share := models.ScanTypeShare{Name: entry.name, Count: counts[entry.name], Color: entry.color}
		if out.Total > 0 {
			share.Percentage = int(math.Round(float64(share.Count) * 100 / float64(out.Total)))
		}
		out.Distribution = append(out.Distribution, share)
	}
	return out, nil
}
