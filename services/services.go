package services

import (
	"MediSure/config/jwt"
	"MediSure/repository"
	"MediSure/session"
)

// Services bundles every service the HTTP layer and the jobs need.
type Services struct {
	Resolver    *AuthResolver
	Auth        *AuthService
	Profile     *ProfileService
	ScanReports *ScanReportService
	Dashboard   *DashboardService
	Medications *MedicationService
	Schedule    *ScheduleService
}

// New wires the services on top of the given stores. cache may be nil.
func New(repos repository.Repositories, sessions session.Store, tokens *jwt.Manager, cache ReportCache, imageBaseURL string) *Services {
	meds := NewMedicationService(repos.Medications, repos.Dosages)
	return &Services{
		Resolver:    NewAuthResolver(repos.Users, sessions, tokens),
		Auth:        NewAuthService(repos.Users, sessions, tokens),
		Profile:     NewProfileService(repos.Users),
		ScanReports: NewScanReportService(repos.ScanReports, cache, imageBaseURL),
		Dashboard:   NewDashboardService(repos.ScanReports),
		Medications: meds,
		Schedule:    NewScheduleService(meds),
	}
}
