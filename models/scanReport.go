package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ScanTypeCT   = "CT scan"
	ScanTypeXRay = "X-ray"
)

type ScanReport struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientName      string             `json:"patientName" bson:"patientName"`
	ScanType         string             `json:"scanType" bson:"scanType"`
	OriginalScanType string             `json:"originalScanType,omitempty" bson:"originalScanType,omitempty"`
	Predictions      []string           `json:"predictions" bson:"predictions"`
	Images           []string           `json:"images" bson:"images"`
	PhoneNumber      string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	Timestamp        time.Time          `json:"timestamp" bson:"timestamp"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ScanReportView is a report decorated with the fields the dashboards render.
type ScanReportView struct {
	ScanReport    `bson:",inline"`
	Color         string `json:"color"`
	FormattedDate string `json:"formattedDate"`
}

type ReportDetails struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patientName"`
	ScanType    string    `json:"scanType"`
	Predictions []string  `json:"predictions"`
	Timestamp   time.Time `json:"timestamp"`
}

type ScanTypeShare struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type Dashboard struct {
	Total        int              `json:"total"`
	TestsToday   int              `json:"testsToday"`
	Distribution []ScanTypeShare  `json:"distribution"`
	Recent       []ScanReportView `json:"recent"`
}
