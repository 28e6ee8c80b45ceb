package report

import (
	"fmt"
	"time"
)

// VisitRecord is a single customer visit attached to a daily report. Its
// lifecycle is bound to the parent report: it is only created, updated or
// deleted as part of report create/update.
type VisitRecord struct {
	id              uint
	dailyReportID   uint
	customerID      uint
	visitContent    string
	visitTime       *string
	durationMinutes *int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewVisitRecord(customerID uint, visitContent string, visitTime *string, durationMinutes *int) (*VisitRecord, error) {
	if err := validateVisitFields(customerID, visitContent, visitTime, durationMinutes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &VisitRecord{
		customerID:      customerID,
		visitContent:    visitContent,
		visitTime:       visitTime,
		durationMinutes: durationMinutes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructVisitRecord(
	id uint,
	dailyReportID uint,
	customerID uint,
	visitContent string,
	visitTime *string,
	durationMinutes *int,
	createdAt, updatedAt time.Time,
) (*VisitRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("visit record ID cannot be zero")
	}
	if dailyReportID == 0 {
		return nil, fmt.Errorf("daily report ID is required")
	}
	if err := validateVisitFields(customerID, visitContent, visitTime, durationMinutes); err != nil {
		return nil, err
	}

	return &VisitRecord{
		id:              id,
		dailyReportID:   dailyReportID,
		customerID:      customerID,
		visitContent:    visitContent,
		visitTime:       visitTime,
		durationMinutes: durationMinutes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (v *VisitRecord) ID() uint              { return v.id }
func (v *VisitRecord) DailyReportID() uint   { return v.dailyReportID }
func (v *VisitRecord) CustomerID() uint      { return v.customerID }
func (v *VisitRecord) VisitContent() string  { return v.visitContent }
func (v *VisitRecord) VisitTime() *string    { return v.visitTime }
func (v *VisitRecord) DurationMinutes() *int { return v.durationMinutes }
func (v *VisitRecord) CreatedAt() time.Time  { return v.createdAt }
func (v *VisitRecord) UpdatedAt() time.Time  { return v.updatedAt }

func (v *VisitRecord) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("visit record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("visit record ID cannot be zero")
	}
	v.id = id
	return nil
}

func (v *VisitRecord) AttachToReport(reportID uint) error {
	if reportID == 0 {
		return fmt.Errorf("daily report ID cannot be zero")
	}
	if v.dailyReportID != 0 && v.dailyReportID != reportID {
		return fmt.Errorf("visit record already belongs to report %d", v.dailyReportID)
	}
	v.dailyReportID = reportID
	return nil
}

// ApplyUpdate replaces the mutable fields of an existing visit record.
func (v *VisitRecord) ApplyUpdate(customerID uint, visitContent string, visitTime *string, durationMinutes *int) error {
	if err := validateVisitFields(customerID, visitContent, visitTime, durationMinutes); err != nil {
		return err
	}

	v.customerID = customerID
	v.visitContent = visitContent
	v.visitTime = visitTime
	v.durationMinutes = durationMinutes
	v.updatedAt = time.Now().UTC()
	return nil
}

func validateVisitFields(customerID uint, visitContent string, visitTime *string, durationMinutes *int) error {
	if customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	if len(visitContent) == 0 {
		return fmt.Errorf("visit content is required")
	}
	if len(visitContent) > 1000 {
		return fmt.Errorf("visit content exceeds maximum length of 1000 characters")
	}
	if visitTime != nil && *visitTime != "" {
		if _, err := time.Parse("15:04", *visitTime); err != nil {
			return fmt.Errorf("invalid visit time: %s", *visitTime)
		}
	}
	if durationMinutes != nil && *durationMinutes < 0 {
		return fmt.Errorf("duration minutes cannot be negative")
	}
	return nil
}
