package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Holiday is one upcoming public holiday with the user's leave
// planning attached.
//
// HolidayID is derived from the canonical date string of the holiday
// so that a regenerated schedule can reattach earlier user edits to
// the same logical holiday.
type Holiday struct {
	DefaultModel
	HolidayID string     `json:"holidayId" gorm:"uniqueIndex" example:"holiday-2025-09-02"`
	Name      string     `json:"name" example:"Quốc khánh 2025"`
	Date      time.Time  `json:"date" example:"2025-09-02T00:00:00Z"`
	TakingOff bool       `json:"takingOff" example:"false"` // Whether the user plans to take time off
	StartDate *time.Time `json:"startDate"`                 // First day of leave
	EndDate   *time.Time `json:"endDate"`                   // Last day of leave, inclusive
	Note      string     `json:"note" example:"Về quê"`
}

func (h *Holiday) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Note = strings.TrimSpace(h.Note)
	h.Date = h.Date.In(time.UTC)

	return nil
}

// AfterFind updates the dates to use UTC as timezone, not +0000.
func (h *Holiday) AfterFind(_ *gorm.DB) (err error) {
	h.Date = h.Date.In(time.UTC)

	if h.StartDate != nil {
		utc := h.StartDate.In(time.UTC)
		h.StartDate = &utc
	}
	if h.EndDate != nil {
		utc := h.EndDate.In(time.UTC)
		h.EndDate = &utc
	}

	return nil
}

// PlansLeave reports whether the holiday is fully planned: marked for
// taking time off with both leave dates set.
func (h Holiday) PlansLeave() bool {
	return h.TakingOff && h.StartDate != nil && h.EndDate != nil
}
