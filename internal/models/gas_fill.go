package models

import (
	"time"

	"gorm.io/gorm"
)

// GasFill marks a refuel event. There is no amount since refuels
// have a fixed unit cost.
type GasFill struct {
	DefaultModel
	Date time.Time `json:"date" example:"2025-08-12T00:00:00Z"`

	// ImportID is the id the fill had in an imported backup. Exports
	// reuse it so that import and export round-trip.
	ImportID string `json:"-"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (g *GasFill) BeforeSave(_ *gorm.DB) (err error) {
	if g.Date.IsZero() {
		g.Date = time.Now().In(time.UTC)
	} else {
		g.Date = g.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (g *GasFill) AfterFind(_ *gorm.DB) (err error) {
	g.Date = g.Date.In(time.UTC)
	return nil
}
