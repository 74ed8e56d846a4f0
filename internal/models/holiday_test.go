package models_test

import (
	"github.com/spendwise/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHolidayIDUnique() {
	suite.createTestHoliday(models.Holiday{
		HolidayID: "holiday-2025-09-02",
		Name:      "Quốc khánh 2025",
		Date:      testDate(2025, 9, 2),
	})

	err := models.DB.Create(&models.Holiday{
		HolidayID: "holiday-2025-09-02",
		Name:      "Quốc khánh 2025",
		Date:      testDate(2025, 9, 2),
	}).Error

	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestHolidayPlansLeave() {
	start := testDate(2025, 9, 1)
	end := testDate(2025, 9, 5)

	tests := []struct {
		name    string
		holiday models.Holiday
		plans   bool
	}{
		{"not taking off", models.Holiday{StartDate: &start, EndDate: &end}, false},
		{"taking off without dates", models.Holiday{TakingOff: true}, false},
		{"taking off with one date", models.Holiday{TakingOff: true, StartDate: &start}, false},
		{"fully planned", models.Holiday{TakingOff: true, StartDate: &start, EndDate: &end}, true},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.plans, tt.holiday.PlansLeave(), tt.name)
	}
}
