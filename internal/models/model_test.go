package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelUUIDGenerated() {
	fill := suite.createTestGasFill(models.GasFill{Date: testDate(2025, 8, 12)})
	assert.NotEqual(suite.T(), uuid.Nil, fill.ID)
}

func (suite *TestSuiteStandard) TestModelUUIDKept() {
	id := uuid.New()
	fill := suite.createTestGasFill(models.GasFill{
		DefaultModel: models.DefaultModel{ID: id},
		Date:         testDate(2025, 8, 12),
	})

	assert.Equal(suite.T(), id, fill.ID)
}

func (suite *TestSuiteStandard) TestModelTimestampsUTC() {
	suite.createTestGasFill(models.GasFill{Date: testDate(2025, 8, 12)})

	var fill models.GasFill
	err := models.DB.First(&fill).Error
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), time.UTC, fill.CreatedAt.Location(), "CreatedAt is not UTC")
	assert.Equal(suite.T(), time.UTC, fill.Date.Location(), "Date is not UTC")
}
