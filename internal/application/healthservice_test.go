package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

func TestHealthService_Report(t *testing.T) {
	svc := application.NewHealthService(newTestRegistry(t), "embedded", application.RelayModeLog)

	report := svc.Report()
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, "embedded", report.Source)
	assert.Equal(t, application.RelayModeLog, report.Relay)
	assert.Equal(t, 2, report.Content[model.KindServices])
}

func TestHealthService_DegradedWithoutPortfolio(t *testing.T) {
	cat := testCatalog()
	cat.Portfolio = nil
	reg, err := application.NewContentRegistry(cat)
	require.NoError(t, err)

	report := application.NewHealthService(reg, "sqlite", application.RelayModeEmailJS).Report()
	assert.Equal(t, "degraded", report.Status)
}
