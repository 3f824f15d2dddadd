package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/resolver"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
)

func TestReportService_Summary(t *testing.T) {
	svc := service.NewReportService(resolver.Reporter{}, session.Options{})
	defer svc.Close()

	report, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.PestIncidents)
	assert.NotEmpty(t, report.Recommendations)
	assert.Equal(t, session.StateIdle, svc.Status().State)
}

func TestReportService_CancelWhilePending(t *testing.T) {
	slow := resolver.Delayed[struct{}, model.Report](time.Minute, resolver.Reporter{})
	svc := service.NewReportService(slow, session.Options{Timeout: time.Minute})
	defer svc.Close()

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Summary(context.Background())
		errCh <- err
	}()

	require.Eventually(t, func() bool { return svc.Status().State == session.StatePending }, time.Second, 5*time.Millisecond)
	assert.True(t, svc.Cancel())

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, app_errors.ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("summary did not return after cancel")
	}
	assert.Equal(t, session.StateIdle, svc.Status().State)
	assert.Nil(t, svc.Status().Result)
}
