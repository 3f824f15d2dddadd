package service

import (
	"context"

	"agribrain/backend/internal/model"
	"agribrain/backend/internal/session"
)

// ReportService produces the farm summary. Reports are not kept in history.
type ReportService struct {
	ctrl *session.Controller[struct{}, model.Report]
}

func NewReportService(reporter session.Resolver[struct{}, model.Report], opts session.Options) *ReportService {
	return &ReportService{ctrl: session.New[struct{}, model.Report](KindReport, reporter, opts)}
}

func (s *ReportService) Summary(ctx context.Context) (*model.Report, error) {
	report, err := s.ctrl.Run(ctx, session.CaptureFunc[struct{}](func(context.Context) (struct{}, error) {
		return struct{}{}, nil
	}))
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) Cancel() bool { return s.ctrl.Cancel() }

func (s *ReportService) Status() session.Status { return s.ctrl.Status() }

func (s *ReportService) Close() { s.ctrl.Close() }
