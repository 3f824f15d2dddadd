package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agribrain/backend/internal/capture"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/session"
)

// SnapshotRequest carries a camera frame encoded by the browser canvas.
type SnapshotRequest struct {
	Image string `json:"image" validate:"required" example:"data:image/png;base64,iVBORw0KGgo="`
}

type AnalysisService struct {
	ctrl *session.Controller[capture.Image, model.AnalysisRecord]
	log  *history.Log[model.AnalysisRecord]
}

// NewAnalysisService wires the image analysis controller. Each result is
// stored with the metadata of the image it was computed from; the image bytes
// themselves are not kept.
func NewAnalysisService(
	log *history.Log[model.AnalysisRecord],
	analyzer session.Resolver[capture.Image, model.AnalysisResult],
	opts session.Options,
) *AnalysisService {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	resolver := session.ResolverFunc[capture.Image, model.AnalysisRecord](func(ctx context.Context, img capture.Image) (model.AnalysisRecord, error) {
		result, err := analyzer.Resolve(ctx, img)
		if err != nil {
			return model.AnalysisRecord{}, err
		}
		return model.AnalysisRecord{
			ID:         uuid.NewString(),
			Result:     result,
			Source:     img.Source,
			MIMEType:   img.MIMEType,
			SizeBytes:  img.Size,
			AnalyzedAt: now(),
		}, nil
	})

	s := &AnalysisService{log: log}
	s.ctrl = session.New[capture.Image, model.AnalysisRecord](KindAnalysis, resolver, opts)
	s.ctrl.OnResolved(func(ctx context.Context, _ capture.Image, rec model.AnalysisRecord) error {
		return s.log.Append(ctx, rec)
	})
	return s
}

// Analyze runs one analysis cycle with any image source: an upload, a
// snapshot data URL or a host camera.
func (s *AnalysisService) Analyze(ctx context.Context, source session.Capturer[capture.Image]) (*model.AnalysisRecord, error) {
	rec, err := s.ctrl.Run(ctx, source)
	if err != nil {
		return nil, err
	}
	slog.Info("Image analyzed", "id", rec.ID, "status", rec.Result.Status, "source", rec.Source)
	return &rec, nil
}

// AnalyzeUpload analyzes a selected file. A declared size over the limit fails
// during capture and never reaches the analyzer.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, filename string, size int64, r io.Reader) (*model.AnalysisRecord, error) {
	return s.Analyze(ctx, capture.Upload{Filename: filename, Size: size, Reader: r})
}

// AnalyzeSnapshot analyzes a data URL captured from the camera preview.
func (s *AnalysisService) AnalyzeSnapshot(ctx context.Context, req *SnapshotRequest) (*model.AnalysisRecord, error) {
	return s.Analyze(ctx, capture.Snapshot{DataURL: req.Image})
}

func (s *AnalysisService) History(_ context.Context) ([]model.AnalysisRecord, error) {
	return s.log.Entries(), nil
}

func (s *AnalysisService) Cancel() bool { return s.ctrl.Cancel() }

func (s *AnalysisService) Status() session.Status { return s.ctrl.Status() }

func (s *AnalysisService) Close() { s.ctrl.Close() }
