package service

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/predict"
	"agribrain/backend/internal/session"
)

type CropService struct {
	ctrl *session.Controller[model.CropInput, model.CropRecommendation]
	log  *history.Log[model.CropRecommendation]
}

func NewCropService(log *history.Log[model.CropRecommendation], predictor predict.Predictor, opts session.Options) *CropService {
	s := &CropService{log: log}
	resolver := session.ResolverFunc[model.CropInput, model.CropRecommendation](predictor.Recommend)
	s.ctrl = session.New[model.CropInput, model.CropRecommendation](KindCrop, resolver, opts)
	s.ctrl.OnResolved(func(ctx context.Context, _ model.CropInput, rec model.CropRecommendation) error {
		return s.log.Append(ctx, rec)
	})
	return s
}

// Recommend asks the prediction server for the best crop. Every field of the
// form is required.
func (s *CropService) Recommend(ctx context.Context, input *model.CropInput) (*model.CropRecommendation, error) {
	form := session.CaptureFunc[model.CropInput](func(_ context.Context) (model.CropInput, error) {
		if input == nil || !complete(input) {
			return model.CropInput{}, fmt.Errorf("%w: All fields are required", app_errors.ErrValidation)
		}
		return *input, nil
	})

	rec, err := s.ctrl.Run(ctx, form)
	if err != nil {
		return nil, err
	}
	slog.Info("Crop recommended", "crop", rec.Crop)
	return &rec, nil
}

func complete(in *model.CropInput) bool {
	for _, v := range []*float64{in.Nitrogen, in.Phosphorus, in.Potassium, in.Temperature, in.Humidity, in.Ph, in.Rainfall} {
		if v == nil {
			return false
		}
	}
	return true
}

func (s *CropService) History(_ context.Context) ([]model.CropRecommendation, error) {
	return s.log.Entries(), nil
}

func (s *CropService) Cancel() bool { return s.ctrl.Cancel() }

func (s *CropService) Status() session.Status { return s.ctrl.Status() }

func (s *CropService) Close() { s.ctrl.Close() }
