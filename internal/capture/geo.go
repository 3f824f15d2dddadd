package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
)

// Locator determines the device position.
type Locator interface {
	Locate(ctx context.Context) (model.Location, error)
}

// Geo captures a location. When positioning is unsupported it degrades to the
// manual Fallback city.
type Geo struct {
	Locator  Locator
	Fallback string
}

func (g Geo) Capture(ctx context.Context) (model.Location, error) {
	var err error
	if g.Locator != nil {
		var loc model.Location
		loc, err = g.Locator.Locate(ctx)
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, app_errors.ErrUnsupported) {
			return model.Location{}, err
		}
	} else {
		err = fmt.Errorf("%w: geolocation is not available", app_errors.ErrUnsupported)
	}

	fallback := strings.TrimSpace(g.Fallback)
	if fallback == "" {
		return model.Location{}, err
	}
	return model.Location{City: fallback, Manual: true}, nil
}

// Position outcomes reported by the browser geolocation API.
const (
	PositionDenied      = "denied"
	PositionUnavailable = "unavailable"
	PositionUnsupported = "unsupported"
)

// ClientPosition is a Locator for a position reported by the client, either
// coordinates from the geolocation API or a typed city name.
type ClientPosition struct {
	Lat    *float64
	Lon    *float64
	City   string
	Status string
}

func (p ClientPosition) Locate(_ context.Context) (model.Location, error) {
	if city := strings.TrimSpace(p.City); city != "" {
		return model.Location{City: city, Manual: true}, nil
	}

	switch p.Status {
	case PositionDenied:
		return model.Location{}, fmt.Errorf("%w: please enable location permissions", app_errors.ErrPermission)
	case PositionUnavailable:
		return model.Location{}, fmt.Errorf("%w: position could not be determined", app_errors.ErrUnavailable)
	case PositionUnsupported:
		return model.Location{}, fmt.Errorf("%w: geolocation is not supported", app_errors.ErrUnsupported)
	}

	if p.Lat == nil || p.Lon == nil {
		if p.Lat != nil || p.Lon != nil {
			return model.Location{}, fmt.Errorf("%w: both lat and lon are required", app_errors.ErrValidation)
		}
		return model.Location{}, fmt.Errorf("%w: no position provided", app_errors.ErrUnsupported)
	}
	if *p.Lat < -90 || *p.Lat > 90 || *p.Lon < -180 || *p.Lon > 180 {
		return model.Location{}, fmt.Errorf("%w: coordinates out of range", app_errors.ErrValidation)
	}
	return model.Location{Lat: p.Lat, Lon: p.Lon}, nil
}
