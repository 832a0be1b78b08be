package usecase

import (
	"context"
	"encoding/json"

	"travel-journal/pkg/apperr"
	"travel-journal/pkg/directions"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/places"
	"travel-journal/services/course/internal/entity"
	"travel-journal/services/course/internal/repo/persistent"
)

type RouteUseCase interface {
	// Route returns the polyline through points in the given order. Provider
	// failures yield an empty polyline.
	Route(ctx context.Context, points []directions.Point) ([]directions.LatLng, error)
	DayRoute(ctx context.Context, courseID string, day int) ([]directions.LatLng, error)
	Directions(ctx context.Context, req directions.Request) (json.RawMessage, error)
	SearchPlaces(ctx context.Context, keyword string) ([]places.Place, error)
}

type routeUseCase struct {
	courseRepo persistent.CourseRepository
	directions directions.Client
	places     places.Searcher
	logger     *logger.Logger
}

func NewRouteUseCase(
	courseRepo persistent.CourseRepository,
	directionsClient directions.Client,
	placeSearcher places.Searcher,
	logger *logger.Logger,
) RouteUseCase {
	return &routeUseCase{
		courseRepo: courseRepo,
		directions: directionsClient,
		places:     placeSearcher,
		logger:     logger,
	}
}

func (uc *routeUseCase) Route(ctx context.Context, points []directions.Point) ([]directions.LatLng, error) {
	req, err := directions.BuildRequest(points)
	if err != nil {
		return nil, err
	}

	resp, err := uc.directions.Directions(ctx, req)
	if err != nil {
		uc.logger.Error("Failed to fetch directions: %v", err)
		return []directions.LatLng{}, nil
	}
	return directions.Flatten(resp), nil
}

func (uc *routeUseCase) DayRoute(ctx context.Context, courseID string, day int) ([]directions.LatLng, error) {
	rows, err := uc.courseRepo.GetDailyCourses(ctx, courseID)
	if err != nil {
		uc.logger.Error("Failed to load daily courses for %s: %v", courseID, err)
		return nil, apperr.NewUpstream("failed to load daily courses", err)
	}

	var selected *entity.DailyCourse
	normalized := NormalizeDailyCourses(rows)
	for i := range normalized {
		if normalized[i].Day == day {
			selected = &normalized[i]
			break
		}
	}
	if selected == nil {
		return nil, apperr.NewNotFoundOrForbidden("day not found")
	}

	points := make([]directions.Point, len(selected.Points))
	for i, p := range selected.Points {
		points[i] = directions.Point{X: p.X, Y: p.Y}
	}
	if len(points) < 2 {
		return []directions.LatLng{}, nil
	}
	return uc.Route(ctx, points)
}

func (uc *routeUseCase) Directions(ctx context.Context, req directions.Request) (json.RawMessage, error) {
	body, err := uc.directions.Raw(ctx, req)
	if err != nil {
		uc.logger.Error("Directions proxy failed: %v", err)
		return nil, err
	}
	return body, nil
}

func (uc *routeUseCase) SearchPlaces(ctx context.Context, keyword string) ([]places.Place, error) {
	result, err := uc.places.Search(ctx, keyword)
	if err != nil {
		uc.logger.Error("Place search failed for %q: %v", keyword, err)
		return nil, err
	}
	return result, nil
}
