package main

import (
	"context"

	"kedai/internal/domain/entity"
	"kedai/internal/usecase/impl"
)

type pickResult struct {
	loc entity.Location
	err error
}

// runPicker drives a location picker with one event and waits for its report.
func runPicker(ctx context.Context, d *deps, event func(p *impl.LocationPicker)) (*entity.Location, error) {
	results := make(chan pickResult, 1)
	picker := impl.NewLocationPicker(ctx, d.Locations, impl.LocationPickerOptions{
		RecenterThresholdMeters: d.Config.Maps.RecenterThresholdMeters,
		OnLocation: func(loc entity.Location) {
			results <- pickResult{loc: loc}
		},
		OnError: func(err error) {
			results <- pickResult{err: err}
		},
	})
	defer picker.Close()

	event(picker)

	select {
	case r := <-results:
		if r.err != nil {
			return nil, r.err
		}

		return &r.loc, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func pickLocation(ctx context.Context, d *deps, coord entity.Coordinate) (*entity.Location, error) {
	return runPicker(ctx, d, func(p *impl.LocationPicker) {
		p.Start(coord)
	})
}

func resolvePlace(ctx context.Context, d *deps, placeID string) (*entity.Location, error) {
	return runPicker(ctx, d, func(p *impl.LocationPicker) {
		p.SelectPlace(placeID)
	})
}

// waitNavigation lets the post-mutation navigation fire before the command exits.
func waitNavigation(ctx context.Context, d *deps) error {
	return d.Navigator.Wait(ctx)
}
