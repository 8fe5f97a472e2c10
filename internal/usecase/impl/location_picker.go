package impl

import (
	"context"
	"sync"

	"kedai/internal/domain/entity"
	"kedai/internal/errors"
	"kedai/internal/usecase"

	"github.com/paulmach/orb/geo"
)

// LocationPickerOptions configures a LocationPicker.
type LocationPickerOptions struct {
	// RecenterThresholdMeters ignores map recenters closer than this to the last reported location.
	RecenterThresholdMeters float64

	// OnLocation receives every resolved location.
	OnLocation func(entity.Location)

	// OnError receives geocoding failures and timeouts. It is never called for superseded events.
	OnError func(error)
}

// LocationPicker turns marker drags, map recenters and place selections into
// resolved locations. Each event supersedes the one still in flight, and
// nothing is reported after Close.
type LocationPicker struct {
	screen    *Screen
	locations usecase.LocationUsecase
	opts      LocationPickerOptions

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	last   *entity.Location
}

// NewLocationPicker creates a picker living on its own screen scope under parent.
func NewLocationPicker(parent context.Context, locations usecase.LocationUsecase, opts LocationPickerOptions) *LocationPicker {
	return &LocationPicker{
		screen:    NewScreen(parent),
		locations: locations,
		opts:      opts,
	}
}

// Start reverse geocodes the initial coordinate. Its report is not a user change.
func (p *LocationPicker) Start(coord entity.Coordinate) {
	p.resolveCoordinate(coord)
}

// DragEnd reports the location the marker was dropped on.
func (p *LocationPicker) DragEnd(coord entity.Coordinate) {
	p.resolveCoordinate(coord)
}

// Recenter reports the new map center unless it barely moved.
// It returns false when the event was ignored.
func (p *LocationPicker) Recenter(coord entity.Coordinate) bool {
	if p.screen.Closed() {
		return false
	}

	p.mu.Lock()
	last := p.last
	p.mu.Unlock()

	if last != nil && geo.Distance(last.Coordinate().Point(), coord.Point()) < p.opts.RecenterThresholdMeters {
		return false
	}

	p.resolveCoordinate(coord)

	return true
}

// SelectPlace moves the picker to a searched place. The report has no street name.
func (p *LocationPicker) SelectPlace(placeID string) {
	if p.screen.Closed() {
		return
	}

	ctx, seq := p.begin()

	Launch(p.screen, func(context.Context) (*entity.Location, error) {
		return p.locations.ResolvePlace(ctx, placeID)
	}, func(loc *entity.Location, err error) {
		p.finish(seq, loc, err)
	})
}

// Search returns place predictions for text. It blocks until the lookup ends.
func (p *LocationPicker) Search(text string) ([]entity.PlacePrediction, error) {
	if p.screen.Closed() {
		return nil, errors.WithStack(context.Canceled)
	}

	return p.locations.SearchPlaces(p.screen.Context(), text)
}

// Current returns the last reported location.
func (p *LocationPicker) Current() (entity.Location, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		return entity.Location{}, false
	}

	return *p.last, true
}

// Wait blocks until every lookup started so far has been delivered or dropped.
func (p *LocationPicker) Wait() {
	p.screen.Wait()
}

// Close cancels lookups in flight. Later events are ignored.
func (p *LocationPicker) Close() {
	p.screen.Close()
}

func (p *LocationPicker) resolveCoordinate(coord entity.Coordinate) {
	if p.screen.Closed() {
		return
	}

	ctx, seq := p.begin()

	Launch(p.screen, func(context.Context) (*entity.Location, error) {
		return p.locations.ReverseGeocode(ctx, coord)
	}, func(loc *entity.Location, err error) {
		p.finish(seq, loc, err)
	})
}

// begin cancels the event in flight and returns the context of the new one.
func (p *LocationPicker) begin() (context.Context, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	ctx, cancel := context.WithCancel(p.screen.Context())
	p.cancel = cancel
	p.seq++

	return ctx, p.seq
}

func (p *LocationPicker) finish(seq uint64, loc *entity.Location, err error) {
	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()

		return
	}
	if err == nil && loc != nil {
		reported := *loc
		p.last = &reported
	}
	p.mu.Unlock()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if p.opts.OnError != nil {
			p.opts.OnError(err)
		}

		return
	}

	if loc != nil && p.opts.OnLocation != nil {
		p.opts.OnLocation(*loc)
	}
}
