package browse

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"housing-cli/api"
)

const DefaultPerPage = 10

// Browser is the hub of listing discovery for one viewer: it owns the
// current result set, the pagination window over it and the in-flight
// search bookkeeping. One Browser serves one activation at a time and is
// not safe for concurrent use; the original runs on a single event loop
// and so does every caller here.
type Browser struct {
	source  ResultSource
	log     *slog.Logger
	perPage int

	caps     Capabilities
	viewerID int

	activation string
	rooms      []api.Room
	window     Window
	searching  bool
	seq        uint64
}

// NewBrowser builds a browser for the given viewer (nil for a guest). The
// viewer's role picks the capability descriptor; there is exactly one
// browser implementation for all four roles.
func NewBrowser(service RoomService, logger *slog.Logger, viewer *api.User, perPage int) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	b := &Browser{
		source:  ResultSource{Service: service},
		log:     logger,
		perPage: perPage,
		caps:    CapabilitiesOf(RoleOf(viewer)),
		window:  Paginate(0, perPage),
	}
	if viewer != nil {
		b.viewerID = viewer.ID
	}
	return b
}

func (b *Browser) Capabilities() Capabilities { return b.caps }
func (b *Browser) Window() Window            { return b.window }
func (b *Browser) Searching() bool           { return b.searching }
func (b *Browser) Results() []api.Room       { return b.rooms }

// Activate starts a fresh activation and runs the initial fetch: the
// personalized set for viewers with recommendations, the full catalog for
// everyone else. Calling Activate again on a live activation is a no-op;
// Deactivate then Activate refetches, like returning to the page.
func (b *Browser) Activate(ctx context.Context) error {
	if b.activation != "" {
		return nil
	}
	b.activation = uuid.NewString()

	var rooms []api.Room
	var err error
	if b.caps.UsesRecommendations && b.viewerID != 0 {
		rooms, err = b.source.ForViewer(ctx, b.viewerID)
	} else {
		rooms, err = b.source.Catalog(ctx)
	}
	if err != nil {
		// The previous result set stays in place on failure.
		b.log.Warn("initial listing fetch failed", "err", err)
		return err
	}

	b.rooms = rooms
	b.window = b.window.Resize(len(b.rooms), b.perPage)
	return nil
}

// Deactivate tears the activation down. The result set survives so a
// failed re-activation still has something to show.
func (b *Browser) Deactivate() {
	b.activation = ""
	b.searching = false
}

// ApplyFilters composes the facets and issues a search. The response
// replaces the current result set and resets the window to the first page.
// Filter submissions are never cancelled, so a response that is not the
// latest issued is discarded instead of clobbering a fresher one.
func (b *Browser) ApplyFilters(ctx context.Context, facets Facets) error {
	filters, err := facets.Compose()
	if err != nil {
		return validationErr(err.Error())
	}

	seq := b.beginSearch()
	rooms, err := b.source.Search(ctx, filters)
	if !b.finishSearch(seq, rooms, err) {
		return nil
	}
	if err != nil {
		return err
	}

	if b.viewerID != 0 && filters.HasLocation() {
		b.recordSearchHistory(ctx, filters)
	}
	return nil
}

func (b *Browser) beginSearch() uint64 {
	b.seq++
	b.searching = true
	return b.seq
}

// finishSearch applies one search response. It reports whether the
// response was the latest issued; stale responses leave all state alone.
func (b *Browser) finishSearch(seq uint64, rooms []api.Room, err error) bool {
	if seq != b.seq {
		b.log.Debug("discarding stale search response", "seq", seq, "latest", b.seq)
		return false
	}
	b.searching = false
	if err != nil {
		b.log.Warn("search failed, keeping previous results", "err", err)
		return true
	}
	b.rooms = rooms
	b.window = Paginate(len(rooms), b.perPage)
	return true
}

// recordSearchHistory feeds the location facets to the recommender. Fire
// and forget: a failure only costs future recommendation quality.
func (b *Browser) recordSearchHistory(ctx context.Context, filters api.SearchFilters) {
	history := api.SearchHistoryRequest{
		CountryID: filters.CountryID,
		StateID:   filters.StateID,
		CityID:    filters.CityID,
	}
	if err := b.source.Service.AddSearchHistory(ctx, b.viewerID, history); err != nil {
		b.log.Warn("recording search history failed", "err", err)
	}
}

// Visible returns the slice of the result set on the current page.
func (b *Browser) Visible() []api.Room {
	lo, hi := b.window.Bounds(len(b.rooms), b.perPage)
	return b.rooms[lo:hi]
}

func (b *Browser) GoFirst()    { b.window = b.window.GoFirst() }
func (b *Browser) GoLast()     { b.window = b.window.GoLast() }
func (b *Browser) GoNext()     { b.window = b.window.GoNext() }
func (b *Browser) GoPrevious() { b.window = b.window.GoPrevious() }
func (b *Browser) GoTo(n int)  { b.window = b.window.GoTo(n) }
