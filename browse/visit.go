package browse

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"housing-cli/api"
)

type VisitService interface {
	AddVisit(ctx context.Context, visit api.VisitRequest) (string, error)
}

// VisitSink receives a copy of every successfully recorded visit, e.g. a
// local log. Optional.
type VisitSink interface {
	VisitRecorded(viewerID, roomID int)
}

// VisitRecorder issues at most one visit event per activation of a
// listing's detail view. The guard is owned by the activation itself, not
// by any individual load stage: however many asynchronous fetches complete
// while the view is up, only the first RecordOnce goes to the wire.
type VisitRecorder struct {
	service VisitService
	sink    VisitSink
	log     *slog.Logger

	token    string
	recorded bool
}

func NewVisitRecorder(service VisitService, sink VisitSink, logger *slog.Logger) *VisitRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &VisitRecorder{service: service, sink: sink, log: logger}
}

// Activate opens a new activation and arms the guard.
func (r *VisitRecorder) Activate() {
	r.token = uuid.NewString()
	r.recorded = false
}

// Deactivate invalidates the guard; RecordOnce becomes a no-op until the
// next activation.
func (r *VisitRecorder) Deactivate() {
	r.token = ""
}

// RecordOnce records that the viewer examined the listing. The attempt is
// consumed whether or not the request succeeds: there are no retries, so a
// failed visit is simply lost.
func (r *VisitRecorder) RecordOnce(ctx context.Context, viewerID, roomID int) {
	if r.token == "" || r.recorded {
		return
	}
	r.recorded = true

	message, err := r.service.AddVisit(ctx, api.VisitRequest{UserID: viewerID, RoomID: roomID})
	if err != nil {
		r.log.Warn("recording visit failed", "room", roomID, "err", err)
		return
	}
	r.log.Debug("visit recorded", "room", roomID, "message", message)
	if r.sink != nil {
		r.sink.VisitRecorded(viewerID, roomID)
	}
}
