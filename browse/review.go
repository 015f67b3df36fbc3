package browse

import (
	"context"
	"strings"
	"time"

	"housing-cli/api"
)

type ReviewService interface {
	AddReview(ctx context.Context, review api.Review) (api.Review, error)
}

// ReviewManager submits one rating-plus-comment per action. There is no
// edit or delete path; whatever the server answers is surfaced verbatim.
type ReviewManager struct {
	service ReviewService
	caps    Capabilities
	viewer  *api.User
}

func NewReviewManager(service ReviewService, viewer *api.User) *ReviewManager {
	return &ReviewManager{
		service: service,
		caps:    CapabilitiesOf(RoleOf(viewer)),
		viewer:  viewer,
	}
}

type reviewInput struct {
	RoomID int `validate:"required,gt=0"`
	Score  int `validate:"min=0,max=5"`
}

// Submit posts the viewer's review of the room, dated today.
func (m *ReviewManager) Submit(ctx context.Context, roomID, score int, comment string) (api.Review, error) {
	if !m.caps.CanReview {
		return api.Review{}, validationErr("only tenants can review a room")
	}
	if err := checkStruct(reviewInput{RoomID: roomID, Score: score}); err != nil {
		return api.Review{}, err
	}

	review := api.Review{
		Date:         DateString(time.Now()),
		Score:        score,
		ReviewerName: strings.TrimSpace(m.viewer.Name + " " + m.viewer.Lastname),
		Comments:     comment,
		UserID:       m.viewer.ID,
		RoomID:       roomID,
	}
	return m.service.AddReview(ctx, review)
}
