package browse

import (
	"context"
	"sort"

	"housing-cli/api"
)

// RoomService is the slice of the backend client the discovery engine
// needs. *api.Client satisfies it.
type RoomService interface {
	GetAllRooms(ctx context.Context) ([]api.Room, error)
	GetAvailableRoomsByFilters(ctx context.Context, filters api.SearchFilters) ([]api.Room, error)
	GetRecommendations(ctx context.Context, viewerID int) ([]api.Room, error)
	AddSearchHistory(ctx context.Context, viewerID int, history api.SearchHistoryRequest) error
}

// ResultSource retrieves candidate listing sets. Every set it hands out is
// sorted ascending by nightly cost, cheapest first.
type ResultSource struct {
	Service RoomService
}

// Catalog fetches every active listing.
func (s ResultSource) Catalog(ctx context.Context) ([]api.Room, error) {
	rooms, err := s.Service.GetAllRooms(ctx)
	if err != nil {
		return nil, err
	}
	sortByCost(rooms)
	return rooms, nil
}

// ForViewer fetches the viewer's personalized set. An empty personalized
// set falls back to the full catalog: the viewer must never see "no
// listings exist" just because the recommender has nothing for them yet.
func (s ResultSource) ForViewer(ctx context.Context, viewerID int) ([]api.Room, error) {
	rooms, err := s.Service.GetRecommendations(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return s.Catalog(ctx)
	}
	sortByCost(rooms)
	return rooms, nil
}

// Search fetches the listings matching the composed filters. The result is
// meant to replace the previous set wholesale, never to be merged into it.
func (s ResultSource) Search(ctx context.Context, filters api.SearchFilters) ([]api.Room, error) {
	rooms, err := s.Service.GetAvailableRoomsByFilters(ctx, filters)
	if err != nil {
		return nil, err
	}
	sortByCost(rooms)
	return rooms, nil
}

func sortByCost(rooms []api.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Cost < rooms[j].Cost
	})
}
