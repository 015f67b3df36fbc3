package browse

import (
	"context"

	"housing-cli/api"
)

type UserService interface {
	SetActive(ctx context.Context, userID int, active bool) (api.User, error)
}

// VerificationToggle flips a landlord between verified and unverified. The
// local copy is updated functionally after the remote call instead of being
// re-fetched; local and remote are assumed consistent afterwards.
type VerificationToggle struct {
	Service UserService
}

// Toggle flips the verification flag of the user with the given id inside
// users and returns the updated slice. The input slice is not mutated.
func (t VerificationToggle) Toggle(ctx context.Context, users []api.User, userID int) ([]api.User, error) {
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return users, validationErr("unknown user")
	}
	if !users[idx].IsLandlord {
		return users, validationErr("only landlords can be verified")
	}

	if _, err := t.Service.SetActive(ctx, userID, !users[idx].Active); err != nil {
		return users, err
	}

	updated := make([]api.User, len(users))
	copy(updated, users)
	updated[idx].Active = !updated[idx].Active
	return updated, nil
}
