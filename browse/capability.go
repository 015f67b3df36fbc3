package browse

import "housing-cli/api"

// Role is the viewer's capacity when browsing. The original site rendered
// a separate home page per role; here a single browser is parameterized by
// the capabilities the role grants.
type Role int

const (
	RoleGuest Role = iota
	RoleTenant
	RoleLandlord
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleTenant:
		return "tenant"
	case RoleLandlord:
		return "landlord"
	case RoleAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// Capabilities describes what the viewer can do with a listing.
type Capabilities struct {
	CanBook             bool
	CanReview           bool
	UsesRecommendations bool
}

// RoleOf maps a user record to a browsing role. A user who is both tenant
// and landlord browses as a tenant, which is the capacity that matters for
// discovery. A nil user is a guest.
func RoleOf(user *api.User) Role {
	if user == nil {
		return RoleGuest
	}
	switch {
	case user.IsAdmin:
		return RoleAdmin
	case user.IsTenant:
		return RoleTenant
	case user.IsLandlord:
		return RoleLandlord
	default:
		return RoleGuest
	}
}

// CapabilitiesOf selects the capability descriptor for a role. Only
// tenants book and review, and only tenants get a personalized result set.
func CapabilitiesOf(role Role) Capabilities {
	switch role {
	case RoleTenant:
		return Capabilities{CanBook: true, CanReview: true, UsesRecommendations: true}
	default:
		return Capabilities{}
	}
}
