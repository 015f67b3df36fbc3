package browse

import (
	"context"
	"testing"

	"housing-cli/api"
)

func adminUsers() []api.User {
	return []api.User{
		{ID: 1, Username: "admin", IsAdmin: true},
		{ID: 2, Username: "nick", IsLandlord: true, Active: false},
		{ID: 3, Username: "maria", IsTenant: true},
	}
}

func TestToggleFlipsLocalCopyWithoutRefetch(t *testing.T) {
	service := &fakeService{}
	toggle := VerificationToggle{Service: service}
	users := adminUsers()

	updated, err := toggle.Toggle(context.Background(), users, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !updated[1].Active {
		t.Error("local active flag not flipped to true")
	}
	if len(service.activeCalls) != 1 || service.activeCalls[0] != 2 {
		t.Errorf("remote calls = %v, want [2]", service.activeCalls)
	}
	// Functional update: the input slice is untouched.
	if users[1].Active {
		t.Error("input slice was mutated")
	}
}

func TestToggleBackToUnverified(t *testing.T) {
	service := &fakeService{}
	toggle := VerificationToggle{Service: service}
	users := adminUsers()
	users[1].Active = true

	updated, err := toggle.Toggle(context.Background(), users, 2)
	if err != nil {
		t.Fatal(err)
	}
	if updated[1].Active {
		t.Error("verified landlord not flipped back to unverified")
	}
}

func TestToggleRejectsNonLandlords(t *testing.T) {
	service := &fakeService{}
	toggle := VerificationToggle{Service: service}

	if _, err := toggle.Toggle(context.Background(), adminUsers(), 3); !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if _, err := toggle.Toggle(context.Background(), adminUsers(), 99); !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(service.activeCalls) != 0 {
		t.Error("rejected toggle reached the server")
	}
}

func TestToggleKeepsLocalStateOnRemoteFailure(t *testing.T) {
	service := &fakeService{activeErr: errRemote}
	toggle := VerificationToggle{Service: service}
	users := adminUsers()

	updated, err := toggle.Toggle(context.Background(), users, 2)
	if err == nil {
		t.Fatal("expected error")
	}
	if updated[1].Active {
		t.Error("local flag flipped although the remote call failed")
	}
}
