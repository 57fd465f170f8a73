package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JahnaviYelishala1/eventconnect/pkg/client"
)

type fakeAPI struct {
	protected    *client.Protected
	protectedErr error
	ngoMe        *client.NgoMe
	ngoMeErr     error
}

func (f *fakeAPI) Protected(context.Context) (*client.Protected, error) {
	return f.protected, f.protectedErr
}

func (f *fakeAPI) NgoMe(context.Context) (*client.NgoMe, error) {
	return f.ngoMe, f.ngoMeErr
}

type fakeTokens struct {
	err       error
	refreshed bool
}

func (f *fakeTokens) Token(_ context.Context, forceRefresh bool) (string, error) {
	f.refreshed = forceRefresh
	return "tok", f.err
}

func TestResolver_NoSession(t *testing.T) {
	r := NewResolver(&fakeAPI{}, &fakeTokens{err: client.ErrNoSession})

	res := r.Resolve(context.Background())

	assert.Equal(t, NoSession, res.State)
	assert.Equal(t, RouteLogin, res.Route)
	assert.Empty(t, res.Message)
}

func TestResolver_ForcesTokenRefresh(t *testing.T) {
	tokens := &fakeTokens{}
	r := NewResolver(&fakeAPI{protected: &client.Protected{Role: "caterer"}}, tokens)

	r.Resolve(context.Background())

	assert.True(t, tokens.refreshed)
}

func TestResolver_TokenRefreshFailure(t *testing.T) {
	r := NewResolver(&fakeAPI{}, &fakeTokens{err: errors.New("idp down")})

	res := r.Resolve(context.Background())

	assert.Equal(t, Error, res.State)
	assert.Empty(t, res.Route)
	assert.NotEmpty(t, res.Message)
}

func TestResolver_ProtectedFailure(t *testing.T) {
	api := &fakeAPI{protectedErr: &client.APIError{StatusCode: 500, Message: "boom"}}
	r := NewResolver(api, &fakeTokens{})

	res := r.Resolve(context.Background())

	assert.Equal(t, Error, res.State)
}

func TestResolver_RoleRouting(t *testing.T) {
	tests := []struct {
		role  string
		state State
		route Route
	}{
		{"", RoleUnassigned, RouteRoleSelection},
		{"event_organizer", Organizer, RouteOrganizerHome},
		{"caterer", Caterer, RouteCatererHome},
		{"admin", Admin, RouteAdminReview},
	}

	for _, tc := range tests {
		t.Run("role "+tc.role, func(t *testing.T) {
			api := &fakeAPI{protected: &client.Protected{Role: tc.role}}
			r := NewResolver(api, &fakeTokens{})

			res := r.Resolve(context.Background())

			assert.Equal(t, tc.state, res.State)
			assert.Equal(t, tc.route, res.Route)
		})
	}
}

func TestResolver_UnknownRoleFallsBackToSelection(t *testing.T) {
	api := &fakeAPI{protected: &client.Protected{Role: "superuser"}}
	r := NewResolver(api, &fakeTokens{})

	res := r.Resolve(context.Background())

	assert.Equal(t, RoleUnassigned, res.State)
	assert.Equal(t, RouteRoleSelection, res.Route)
}

func TestResolver_NGOOnboarding(t *testing.T) {
	tests := []struct {
		name  string
		me    client.NgoMe
		state State
		route Route
	}{
		{"unregistered", client.NgoMe{Exists: false}, NgoUnregistered, RouteNgoRegister},
		{"documents pending", client.NgoMe{Exists: true}, NgoDocsPending, RouteNgoDocuments},
		{"ready", client.NgoMe{Exists: true, DocumentsUploaded: true}, NgoReady, RouteNgoHome},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{
				protected: &client.Protected{Role: "ngo"},
				ngoMe:     &tc.me,
			}
			r := NewResolver(api, &fakeTokens{})

			res := r.Resolve(context.Background())

			assert.Equal(t, tc.state, res.State)
			assert.Equal(t, tc.route, res.Route)
		})
	}
}

func TestResolver_NGOLookupFailure(t *testing.T) {
	api := &fakeAPI{
		protected: &client.Protected{Role: "ngo"},
		ngoMeErr:  &client.APIError{StatusCode: 502, Message: "bad gateway"},
	}
	r := NewResolver(api, &fakeTokens{})

	res := r.Resolve(context.Background())

	assert.Equal(t, Error, res.State)
	assert.NotEmpty(t, res.Message)
}
