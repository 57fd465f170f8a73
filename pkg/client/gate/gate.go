// Package gate resolves the post-login navigation destination from the
// caller's role and, for NGOs, their onboarding progress. Resolution
// runs once per session entry; it never retries.
package gate

import (
	"context"
	"errors"

	"github.com/JahnaviYelishala1/eventconnect/pkg/client"
)

type State string

const (
	CheckingSession State = "CHECKING_SESSION"
	NoSession       State = "NO_SESSION"
	RoleUnassigned  State = "ROLE_UNASSIGNED"
	Organizer       State = "ORGANIZER"
	Caterer         State = "CATERER"
	NgoUnregistered State = "NGO_UNREGISTERED"
	NgoDocsPending  State = "NGO_DOCS_PENDING"
	NgoReady        State = "NGO_READY"
	Admin           State = "ADMIN"
	Error           State = "ERROR"
)

type Route string

const (
	RouteLogin         Route = "login"
	RouteRoleSelection Route = "role-selection"
	RouteOrganizerHome Route = "organizer-home"
	RouteCatererHome   Route = "caterer-home"
	RouteNgoRegister   Route = "ngo-register"
	RouteNgoDocuments  Route = "ngo-documents"
	RouteNgoHome       Route = "ngo-home"
	RouteAdminReview   Route = "admin-ngo-review"
)

const errMessage = "could not verify your account, please try again"

// Resolution is the terminal outcome of one resolution pass. Route is
// empty only in the Error state; Message is set only in the Error state.
type Resolution struct {
	State   State
	Route   Route
	Message string
}

// API is the slice of the REST client the resolver needs.
type API interface {
	Protected(ctx context.Context) (*client.Protected, error)
	NgoMe(ctx context.Context) (*client.NgoMe, error)
}

type Resolver struct {
	api    API
	tokens client.TokenSource
}

func NewResolver(api API, tokens client.TokenSource) *Resolver {
	return &Resolver{api: api, tokens: tokens}
}

// Resolve runs a single resolution pass. The token is force-refreshed
// to catch revoked sessions before any API call is made.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	if _, err := r.tokens.Token(ctx, true); err != nil {
		if errors.Is(err, client.ErrNoSession) {
			return Resolution{State: NoSession, Route: RouteLogin}
		}
		return Resolution{State: Error, Message: errMessage}
	}

	me, err := r.api.Protected(ctx)
	if err != nil {
		return Resolution{State: Error, Message: errMessage}
	}

	switch me.Role {
	case "admin":
		return Resolution{State: Admin, Route: RouteAdminReview}
	case "event_organizer":
		return Resolution{State: Organizer, Route: RouteOrganizerHome}
	case "caterer":
		return Resolution{State: Caterer, Route: RouteCatererHome}
	case "ngo":
		return r.resolveNGO(ctx)
	default:
		// Unassigned or unrecognized roles both go to role selection.
		return Resolution{State: RoleUnassigned, Route: RouteRoleSelection}
	}
}

func (r *Resolver) resolveNGO(ctx context.Context) Resolution {
	ngo, err := r.api.NgoMe(ctx)
	if err != nil {
		return Resolution{State: Error, Message: errMessage}
	}

	switch {
	case !ngo.Exists:
		return Resolution{State: NgoUnregistered, Route: RouteNgoRegister}
	case !ngo.DocumentsUploaded:
		return Resolution{State: NgoDocsPending, Route: RouteNgoDocuments}
	default:
		return Resolution{State: NgoReady, Route: RouteNgoHome}
	}
}
