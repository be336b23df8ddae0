// Package auth holds the authorization rules, JWT management and password
// hashing. The Authorize rule engine is a pure function of the actor, the
// action and the target's owner, so it is testable with no database or
// request machinery behind it.
package auth

import "github.com/Jason26214/MoviesApi/internal/apperr"

// Actor is the authenticated identity attached to a request. A nil *Actor
// means the request carried no valid credentials.
type Actor struct {
	ID   string
	Role string
}

type Action int

const (
	ActionReadMovie Action = iota
	ActionCreateMovie
	ActionUpdateMovie
	ActionDeleteMovie
	ActionReadReviews
	ActionCreateReview
	ActionUpdateReview
	ActionDeleteReview
	ActionListUsers
)

const roleAdmin = "admin"

// Authorize decides whether actor may perform action against a resource
// owned by ownerID. ownerID is only consulted for review edits; pass "" for
// everything else. A nil return means ALLOW; otherwise the error is an
// apperr with kind Unauthenticated (no actor) or Forbidden (actor present
// but not privileged).
func Authorize(actor *Actor, action Action, ownerID string) error {
	switch action {
	case ActionReadMovie, ActionReadReviews:
		return nil

	case ActionCreateMovie, ActionUpdateMovie, ActionDeleteMovie, ActionListUsers:
		if actor == nil {
			return apperr.New(apperr.Unauthenticated, "authentication required")
		}
		if actor.Role != roleAdmin {
			return apperr.New(apperr.Forbidden, "admin privileges required")
		}
		return nil

	case ActionCreateReview:
		if actor == nil {
			return apperr.New(apperr.Unauthenticated, "authentication required")
		}
		return nil

	case ActionUpdateReview, ActionDeleteReview:
		if actor == nil {
			return apperr.New(apperr.Unauthenticated, "authentication required")
		}
		if actor.Role != roleAdmin && actor.ID != ownerID {
			return apperr.New(apperr.Forbidden, "only the review author or an admin may modify it")
		}
		return nil
	}

	return apperr.New(apperr.Forbidden, "unknown action")
}
