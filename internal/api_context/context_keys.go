package api_context

import (
	"context"

	"github.com/fhuszti/videos-cdn-go/internal/model"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	CourseKey     ctxKey = "course"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	return id, ok
}

func CourseFromContext(ctx context.Context) (*model.Course, bool) {
	c, ok := ctx.Value(CourseKey).(*model.Course)
	return c, ok && c != nil
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok && id != ""
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}

// RequesterFromContext builds the requester from the authenticated claims.
// Without claims (auth disabled) the requester is anonymous staff.
func RequesterFromContext(ctx context.Context) model.Requester {
	uid, ok := AuthUserIDFromContext(ctx)
	if !ok {
		return model.Requester{Staff: true}
	}
	roles, _ := AuthRolesFromContext(ctx)
	staff := false
	for _, r := range roles {
		if r == "staff" || r == "global_staff" {
			staff = true
			break
		}
	}
	return model.Requester{UserID: uid, Staff: staff}
}
