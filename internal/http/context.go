package http

import (
	"context"

	"github.com/padualabs/userapi/internal/domain"
)

type ctxKey string

const ctxKeyUser ctxKey = "current_user"

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}
