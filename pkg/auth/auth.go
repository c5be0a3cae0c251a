package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type UserKey struct{}

type UserLookup interface {
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

// ErrorHandler writes the response for a request that failed authentication.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type Manager struct {
	conf   *configs.Config
	users  UserLookup
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users UserLookup, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// Authenticator resolves the bearer token of each request to a user and
// stores it under UserKey. Requests without an Authorization header pass
// through anonymously; a header that does not resolve to a user is rejected.
func (a *Manager) Authenticator(onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)

				return
			}

			user, err := a.Authenticate(r.Context(), r.Header)
			if err != nil {
				onError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireUser rejects anonymous requests. It must run after Authenticator.
func RequireUser(onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, found := UserFromContext(r.Context()); !found {
				onError(w, r, fmt.Errorf("%w: authentication credentials were not provided", ErrUnauthenticated))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *Manager) Authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Info("error parsing token", zap.Error(err))

		return nil, fmt.Errorf("%w: error parsing token: %v", ErrUnauthenticated, err) //nolint:errorlint // the jwt error is detail only
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Info("invalid token", zap.Any("claims", claims))

		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Info("token audience mismatch", zap.Any("claims", claims))

		return nil, fmt.Errorf("%w: invalid token audience", ErrUnauthenticated)
	}

	user, err := a.lookup(ctx, claims)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthenticated)
		}

		if errors.Is(err, ErrUnauthenticated) {
			return nil, err
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, fmt.Errorf("error authenticating user: %w", err)
	}

	return user, nil
}

// lookup resolves the token subject. A UUID "sub" claim names the user
// directly; otherwise the "email" claim is used.
func (a *Manager) lookup(ctx context.Context, claims jwt.MapClaims) (*model.User, error) {
	if subject, found := claims["sub"].(string); found {
		if userUUID, err := uuid.Parse(subject); err == nil {
			return a.users.GetUserByUUID(ctx, userUUID)
		}
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Info("unable to get email from token", zap.Any("claims", claims))

		return nil, fmt.Errorf("%w: unable to get user from token", ErrUnauthenticated)
	}

	return a.users.GetUserFromEmail(ctx, email)
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, fmt.Errorf("%w: authorization header not found", ErrUnauthenticated)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return &token, nil
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, found := ctx.Value(UserKey{}).(*model.User)

	return user, found && user != nil
}
