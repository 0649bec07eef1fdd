package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// Заголовки добавляет API Gateway после проверки токена
const (
	userIDHeader   = "X-User-ID"
	userRoleHeader = "X-User-Role"
)

type contextKey string

const identityKey = contextKey("identity")

// Identity - аутентифицированный пользователь запроса
type Identity struct {
	UserID string
	Role   domain.UserRole
}

func identityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// parseIdentity: нет заголовка - ok=false без текста ошибки, битый заголовок - текст ошибки.
func parseIdentity(r *http.Request) (Identity, bool, string) {
	userIDStr := r.Header.Get(userIDHeader)
	if userIDStr == "" {
		return Identity{}, false, ""
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return Identity{}, false, "Authentication error: Invalid User ID format"
	}

	role := domain.RoleUser
	if raw := r.Header.Get(userRoleHeader); raw != "" {
		role = domain.UserRole(raw)
		if !role.IsValid() {
			return Identity{}, false, "Authentication error: Invalid user role"
		}
	}
	return Identity{UserID: userID.String(), Role: role}, true, ""
}

// AuthMiddleware извлекает пользователя из X-User-ID / X-User-Role.
// Запрос без пользователя отклоняется с 401.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok, problem := parseIdentity(r)
		if problem != "" {
			WriteJSONError(w, http.StatusUnauthorized, problem)
			return
		}
		if !ok {
			// либо ошибка конфигурации, либо прямой доступ в обход Gateway
			WriteJSONError(w, http.StatusUnauthorized, "Authentication error: User ID header is missing")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware - как AuthMiddleware, но анонимный запрос пропускается.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok, problem := parseIdentity(r)
		if problem != "" {
			WriteJSONError(w, http.StatusUnauthorized, problem)
			return
		}
		if ok {
			r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает только пользователей с указанной ролью. Ставится после AuthMiddleware.
func RequireRole(role domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := identityFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if identity.Role != role {
				WriteJSONError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
