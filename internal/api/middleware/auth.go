package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/BMS-SchedulingService/internal/api/handlers"
)

type contextKey string

// ClientIDKey ключ контекста с ID аутентифицированного клиента
const ClientIDKey contextKey = "clientID"

// HeaderClientID заголовок с ID клиента, проставляется API-шлюзом
const HeaderClientID = "X-Client-ID"

// Auth проверяет наличие и корректность заголовка X-Client-ID
// и кладет ID клиента в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIDStr := r.Header.Get(HeaderClientID)
		if clientIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок "+HeaderClientID)
			return
		}

		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil || clientID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок "+HeaderClientID)
			return
		}

		ctx := context.WithValue(r.Context(), ClientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext возвращает ID клиента, положенный Auth middleware
func ClientIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ClientIDKey).(int64)
	return id, ok
}
