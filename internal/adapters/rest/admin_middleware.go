package rest

import (
	"crypto/hmac"
	"net/http"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

// AdminAuthMiddleware пропускает запрос, если предъявлен админ-токен
// (заголовок X-Admin-Token, сравнение постоянного времени) либо
// telegram_id запроса есть в списке админов.
func AdminAuthMiddleware(adminToken string, adminIDs map[int64]bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"middleware": "AdminAuth"})

			token := r.Header.Get("X-Admin-Token")
			if adminToken != "" && token != "" && hmac.Equal([]byte(token), []byte(adminToken)) {
				next.ServeHTTP(w, r)
				return
			}

			if id := viewerID(r); id != 0 && adminIDs[id] {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn("Admin access denied", port.Fields{"remote_addr": r.RemoteAddr})
			WriteJSONError(w, http.StatusForbidden, "Admin access required")
		})
	}
}
