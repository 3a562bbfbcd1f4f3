package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/user"
	"github.com/mhdalhzau/memoor-sub001/internal/handler/http/response"
)

// RequireAttendanceManager requires a role allowed to bulk-edit
// attendance months (administrasi or manager).
func RequireAttendanceManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if !user.Role(roleStr).CanManageAttendance() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
