package middleware

import (
	"fmt"
	"net/http"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/responses"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
)

// Recoverer converts handler panics into a 500 error envelope so one bad
// request cannot take the process down.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithField(ctx, "panic", fmt.Sprint(rec))
					logg.Error(ctx, "panic recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
