package http

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-sol-vault/internal/app"
	"github.com/MKhiriev/go-sol-vault/internal/logger"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// The token must be signed with the configured key and carry the configured
// issuer. On success the token subject is stored in the request context
// under [utils.SubjectCtxKey]. Every rejection is answered with
// HTTP 401 Unauthorized and logged through the request logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, r, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error(), 0)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, r, http.StatusUnauthorized, err.Error(), 0)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.settings.TokenSignKey, h.settings.TokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg(app.MsgTokenIsExpired)
				utils.WriteError(w, r, http.StatusUnauthorized, app.MsgTokenIsExpired, 0)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, r, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, 0)
			}
			return
		}

		log.Debug().Str("subject", token.Subject).Msg("request authorized")
		ctx := utils.WithSubject(r.Context(), token.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
