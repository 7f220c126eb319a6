// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi token akses yang diterbitkan identity service
// (autentikasi itu sendiri di luar scope backend ini), lalu meng-hydrate
// Locals: user_id (string UUID) dan userRole.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// 3) user_id: ambil id/sub/user_id dalam urutan preferensi
		userID := ""
		switch {
		case strClaim(claims, "id") != "":
			userID = strClaim(claims, "id")
		case strClaim(claims, "sub") != "":
			userID = strClaim(claims, "sub")
		case strClaim(claims, "user_id") != "":
			userID = strClaim(claims, "user_id")
		}
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
		}
		if _, err := uuid.Parse(userID); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id tidak valid")
		}
		c.Locals("user_id", userID)

		// 4) role tunggal (owner|admin|evaluator|user)
		if role := strClaim(claims, "role"); role != "" {
			c.Locals("userRole", strings.ToLower(role))
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
