// file: internals/helpers/parse.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca path param dan memastikan UUID valid.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	return uuid.Parse(raw)
}

// AtoiOr: parse int dengan fallback default.
func AtoiOr(def int, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// GetUserIDFromLocals membaca user_id hasil hydrate AuthJWT.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRoleFromLocals membaca userRole hasil hydrate AuthJWT.
func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return v
	}
	return ""
}
