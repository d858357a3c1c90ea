package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request and response header carrying the ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key read by logger.WithRayID.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a ray id.
// An incoming X-Ray-ID header is kept, otherwise a UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
