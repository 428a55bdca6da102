package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the request's ray ID.
	Header = "X-Ray-ID"
	// LocalsKey is where the ray ID is stored on the fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a ray ID.
// An incoming X-Ray-ID header is reused so callers can correlate their own logs.
func New() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     Header,
		Generator:  uuid.NewString,
		ContextKey: LocalsKey,
	})
}
