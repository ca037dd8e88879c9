package globals

import (
	"context"
)

// JwtSecret is populated from the JWT_SECRET environment variable at
// startup (see main). The process refuses to start without it; generating
// a fresh secret would invalidate every issued token on restart.
var JwtSecret []byte

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
