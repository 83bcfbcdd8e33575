package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LogMutation writes one operational log line for a successful write. It is
// not an audit trail: nothing is persisted beyond the process log. It is a
// variable so tests can capture or silence it.
var LogMutation = func(c *gin.Context, action, resourceType, resourceID string, after any) {
	evt := log.Info().
		Str("mutation", action).
		Str("resource_type", resourceType).
		Str("resource_id", resourceID).
		Str("ip", c.ClientIP()).
		Str("user_agent", c.GetHeader("User-Agent"))

	if u, err := GetCurrentUser(c); err == nil {
		evt = evt.Str("user_id", u.ID).Str("role", string(u.Role))
	}
	if after != nil {
		evt = evt.Interface("data", after)
	}
	evt.Msg("mutation")
}
