package utils

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMutation(t *testing.T) {
	var buf bytes.Buffer
	old := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = old })

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("DELETE", "/api/bugs/b1", nil)
	c.Set(types.ContextUserKey, user.User{ID: "admin-1", Role: user.RoleAdmin})

	LogMutation(c, "delete", "bug", "b1", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "delete", entry["mutation"])
	assert.Equal(t, "bug", entry["resource_type"])
	assert.Equal(t, "b1", entry["resource_id"])
	assert.Equal(t, "admin-1", entry["user_id"])
	assert.Equal(t, "mutation", entry["message"])
	assert.NotContains(t, entry, "data")
}

func TestGetActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetActor(c)
	assert.ErrorIs(t, err, ErrNoUserInContext)

	c.Set(types.ContextUserKey, user.User{ID: "u1", Role: user.RoleUser})
	actor, err := GetActor(c)
	require.NoError(t, err)
	assert.Equal(t, user.Actor{ID: "u1", Role: user.RoleUser}, actor)
}
