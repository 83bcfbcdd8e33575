//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/config/db"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/linskybing/bugtrackr/internal/testutils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestContext holds all test dependencies
type TestContext struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Services   *application.Services
	AdminToken string
	UserToken  string
	TestAdmin  user.User
	TestUser   user.User
}

var testCtx *TestContext

func TestMain(m *testing.M) {
	cleanup, err := setupTestEnvironment()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up test environment")
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func setupTestEnvironment() (func(), error) {
	ctx := context.Background()
	dsn, stop, err := testutils.SetupPostgres(ctx)
	if err != nil {
		return nil, err
	}

	gdb, err := db.OpenDSN(dsn)
	if err != nil {
		stop()
		return nil, err
	}
	if err := gdb.Migrator().DropTable(db.Models()...); err != nil {
		stop()
		return nil, fmt.Errorf("failed to drop tables: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		stop()
		return nil, fmt.Errorf("failed to migrate: %v", err)
	}

	repos := repository.New(gdb)
	router := testutils.SetupRouter(repos)
	services := application.New(repos)

	admin, err := services.User.CreateAdmin("Integration Admin", "admin@integration.test", "adminpass")
	if err != nil {
		stop()
		return nil, err
	}
	regular, err := services.User.RegisterUser(user.RegisterInput{
		Name:     "Integration User",
		Email:    "user@integration.test",
		Password: "userpass",
	})
	if err != nil {
		stop()
		return nil, err
	}

	testCtx = &TestContext{
		Router:     router,
		DB:         gdb,
		Services:   services,
		AdminToken: testutils.MintToken(admin.ID, admin.Role),
		UserToken:  testutils.MintToken(regular.ID, regular.Role),
		TestAdmin:  admin,
		TestUser:   regular,
	}

	return func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
		stop()
	}, nil
}

// GetTestContext returns the shared test context
func GetTestContext() *TestContext {
	return testCtx
}

func mintFor(u user.User) string {
	return testutils.MintToken(u.ID, u.Role)
}
