package repo

import (
	"fmt"
	"strings"
	"testing"

	"energy-tracker/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.HistoryRecord{}))
	return gdb
}

func seedUser(t *testing.T, users *UserRepository, username, email, location string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Location:     location,
		Role:         models.RoleUser,
	}
	require.NoError(t, users.Create(u))
	return u
}
