package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ipsum-store/internal/config"
	"github.com/ipsum-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func newTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789abcdef0123456789"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordMinLength = 8
	return cfg
}

func newTestAuthService(t *testing.T, db *gorm.DB) (*AuthService, repository.UserRepository) {
	t.Helper()
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(newTestConfig(), userRepo), userRepo
}

func strp(s string) *string { return &s }

func uintp(v uint) *uint { return &v }
