package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/transport"
)

func setupRepo(t *testing.T) *repo.GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return repo.New(db)
}

func createUser(t *testing.T, r *repo.GormRepo, email, role string) *models.User {
	user := &models.User{Email: email, Name: "Test User", Role: role}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}

func transportCategory(name, slug string) transport.CreateCategoryRequest {
	return transport.CreateCategoryRequest{Name: name, Slug: slug}
}
