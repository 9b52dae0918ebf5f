package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// UserService exposes read-only user profiles.
type UserService struct {
	DB *gorm.DB
}

// NewUserService constructs a UserService bound to db.
func NewUserService(db *gorm.DB) *UserService { return &UserService{DB: db} }

// List returns all users projected to username, name and avatar_url.
func (s *UserService) List(ctx context.Context) (out []domain.User, err error) {
	ctx, span := tracer.Start(ctx, "UserService.List")
	defer func() { endSpan(span, err) }()

	return repo.ListUsers(ctx, s.DB)
}

// Get returns a single user, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (u *domain.User, err error) {
	ctx, span := tracer.Start(ctx, "UserService.Get")
	defer func() { endSpan(span, err) }()

	u, err = repo.GetUser(ctx, s.DB, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}
