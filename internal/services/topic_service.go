package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// TopicService exposes the read-only topic catalogue.
type TopicService struct {
	DB *gorm.DB
}

// NewTopicService constructs a TopicService bound to db.
func NewTopicService(db *gorm.DB) *TopicService { return &TopicService{DB: db} }

// List returns every topic.
func (s *TopicService) List(ctx context.Context) (out []domain.Topic, err error) {
	ctx, span := tracer.Start(ctx, "TopicService.List")
	defer func() { endSpan(span, err) }()

	return repo.ListTopics(ctx, s.DB)
}
