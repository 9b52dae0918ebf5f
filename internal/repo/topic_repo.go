// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides read-only queries for topics.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListTopics returns all topics ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).Order("slug").Find(&out).Error
	return out, err
}

// TopicExists reports whether a topic with slug exists.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("slug = ?", slug).
		Count(&n).Error
	return n > 0, err
}
