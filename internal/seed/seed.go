// Package seed loads the development dataset (topics, users, articles and
// comments) into a database. It is used by cmd/seed, by the server when
// SEED_ON_START is set, and by tests that need a known starting state.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Run drops the news tables, recreates the schema and inserts the dataset.
// Article ids are 1..len(Articles) in slice order on a fresh schema.
func Run(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	// Children first so FK constraints do not block the drop.
	if err := db.Migrator().DropTable(&domain.Comment{}, &domain.Article{}, &domain.User{}, &domain.Topic{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.AutoMigrate(&domain.Topic{}, &domain.User{}, &domain.Article{}, &domain.Comment{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		topics := append([]domain.Topic(nil), Topics...)
		if err := tx.Create(&topics).Error; err != nil {
			return fmt.Errorf("insert topics: %w", err)
		}
		users := append([]domain.User(nil), Users...)
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("insert users: %w", err)
		}

		ids := make([]int64, len(Articles))
		for i, a := range Articles {
			a := a
			if err := tx.Omit(clause.Associations).Create(&a).Error; err != nil {
				return fmt.Errorf("insert article %d: %w", i+1, err)
			}
			ids[i] = a.ArticleID
		}

		for i, c := range Comments {
			c := c
			if c.ArticleID < 1 || int(c.ArticleID) > len(ids) {
				return fmt.Errorf("comment %d references unknown article %d", i+1, c.ArticleID)
			}
			c.ArticleID = ids[c.ArticleID-1]
			if err := tx.Omit(clause.Associations).Create(&c).Error; err != nil {
				return fmt.Errorf("insert comment %d: %w", i+1, err)
			}
		}
		return nil
	})
}
