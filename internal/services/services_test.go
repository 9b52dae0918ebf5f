package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/seed"
)

// newTestDB opens a fresh SQLite file loaded with the development dataset.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("svc_%d.db", time.Now().UnixNano()))
	db, err := repo.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := seed.Run(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// wantKind fails unless err classifies as kind with message msg.
func wantKind(t *testing.T, err error, kind domain.Kind, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error %q, got nil", kind, msg)
	}
	if got := domain.Classify(err); got != kind {
		t.Fatalf("kind = %s; want %s (err=%v)", got, kind, err)
	}
	if msg != "" {
		de, ok := err.(*domain.Error)
		if !ok || de.Msg != msg {
			t.Fatalf("msg = %v; want %q", err, msg)
		}
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestTopicService_List(t *testing.T) {
	svc := NewTopicService(newTestDB(t))

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("topics = %d; want 3", len(got))
	}
}

func TestUserService_ListAndGet(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	users, err := svc.List(ctx)
	if err != nil || len(users) != 4 {
		t.Fatalf("List = %d users, err %v", len(users), err)
	}

	u, err := svc.Get(ctx, "butter_bridge")
	if err != nil || u.Name != "jonny" {
		t.Fatalf("Get(butter_bridge) = %+v, %v", u, err)
	}

	_, err = svc.Get(ctx, "not_a_user")
	wantKind(t, err, domain.KindNotFound, "User not found")
}
