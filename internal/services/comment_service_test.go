package services

import (
	"context"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestCommentService_ListByArticle(t *testing.T) {
	svc := NewCommentService(newTestDB(t))
	ctx := context.Background()

	got, err := svc.ListByArticle(ctx, "1")
	if err != nil || len(got) != 5 {
		t.Fatalf("article 1 = %d comments, %v; want 5", len(got), err)
	}

	empty, err := svc.ListByArticle(ctx, "2")
	if err != nil {
		t.Fatalf("article 2: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("article 2 = %#v; want empty list", empty)
	}

	_, err = svc.ListByArticle(ctx, "9999")
	wantKind(t, err, domain.KindNotFound, "Article not found")

	_, err = svc.ListByArticle(ctx, "not-an-id")
	wantKind(t, err, domain.KindStoreType, "")
}

func TestCommentService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()
	before := countRows(t, db, &domain.Comment{})

	c, err := svc.Create(ctx, "2", NewComment{Username: "lurker", Body: "hello"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.CommentID == 0 || c.ArticleID != 2 || c.Author != "lurker" || c.Body != "hello" || c.Votes != 0 || c.CreatedAt.IsZero() {
		t.Fatalf("created comment unexpected: %+v", c)
	}
	if got := countRows(t, db, &domain.Comment{}); got != before+1 {
		t.Fatalf("comments = %d; want %d", got, before+1)
	}
}

func TestCommentService_Create_FailuresInsertNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()
	before := countRows(t, db, &domain.Comment{})

	_, err := svc.Create(ctx, "1", NewComment{Username: "lurker"})
	wantKind(t, err, domain.KindValidation, "Missing required fields")

	_, err = svc.Create(ctx, "1", NewComment{Body: "orphan"})
	wantKind(t, err, domain.KindValidation, "Missing required fields")

	_, err = svc.Create(ctx, "9999", NewComment{Username: "lurker", Body: "x"})
	wantKind(t, err, domain.KindNotFound, "Not Found")

	_, err = svc.Create(ctx, "1", NewComment{Username: "ghost", Body: "boo"})
	wantKind(t, err, domain.KindNotFound, "User not found")

	_, err = svc.Create(ctx, "abc", NewComment{Username: "lurker", Body: "x"})
	wantKind(t, err, domain.KindStoreType, "")

	if got := countRows(t, db, &domain.Comment{}); got != before {
		t.Fatalf("comments = %d; want unchanged %d", got, before)
	}
}

func TestCommentService_Delete_Twice(t *testing.T) {
	svc := NewCommentService(newTestDB(t))
	ctx := context.Background()

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete(1): %v", err)
	}
	wantKind(t, svc.Delete(ctx, "1"), domain.KindNotFound, "Comment not found")
	wantKind(t, svc.Delete(ctx, "x1"), domain.KindStoreType, "")
}
