package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/seed"
)

// --- test DB helper (pure-Go sqlite file, seeded) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("router_%d.db", time.Now().UnixNano()))
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

func testConfig() config.Config {
	return config.Config{
		APIBasePath: "/api",
		RateRPS:     1000,
		RateBurst:   1000,
		Security:    config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:        config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), testConfig())
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func wantMsg(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d; want %d (body=%s)", w.Code, status, w.Body.String())
	}
	var body struct {
		Msg string `json:"msg"`
	}
	decode(t, w, &body)
	if body.Msg != msg {
		t.Fatalf("msg = %q; want %q", body.Msg, msg)
	}
}

type articleBody struct {
	Article struct {
		ArticleID int64  `json:"article_id"`
		Topic     string `json:"topic"`
		Author    string `json:"author"`
		Votes     int64  `json:"votes"`
	} `json:"article"`
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r := newTestRouter(t)

	// /health works
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = do(t, r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404 with the fixed message
	wantMsg(t, do(t, r, http.MethodGet, "/not-a-route", ""), http.StatusNotFound, "404 - request not found")
	wantMsg(t, do(t, r, http.MethodGet, "/api/not-a-route", ""), http.StatusNotFound, "404 - request not found")

	// NoMethod → 405 (POST /health)
	w = do(t, r, http.MethodPost, "/health", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"https://news.example"}}
	RegisterRoutes(r, newTestDB(t), cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://news.example")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://news.example" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}

	// Origins outside the allowlist are refused without ACAO.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin status = %d; want 403", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected ACAO %q for foreign origin", got)
	}
}

func TestRegisterRoutes_SwaggerToggle(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/swagger/index.html", ""); w.Code != http.StatusNotFound {
		t.Fatalf("swagger disabled: got %d; want 404", w.Code)
	}

	gin.SetMode(gin.TestMode)
	r2 := gin.New()
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	RegisterRoutes(r2, newTestDB(t), cfg)
	if w := do(t, r2, http.MethodGet, "/swagger/doc.json", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "NC News API") {
		t.Fatalf("swagger doc.json: code=%d body=%.120s", w.Code, w.Body.String())
	}
}

func TestRegisterRoutes_RateLimit_ExemptsHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig()
	cfg.RateRPS = 0
	cfg.RateBurst = 1
	RegisterRoutes(r, newTestDB(t), cfg)

	if w := do(t, r, http.MethodGet, "/api/topics", ""); w.Code != http.StatusOK {
		t.Fatalf("first request = %d; want 200", w.Code)
	}
	w := do(t, r, http.MethodGet, "/api/topics", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d; want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
	for i := 0; i < 3; i++ {
		if w := do(t, r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
			t.Fatalf("health #%d = %d; want 200", i, w.Code)
		}
	}
}

func TestAPI_EndpointsAndTopics(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api = %d", w.Code)
	}
	var ep struct {
		Endpoints map[string]any `json:"endpoints"`
	}
	decode(t, w, &ep)
	if _, ok := ep.Endpoints["GET /api/topics"]; !ok {
		t.Fatalf("endpoints doc missing GET /api/topics: %v", ep.Endpoints)
	}

	w = do(t, r, http.MethodGet, "/api/topics", "")
	var topics struct {
		Topics []struct {
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"topics"`
	}
	decode(t, w, &topics)
	if len(topics.Topics) != len(seed.Topics) {
		t.Fatalf("topics = %d; want %d", len(topics.Topics), len(seed.Topics))
	}
}

func TestAPI_GetArticleAndVotes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/articles/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET article 1 = %d (%s)", w.Code, w.Body.String())
	}
	var got articleBody
	decode(t, w, &got)
	if got.Article.ArticleID != 1 || got.Article.Votes != 100 || got.Article.Topic != "mitch" || got.Article.Author != "butter_bridge" {
		t.Fatalf("article 1 unexpected: %+v", got.Article)
	}

	w = do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes":-1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("PATCH = %d (%s)", w.Code, w.Body.String())
	}
	decode(t, w, &got)
	if got.Article.Votes != 99 {
		t.Fatalf("votes after -1 = %d; want 99", got.Article.Votes)
	}

	wantMsg(t, do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes":"one"}`), http.StatusBadRequest, "inc_votes must be an integer")
	wantMsg(t, do(t, r, http.MethodPatch, "/api/articles/1", `{}`), http.StatusBadRequest, "inc_votes must be an integer")
	wantMsg(t, do(t, r, http.MethodPatch, "/api/articles/9999", `{"inc_votes":1}`), http.StatusNotFound, "Not Found")

	wantMsg(t, do(t, r, http.MethodGet, "/api/articles/9999", ""), http.StatusNotFound, "Not Found")
	wantMsg(t, do(t, r, http.MethodGet, "/api/articles/abc", ""), http.StatusBadRequest, "Bad request")

	// PUT on a known route is a method error, not a missing route.
	if w := do(t, r, http.MethodPut, "/api/articles/1", `{}`); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("PUT article = %d; want 405", w.Code)
	}
}

func TestAPI_ListArticles(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/articles", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/articles = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `"body"`) {
		t.Fatalf("listing must not expose body: %s", w.Body.String())
	}
	var list struct {
		Articles []struct {
			ArticleID    int64     `json:"article_id"`
			CreatedAt    time.Time `json:"created_at"`
			CommentCount int       `json:"comment_count"`
		} `json:"articles"`
	}
	decode(t, w, &list)
	if len(list.Articles) != len(seed.Articles) {
		t.Fatalf("articles = %d; want %d", len(list.Articles), len(seed.Articles))
	}
	for i := 1; i < len(list.Articles); i++ {
		if list.Articles[i-1].CreatedAt.Before(list.Articles[i].CreatedAt) {
			t.Fatalf("default order is not created_at desc at %d", i)
		}
	}
	for _, a := range list.Articles {
		if a.ArticleID == 1 && a.CommentCount != 5 {
			t.Fatalf("article 1 comment_count = %d; want 5", a.CommentCount)
		}
	}

	if w := do(t, r, http.MethodGet, "/api/articles?sort_by=title&order=asc", ""); w.Code != http.StatusOK {
		t.Fatalf("title asc = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/articles?topic=cats", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"topic":"cats"`) {
		t.Fatalf("topic filter: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodGet, "/api/articles?topic=paper", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"articles":[]`) {
		t.Fatalf("known empty topic: %d %s", w.Code, w.Body.String())
	}
	wantMsg(t, do(t, r, http.MethodGet, "/api/articles?topic=dogs", ""), http.StatusNotFound, "Topic not found")
	wantMsg(t, do(t, r, http.MethodGet, "/api/articles?sort_by=body", ""), http.StatusBadRequest, "Invalid sort_by query")
	wantMsg(t, do(t, r, http.MethodGet, "/api/articles?order=sideways", ""), http.StatusBadRequest, "Invalid order query")
}

func TestAPI_CommentsLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/articles/2/comments", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"comments":[]`) {
		t.Fatalf("article 2 comments: %d %s", w.Code, w.Body.String())
	}
	wantMsg(t, do(t, r, http.MethodGet, "/api/articles/9999/comments", ""), http.StatusNotFound, "Article not found")

	w = do(t, r, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker","body":"first!"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST comment = %d (%s)", w.Code, w.Body.String())
	}
	var created struct {
		Comment struct {
			CommentID int64  `json:"comment_id"`
			ArticleID int64  `json:"article_id"`
			Author    string `json:"author"`
			Body      string `json:"body"`
			Votes     int64  `json:"votes"`
		} `json:"comment"`
	}
	decode(t, w, &created)
	if created.Comment.ArticleID != 2 || created.Comment.Author != "lurker" || created.Comment.Body != "first!" || created.Comment.Votes != 0 {
		t.Fatalf("created comment unexpected: %+v", created.Comment)
	}

	wantMsg(t, do(t, r, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker"}`), http.StatusBadRequest, "Missing required fields")
	wantMsg(t, do(t, r, http.MethodPost, "/api/articles/2/comments", `{"username":"nobody","body":"x"}`), http.StatusNotFound, "User not found")
	wantMsg(t, do(t, r, http.MethodPost, "/api/articles/9999/comments", `{"username":"lurker","body":"x"}`), http.StatusNotFound, "Not Found")

	del := fmt.Sprintf("/api/comments/%d", created.Comment.CommentID)
	w = do(t, r, http.MethodDelete, del, "")
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("DELETE = %d body=%q", w.Code, w.Body.String())
	}
	wantMsg(t, do(t, r, http.MethodDelete, del, ""), http.StatusNotFound, "Comment not found")
	wantMsg(t, do(t, r, http.MethodDelete, "/api/comments/not-a-number", ""), http.StatusBadRequest, "Bad request")
}

func TestAPI_Users(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/users", "")
	var users struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
	}
	decode(t, w, &users)
	if len(users.Users) != len(seed.Users) {
		t.Fatalf("users = %d; want %d", len(users.Users), len(seed.Users))
	}

	w = do(t, r, http.MethodGet, "/api/users/lurker", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"do_nothing"`) {
		t.Fatalf("GET user: %d %s", w.Code, w.Body.String())
	}
	wantMsg(t, do(t, r, http.MethodGet, "/api/users/nobody", ""), http.StatusNotFound, "User not found")
}

func TestAPI_GzipWhenRequested(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET topics = %d", w.Code)
	}
	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q; want gzip", got)
	}
}

func TestLimitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(16))
	r.POST("/api/articles/1/comments", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusCreated, "%d", len(b))
	})

	for _, tc := range []struct {
		size int
		want int
	}{
		{0, http.StatusCreated},
		{16, http.StatusCreated},
		{17, http.StatusRequestEntityTooLarge},
	} {
		w := do(t, r, http.MethodPost, "/api/articles/1/comments", strings.Repeat("x", tc.size))
		if w.Code != tc.want {
			t.Fatalf("body of %d bytes: status %d; want %d", tc.size, w.Code, tc.want)
		}
	}
}

func TestGroupWithPrefix(t *testing.T) {
	for _, tc := range []struct {
		prefix string
		path   string
	}{
		{"", "/topics"},
		{"/", "/topics"},
		{"/api", "/api/topics"},
		{"/news/v1", "/news/v1/topics"},
	} {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		groupWithPrefix(r, tc.prefix).GET("/topics", func(c *gin.Context) { c.Status(http.StatusOK) })
		if w := do(t, r, http.MethodGet, tc.path, ""); w.Code != http.StatusOK {
			t.Fatalf("prefix %q: GET %s = %d", tc.prefix, tc.path, w.Code)
		}
	}
}

// Smoke test that a request traverses the otel + ratelimit + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig()
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour}
	RegisterRoutes(r, newTestDB(t), cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.URL.Scheme = "https"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
}
