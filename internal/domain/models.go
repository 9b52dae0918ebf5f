// Package domain defines the persistence models for topics, articles,
// comments and users. These types are mapped with GORM and form the core
// data layer of the news API.
package domain

import "time"

// Topic is a category articles are filed under. Topics are read-only
// through the API.
type Topic struct {
	Slug        string `json:"slug"        gorm:"column:slug;type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an article/comment author. Users are read-only through the API.
type User struct {
	Username  string `json:"username"   gorm:"column:username;type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"column:name;type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:text"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a single news article.
//
// Fields:
//   - ArticleID: store-generated integer primary key.
//   - Topic / Author: references to Topic.Slug and User.Username.
//   - Votes: only ever adjusted by a signed delta, never assigned.
//   - CreatedAt: set at insert.
type Article struct {
	ArticleID     int64     `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"column:title;type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"column:topic;type:varchar(64);not null;index"`
	Author        string    `json:"author"          gorm:"column:author;type:varchar(64);not null;index"`
	Body          string    `json:"body"            gorm:"column:body;type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"column:created_at;not null;index"`
	Votes         int64     `json:"votes"           gorm:"column:votes;not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url;type:text"`

	TopicRef  Topic     `json:"-" gorm:"foreignKey:Topic;references:Slug"`
	AuthorRef User      `json:"-" gorm:"foreignKey:Author;references:Username"`
	Comments  []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a user comment on an article. Comments are removed together
// with their article.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id;not null;index:idx_article_comments,priority:1"`
	Author    string    `json:"author"     gorm:"column:author;type:varchar(64);not null"`
	Body      string    `json:"body"       gorm:"column:body;type:text;not null"`
	Votes     int64     `json:"votes"      gorm:"column:votes;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;index:idx_article_comments,priority:2"`

	AuthorRef User `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// ArticleSummary is the listing projection of an article. It never carries
// the body and adds the derived comment count.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int64     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// CommentView is a comment joined with its author's avatar.
type CommentView struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id"`
	Author    string    `json:"author"     gorm:"column:author"`
	Body      string    `json:"body"       gorm:"column:body"`
	Votes     int64     `json:"votes"      gorm:"column:votes"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	AvatarURL string    `json:"avatar_url" gorm:"column:avatar_url"`
}
