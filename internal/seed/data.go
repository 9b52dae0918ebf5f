package seed

import (
	"time"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

const defaultImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

// Topics is the development topic set.
var Topics = []domain.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

// Users is the development user set.
var Users = []domain.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

// Articles is the development article set. Ids are assigned in slice
// order starting at 1.
var Articles = []domain.Article{
	{
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		Body:          "I find this existence challenging",
		CreatedAt:     ts("2020-07-09T20:11:00Z"),
		Votes:         100,
		ArticleImgURL: defaultImg,
	},
	{
		Title:         "Sony Vaio; or, The Laptop",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Call me Mitchell. Some years ago I found myself with a laptop and no plans.",
		CreatedAt:     ts("2020-10-16T05:03:00Z"),
		Votes:         0,
		ArticleImgURL: defaultImg,
	},
	{
		Title:         "Eight pug gifs that remind me of mitch",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "some gifs",
		CreatedAt:     ts("2020-11-03T09:12:00Z"),
		Votes:         0,
		ArticleImgURL: defaultImg,
	},
	{
		Title:         "Student SUES Mitch!",
		Topic:         "mitch",
		Author:        "rogersop",
		Body:          "We all love Mitch and his wonderful, unique typing style.",
		CreatedAt:     ts("2020-05-06T01:14:00Z"),
		Votes:         0,
		ArticleImgURL: defaultImg,
	},
	{
		Title:         "UNCOVERED: catspiracy to bring down democracy",
		Topic:         "cats",
		Author:        "rogersop",
		Body:          "Bastet walks amongst us, and the cats are taking arms!",
		CreatedAt:     ts("2020-08-03T13:14:00Z"),
		Votes:         0,
		ArticleImgURL: defaultImg,
	},
	{
		Title:         "A",
		Topic:         "mitch",
		Author:        "icellusedkars",
		Body:          "Delicious tin of cat food",
		CreatedAt:     ts("2020-10-18T01:00:00Z"),
		Votes:         0,
		ArticleImgURL: defaultImg,
	},
}

// Comments is the development comment set. ArticleID refers to the
// 1-based position in Articles.
var Comments = []domain.Comment{
	{ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Votes: 16, CreatedAt: ts("2020-04-06T12:17:00Z")},
	{ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
	{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Votes: 100, CreatedAt: ts("2020-03-01T01:13:00Z")},
	{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: ts("2020-05-15T20:19:00Z")},
	{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: ts("2020-11-03T21:00:00Z")},
	{ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: ts("2020-09-19T23:10:00Z")},
	{ArticleID: 3, Author: "butter_bridge", Body: "git push origin master", Votes: 0, CreatedAt: ts("2020-06-20T07:24:00Z")},
	{ArticleID: 5, Author: "butter_bridge", Body: "What do you see? I have no idea where this will lead us.", Votes: 16, CreatedAt: ts("2020-06-09T05:00:00Z")},
	{ArticleID: 5, Author: "icellusedkars", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts("2020-11-24T00:08:00Z")},
	{ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
}
