package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a single news post. The identifier is assigned by MongoDB on
// insert and never changes. Author and AuthorPicture are stamped from the
// authenticated identity at creation time and are never user-editable;
// Timestamp is the client-supplied ISO-8601 creation time and survives edits.
type Article struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Content       string             `bson:"content" json:"content"`
	Category      string             `bson:"category" json:"category"`
	Timestamp     string             `bson:"timestamp" json:"timestamp"`
	Author        string             `bson:"author" json:"author"`
	AuthorPicture string             `bson:"authorPicture,omitempty" json:"authorPicture,omitempty"`
}

// IsAuthoredBy reports whether the given identity name owns this article.
// Ownership is the sole authorization rule for edit and delete.
func (a *Article) IsAuthoredBy(name string) bool {
	return a.Author == name
}

// Categories is the fixed set an article must belong to.
var Categories = []string{
	"Politics",
	"Economy",
	"Technology",
	"Science",
	"Culture",
}

// CategoryValues is Categories as []interface{} for ozzo's validation.In.
func CategoryValues() []interface{} {
	values := make([]interface{}, len(Categories))
	for i, c := range Categories {
		values[i] = c
	}
	return values
}

// ArticleUpdate is the set of fields an edit may touch.
type ArticleUpdate struct {
	Title    string `bson:"title"`
	Content  string `bson:"content"`
	Category string `bson:"category"`
}

// DeletedArticle is the broadcast payload for a deletion: identifier only.
type DeletedArticle struct {
	ID string `json:"_id"`
}
