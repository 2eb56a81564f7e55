package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-backend/internal/domains/news/model"
)

// ArticleRepository is the data-access boundary for articles. The MongoDB
// implementation lives in mongo.go; tests substitute an in-memory one.
type ArticleRepository interface {
	// FindAll returns every article in storage order.
	FindAll(ctx context.Context) ([]model.Article, error)

	// FindByID returns model.ErrArticleNotFound when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Article, error)

	// FindByTitle is the duplicate-title check. Returns
	// model.ErrArticleNotFound when the title is free.
	FindByTitle(ctx context.Context, title string) (*model.Article, error)

	// Insert stores a new article and returns its assigned identifier.
	Insert(ctx context.Context, article *model.Article) (primitive.ObjectID, error)

	// Update merges the editable fields into an existing document.
	Update(ctx context.Context, id primitive.ObjectID, update model.ArticleUpdate) error

	// Delete removes the document.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
