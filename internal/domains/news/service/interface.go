package service

import (
	"context"

	authmodel "news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/news/model"
)

// ArticleService holds the business rules: duplicate-title rejection,
// author-only mutation, field preservation on edit, and the broadcast that
// follows every successful mutation.
type ArticleService interface {
	List(ctx context.Context) ([]model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	Create(ctx context.Context, identity *authmodel.Identity, req model.CreateArticleRequest) (*model.Article, error)
	Update(ctx context.Context, identity *authmodel.Identity, id string, req model.UpdateArticleRequest) (*model.Article, error)
	Delete(ctx context.Context, identity *authmodel.Identity, id string) error
}
