package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodel "news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/news/model"
	"news-backend/internal/domains/news/repository"
	"news-backend/internal/realtime"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type articleService struct {
	articleRepo repository.ArticleRepository
	broadcaster realtime.Broadcaster
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	broadcaster realtime.Broadcaster,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		broadcaster: broadcaster,
	}
}

// parseID turns the path parameter into an ObjectID. A malformed hex string
// is a client error, not a lookup miss.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidID
	}
	return objectID, nil
}

func (s *articleService) List(ctx context.Context) ([]model.Article, error) {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) Get(ctx context.Context, id string) (*model.Article, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.articleRepo.FindByID(ctx, objectID)
}

// Create stores a new article stamped with the caller's identity, then
// broadcasts it. Ordering per mutation is fixed: duplicate check, insert,
// broadcast, return.
func (s *articleService) Create(
	ctx context.Context,
	identity *authmodel.Identity,
	req model.CreateArticleRequest,
) (*model.Article, error) {
	// Duplicate titles are rejected regardless of any other field.
	existing, err := s.articleRepo.FindByTitle(ctx, req.Title)
	if err != nil && !errors.Is(err, model.ErrArticleNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate title: %w", err)
	}
	if existing != nil {
		return nil, model.ErrDuplicateTitle
	}

	article := &model.Article{
		Title:         req.Title,
		Content:       strings.TrimSpace(req.Content),
		Category:      req.Category,
		Timestamp:     req.Timestamp,
		Author:        identity.Name,
		AuthorPicture: identity.Picture,
	}

	id, err := s.articleRepo.Insert(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	article.ID = id

	s.broadcaster.Broadcast(realtime.Event{
		Type: realtime.EventNewsAdded,
		Data: article,
	})
	return article, nil
}

// Update merges title, content, and category into the caller's own article.
// Author and timestamp always come from the stored record, whatever the
// caller sent.
func (s *articleService) Update(
	ctx context.Context,
	identity *authmodel.Identity,
	id string,
	req model.UpdateArticleRequest,
) (*model.Article, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if !article.IsAuthoredBy(identity.Name) {
		return nil, model.ErrForbidden
	}

	update := model.ArticleUpdate{
		Title:    req.Title,
		Content:  strings.TrimSpace(req.Content),
		Category: req.Category,
	}
	if err := s.articleRepo.Update(ctx, objectID, update); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	article.Title = update.Title
	article.Content = update.Content
	article.Category = update.Category

	s.broadcaster.Broadcast(realtime.Event{
		Type: realtime.EventNewsUpdated,
		Data: article,
	})
	return article, nil
}

// Delete removes the caller's own article and broadcasts its identifier.
func (s *articleService) Delete(
	ctx context.Context,
	identity *authmodel.Identity,
	id string,
) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	article, err := s.articleRepo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if !article.IsAuthoredBy(identity.Name) {
		return model.ErrForbidden
	}

	if err := s.articleRepo.Delete(ctx, objectID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.broadcaster.Broadcast(realtime.Event{
		Type: realtime.EventNewsDeleted,
		Data: model.DeletedArticle{ID: id},
	})
	return nil
}
