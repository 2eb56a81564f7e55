package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"news-backend/internal/domains/news/model"
)

// =====================================================
// MONGODB IMPLEMENTATION
// =====================================================

type mongoArticleRepository struct {
	collection *mongo.Collection
}

func NewMongoArticleRepository(collection *mongo.Collection) ArticleRepository {
	return &mongoArticleRepository{
		collection: collection,
	}
}

func (r *mongoArticleRepository) FindAll(ctx context.Context) ([]model.Article, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer cursor.Close(ctx)

	// Decode into an empty (not nil) slice so the handler serializes [].
	articles := []model.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}

func (r *mongoArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Article, error) {
	var article model.Article
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) FindByTitle(ctx context.Context, title string) (*model.Article, error) {
	var article model.Article
	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article by title: %w", err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) Insert(ctx context.Context, article *model.Article) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, article)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert article: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return id, nil
}

func (r *mongoArticleRepository) Update(ctx context.Context, id primitive.ObjectID, update model.ArticleUpdate) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *mongoArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}
