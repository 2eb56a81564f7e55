package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodel "news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/news/model"
	"news-backend/internal/realtime"
)

// =====================================================
// MOCKS
// =====================================================

// mockArticleRepo keeps articles in a slice, preserving insertion order the
// way a collection scan would.
type mockArticleRepo struct {
	articles []model.Article
	failWith error
}

func newMockRepo() *mockArticleRepo {
	return &mockArticleRepo{}
}

func (m *mockArticleRepo) FindAll(_ context.Context) ([]model.Article, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]model.Article, len(m.articles))
	copy(result, m.articles)
	return result, nil
}

func (m *mockArticleRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Article, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, model.ErrArticleNotFound
}

func (m *mockArticleRepo) FindByTitle(_ context.Context, title string) (*model.Article, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.articles {
		if a.Title == title {
			found := a
			return &found, nil
		}
	}
	return nil, model.ErrArticleNotFound
}

func (m *mockArticleRepo) Insert(_ context.Context, article *model.Article) (primitive.ObjectID, error) {
	if m.failWith != nil {
		return primitive.NilObjectID, m.failWith
	}
	stored := *article
	stored.ID = primitive.NewObjectID()
	m.articles = append(m.articles, stored)
	return stored.ID, nil
}

func (m *mockArticleRepo) Update(_ context.Context, id primitive.ObjectID, update model.ArticleUpdate) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles[i].Title = update.Title
			m.articles[i].Content = update.Content
			m.articles[i].Category = update.Category
			return nil
		}
	}
	return model.ErrArticleNotFound
}

func (m *mockArticleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.articles {
		if m.articles[i].ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return model.ErrArticleNotFound
}

// recordingBroadcaster captures every event the service publishes.
type recordingBroadcaster struct {
	events []realtime.Event
}

func (b *recordingBroadcaster) Broadcast(event realtime.Event) {
	b.events = append(b.events, event)
}

func newTestService() (ArticleService, *mockArticleRepo, *recordingBroadcaster) {
	repo := newMockRepo()
	broadcaster := &recordingBroadcaster{}
	return NewArticleService(repo, broadcaster), repo, broadcaster
}

var (
	alice = &authmodel.Identity{Name: "alice", Email: "alice@example.com", Picture: "https://example.com/alice.png"}
	bob   = &authmodel.Identity{Name: "bob", Email: "bob@example.com"}
)

func createRequest() model.CreateArticleRequest {
	return model.CreateArticleRequest{
		Title:     "A",
		Content:   "B",
		Category:  "Science",
		Timestamp: "2026-08-30T10:00:00.000Z",
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateStampsIdentityAndBroadcasts(t *testing.T) {
	svc, _, broadcaster := newTestService()

	article, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	assert.False(t, article.ID.IsZero(), "store must assign an identifier")
	assert.Equal(t, "alice", article.Author)
	assert.Equal(t, "https://example.com/alice.png", article.AuthorPicture)
	assert.Equal(t, "2026-08-30T10:00:00.000Z", article.Timestamp)

	// Round-trip: Get returns the created record.
	got, err := svc.Get(context.Background(), article.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, article, got)

	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, realtime.EventNewsAdded, broadcaster.events[0].Type)
	assert.Equal(t, article, broadcaster.events[0].Data)
}

func TestCreateTrimsContent(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest()
	req.Content = "  spaced out  \n"
	article, err := svc.Create(context.Background(), alice, req)
	require.NoError(t, err)
	assert.Equal(t, "spaced out", article.Content)
}

func TestCreateRejectsDuplicateTitle(t *testing.T) {
	svc, _, broadcaster := newTestService()

	_, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	// Same title, every other field different, different author.
	req := createRequest()
	req.Content = "entirely different"
	req.Category = "Culture"
	_, err = svc.Create(context.Background(), bob, req)
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	// The failed create must not broadcast.
	assert.Len(t, broadcaster.events, 1)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdatePreservesAuthorAndTimestamp(t *testing.T) {
	svc, _, broadcaster := newTestService()

	created, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), alice, created.ID.Hex(), model.UpdateArticleRequest{
		Title:    "A2",
		Content:  "B2",
		Category: "Technology",
	})
	require.NoError(t, err)

	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B2", updated.Content)
	assert.Equal(t, "Technology", updated.Category)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alice", updated.Author, "author must survive edits")
	assert.Equal(t, created.Timestamp, updated.Timestamp, "timestamp must survive edits")

	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, realtime.EventNewsUpdated, broadcaster.events[1].Type)
	assert.Equal(t, updated, broadcaster.events[1].Data)
}

func TestUpdateByNonAuthorIsForbidden(t *testing.T) {
	svc, _, broadcaster := newTestService()

	created, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), bob, created.ID.Hex(), model.UpdateArticleRequest{
		Title:    "hijacked",
		Content:  "x",
		Category: "Politics",
	})
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.Len(t, broadcaster.events, 1)
}

func TestUpdateUnknownAndMalformedIDs(t *testing.T) {
	svc, _, _ := newTestService()

	req := model.UpdateArticleRequest{Title: "t", Content: "c", Category: "Science"}

	_, err := svc.Update(context.Background(), alice, primitive.NewObjectID().Hex(), req)
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	_, err = svc.Update(context.Background(), alice, "not-a-hex-id", req)
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

// =====================================================
// DELETE
// =====================================================

func TestDeleteBroadcastsIdentifierOnly(t *testing.T) {
	svc, _, broadcaster := newTestService()

	created, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), alice, created.ID.Hex()))

	_, err = svc.Get(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, realtime.EventNewsDeleted, broadcaster.events[1].Type)
	assert.Equal(t, model.DeletedArticle{ID: created.ID.Hex()}, broadcaster.events[1].Data)
}

func TestDeleteByNonAuthorIsForbidden(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), alice, createRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), bob, created.ID.Hex())
	assert.ErrorIs(t, err, model.ErrForbidden)

	// Still there.
	_, err = svc.Get(context.Background(), created.ID.Hex())
	assert.NoError(t, err)
}

// =====================================================
// GET / LIST
// =====================================================

func TestGetErrors(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), "zzz")
	assert.ErrorIs(t, err, model.ErrInvalidID)

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

func TestListReturnsStorageOrder(t *testing.T) {
	svc, _, _ := newTestService()

	for _, title := range []string{"first", "second", "third"} {
		req := createRequest()
		req.Title = title
		_, err := svc.Create(context.Background(), alice, req)
		require.NoError(t, err)
	}

	articles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "first", articles[0].Title)
	assert.Equal(t, "third", articles[2].Title)
}

func TestCreateStoreFailureDoesNotBroadcast(t *testing.T) {
	svc, repo, broadcaster := newTestService()
	repo.failWith = errors.New("connection reset")

	_, err := svc.Create(context.Background(), alice, createRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrDuplicateTitle)
	assert.Empty(t, broadcaster.events)
}

// =====================================================
// END-TO-END SCENARIO
// =====================================================

// Create as alice, duplicate rejected, bob's edit forbidden, alice deletes,
// subsequent get misses. An event accompanies each successful mutation.
func TestArticleLifecycleScenario(t *testing.T) {
	svc, _, broadcaster := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Author)

	_, err = svc.Create(ctx, alice, createRequest())
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	_, err = svc.Update(ctx, bob, created.ID.Hex(), model.UpdateArticleRequest{
		Title: "A", Content: "C", Category: "Science",
	})
	assert.ErrorIs(t, err, model.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, alice, created.ID.Hex()))

	_, err = svc.Get(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	// Exactly one event per successful mutation: Added then Deleted.
	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, realtime.EventNewsAdded, broadcaster.events[0].Type)
	assert.Equal(t, realtime.EventNewsDeleted, broadcaster.events[1].Type)
}

// A client that missed an Added event while disconnected recovers the
// article through a full list re-fetch.
func TestMissedEventRecoveredByRefetch(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, createRequest())
	require.NoError(t, err)

	articles, err := svc.List(ctx)
	require.NoError(t, err)

	found := false
	for _, a := range articles {
		if a.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found, "re-fetch must include the article added while disconnected")
}
