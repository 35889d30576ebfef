package service

import (
	"context"
	"errors"
	"testing"

	"github.com/moodlog/moodlog/internal/repository"
	"github.com/moodlog/moodlog/internal/testutil"
)

func newTestService(t *testing.T, ctx context.Context) *JournalService {
	t.Helper()

	dbURL := testutil.RequireEnv(t, "DATABASE_URL")
	repo, err := repository.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("create repository: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetUsersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset users schema: %v", err)
	}
	if err := testutil.ResetEmotionsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset emotions schema: %v", err)
	}

	return NewJournalService(repo)
}

func TestJournalService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	email := testutil.UniqueEmail("register")
	user, err := svc.RegisterUser(ctx, "Ada", email)
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected a generated user ID")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	loaded, err := svc.GetUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if loaded.ID != user.ID {
		t.Fatalf("ID mismatch: %q vs %q", user.ID, loaded.ID)
	}
}

func TestJournalService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	email := testutil.UniqueEmail("dup")
	if _, err := svc.RegisterUser(ctx, "Ada", email); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	if _, err := svc.RegisterUser(ctx, "Grace", email); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestJournalService_CreateEmotion_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	_, err := svc.CreateEmotion(ctx, CreateEmotionInput{
		Email:           "nobody@moodlog.test",
		Text:            "lost",
		DetectedEmotion: "sadness",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJournalService_CreateEmotion_CopiesStoredEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	email := testutil.UniqueEmail("denorm")
	user, err := svc.RegisterUser(ctx, "Ada", email)
	if err != nil {
		t.Fatalf("register user: %v", err)
	}

	emotion, err := svc.CreateEmotion(ctx, CreateEmotionInput{
		Email:           email,
		Text:            "a good day",
		DetectedEmotion: "joy",
	})
	if err != nil {
		t.Fatalf("create emotion: %v", err)
	}
	if emotion.UserID != user.ID {
		t.Fatalf("expected entry owned by %q, got %q", user.ID, emotion.UserID)
	}
	if emotion.Email != user.Email {
		t.Fatalf("expected entry email %q, got %q", user.Email, emotion.Email)
	}

	emotions, err := svc.ListEmotions(ctx, email)
	if err != nil {
		t.Fatalf("list emotions: %v", err)
	}
	if len(emotions) != 1 {
		t.Fatalf("expected 1 emotion, got %d", len(emotions))
	}
	if emotions[0].ID != emotion.ID {
		t.Fatalf("expected entry %q, got %q", emotion.ID, emotions[0].ID)
	}
}

func TestJournalService_ListEmotions_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	if _, err := svc.ListEmotions(ctx, "nobody@moodlog.test"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJournalService_DeleteFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	email := testutil.UniqueEmail("delete")
	if _, err := svc.RegisterUser(ctx, "Ada", email); err != nil {
		t.Fatalf("register user: %v", err)
	}

	var firstID string
	for i, text := range []string{"one", "two", "three"} {
		emotion, err := svc.CreateEmotion(ctx, CreateEmotionInput{
			Email:           email,
			Text:            text,
			DetectedEmotion: "neutral",
		})
		if err != nil {
			t.Fatalf("create emotion %d: %v", i, err)
		}
		if i == 0 {
			firstID = emotion.ID
		}
	}

	deleted, err := svc.DeleteEmotion(ctx, firstID)
	if err != nil {
		t.Fatalf("delete emotion: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 row deleted, got %d", deleted)
	}

	deleted, err = svc.DeleteAllEmotions(ctx, email)
	if err != nil {
		t.Fatalf("delete all emotions: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", deleted)
	}

	emotions, err := svc.ListEmotions(ctx, email)
	if err != nil {
		t.Fatalf("list emotions: %v", err)
	}
	if len(emotions) != 0 {
		t.Fatalf("expected empty journal, got %d entries", len(emotions))
	}
}

func TestJournalService_DeleteAllEmotions_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, ctx)

	if _, err := svc.DeleteAllEmotions(ctx, "nobody@moodlog.test"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
