package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moodlog/moodlog/internal/model"
	"github.com/moodlog/moodlog/internal/repository"
	"github.com/moodlog/moodlog/internal/service"
)

type output struct {
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Entries []string `json:"entries,omitempty"`
}

var sampleEntries = []struct {
	text    string
	emotion string
}{
	{"Shipped the release without incident.", "joy"},
	{"Long day of back-to-back meetings.", "fatigue"},
	{"Quiet morning, caught up on reading.", "calm"},
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "demo@moodlog.local", "Email for the seeded user")
		name        = flag.String("name", "Demo User", "Display name for the seeded user")
		withEntries = flag.Bool("entries", false, "Also seed sample journal entries")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	svc := service.NewJournalService(repo)

	user, err := ensureUser(ctx, svc, *name, *email)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	out := output{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}

	if *withEntries {
		for _, entry := range sampleEntries {
			created, err := svc.CreateEmotion(ctx, service.CreateEmotionInput{
				Email:           user.Email,
				Text:            entry.text,
				DetectedEmotion: entry.emotion,
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, "create entry:", err)
				os.Exit(1)
			}
			out.Entries = append(out.Entries, created.ID)
		}
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.UserID)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

// ensureUser registers the user, reusing an existing registration when the
// email is already taken by one with the same name.
func ensureUser(ctx context.Context, svc *service.JournalService, name, email string) (*model.User, error) {
	user, err := svc.RegisterUser(ctx, name, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, service.ErrEmailExists) {
		return nil, fmt.Errorf("register user: %w", err)
	}

	existing, err := svc.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load existing user: %w", err)
	}
	if existing.Name != name {
		return nil, fmt.Errorf("email %s already registered under a different name: %s", email, existing.Name)
	}
	return existing, nil
}
