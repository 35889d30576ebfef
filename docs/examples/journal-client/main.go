// Moodlog Journal Client Example
//
// This is a minimal example of how to drive the Moodlog API from Go:
// register a user, request a token, write a journal entry and read it back.
//
// Usage:
//   export MOODLOG_BASE_URL="http://localhost:8080"
//   go run main.go you@example.com

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

type user struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type emotion struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Text            string `json:"text"`
	DetectedEmotion string `json:"detectedEmotion"`
	CreatedAt       string `json:"createdAt"`
}

type apiError struct {
	Error string `json:"error"`
}

func main() {
	baseURL := os.Getenv("MOODLOG_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	email := "example@moodlog.local"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}

	client := &http.Client{Timeout: 10 * time.Second}

	// Register (a 400 here usually means the email is already taken)
	var registered user
	status, err := postJSON(client, baseURL+"/api/users/register",
		map[string]string{"name": "Example User", "email": email}, &registered)
	if err != nil {
		log.Fatal(err)
	}
	switch status {
	case http.StatusCreated:
		log.Printf("registered user %s", registered.ID)
	case http.StatusBadRequest:
		log.Printf("user already registered, continuing")
	default:
		log.Fatalf("unexpected status %d from register", status)
	}

	// Request a token
	var token struct {
		Token string `json:"token"`
	}
	status, err = postJSON(client, baseURL+"/jwt", map[string]string{"email": email}, &token)
	if err != nil {
		log.Fatal(err)
	}
	if status != http.StatusOK {
		log.Fatalf("unexpected status %d from token issue", status)
	}
	log.Printf("token: %s...", token.Token[:min(20, len(token.Token))])

	// Write a journal entry
	var created emotion
	status, err = postJSON(client, baseURL+"/api/emotions", map[string]string{
		"email":           email,
		"text":            "Trying out the journal API.",
		"detectedEmotion": "curiosity",
	}, &created)
	if err != nil {
		log.Fatal(err)
	}
	if status != http.StatusCreated {
		log.Fatalf("unexpected status %d from emotion create", status)
	}
	log.Printf("created entry %s", created.ID)

	// Read the journal back
	resp, err := client.Get(baseURL + "/api/emotions?email=" + email)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e apiError
		_ = json.NewDecoder(resp.Body).Decode(&e)
		log.Fatalf("unexpected status %d from list: %s", resp.StatusCode, e.Error)
	}

	var entries []emotion
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("journal for %s (%d entries):\n", email, len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  [%s]  %s\n", entry.CreatedAt, entry.DetectedEmotion, entry.Text)
	}
}

func postJSON(client *http.Client, url string, payload any, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, nil
		}
	}
	return resp.StatusCode, nil
}
