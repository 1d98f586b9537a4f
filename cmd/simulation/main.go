package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"ai-study-tutor-be/internal/dto"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Simulation drives a running server through the client's flow: create a
// conversation, ask a few questions, read the thread back.

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	userColor = color.New(color.FgCyan)
	aiColor   = color.New(color.FgYellow)
)

var testCases = []string{
	"Solve 2x+3=7",
	"What is the derivative of x^2 sin(x)?",
	"Balance the equation H2 + O2 -> H2O",
}

func main() {
	_ = godotenv.Load()
	baseURL := os.Getenv("TUTOR_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000/api"
	}
	userId := os.Getenv("DEMO_USER_ID")
	if userId == "" {
		userId = "demo-user"
	}
	client := &http.Client{Timeout: 90 * time.Second}

	fmt.Println("=== AI Study Tutor Simulation Client ===")

	var health dto.HealthResponse
	if err := call(client, http.MethodGet, baseURL+"/health", nil, &health); err != nil {
		fail("health check", err)
	}
	okColor.Printf("Server up (storage=%s, provider=%s)\n", health.Storage, health.Provider)

	var conversation dto.ConversationResponse
	if err := call(client, http.MethodPost, baseURL+"/conversations", dto.CreateConversationRequest{
		UserId: userId,
		Title:  "Simulation " + time.Now().Format(time.Kitchen),
	}, &conversation); err != nil {
		fail("create conversation", err)
	}
	okColor.Printf("Conversation created: %s\n", conversation.Id)

	for _, text := range testCases {
		userColor.Printf("\nUSER: %s\n", text)

		start := time.Now()
		var res dto.SendMessageResponse
		err := call(client, http.MethodPost, baseURL+"/messages", dto.SendMessageRequest{
			ConversationId: conversation.Id,
			Content:        text,
		}, &res)
		if err != nil {
			failColor.Printf("Error: %v\n", err)
			continue
		}
		aiColor.Printf("AI (%v): %s\n", time.Since(start).Round(time.Millisecond), res.AiMessage.Content)
	}

	var thread []dto.MessageResponse
	if err := call(client, http.MethodGet, baseURL+"/conversations/"+conversation.Id+"/messages", nil, &thread); err != nil {
		fail("list messages", err)
	}
	if len(thread) != 2*len(testCases) {
		fail("thread length", fmt.Errorf("expected %d messages, got %d", 2*len(testCases), len(thread)))
	}
	okColor.Printf("\nThread holds %d messages in order\n", len(thread))
}

func call(client *http.Client, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API Error %d: %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fail(step string, err error) {
	failColor.Printf("%s failed: %v\n", step, err)
	os.Exit(1)
}
