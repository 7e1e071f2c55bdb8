package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"word-game-service/internal/game"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Client, Ollama tarzı bir sohbet ucuna bağlanan otomatik hakem. Modelden
// sadece {"correct": bool, "explanation": "..."} formatında JSON istenir.
type Client struct {
	url     string
	model   string
	timeout time.Duration
	http    *fasthttp.Client
}

func NewClient(url, model string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		model:   model,
		timeout: timeout,
		http:    &fasthttp.Client{},
	}
}

const systemPrompt = `You are a correctness checker for a word game. ` +
	`Always respond in valid JSON ONLY, with the format: ` +
	`{"correct": boolean, "explanation": "short text"}. ` +
	`No additional text outside this JSON object.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Format   string        `json:"format"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type verdictPayload struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// Check, cevabı modele sorar ve kararı döndürür.
func (c *Client) Check(ctx context.Context, prompt, letter, text string) (game.Verdict, error) {
	userPrompt := fmt.Sprintf("Category: %s. Required starting letter: %s. User's answer: %s.\nIs this a correct answer for the category? Provide a JSON response only.", prompt, letter, text)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Format: "json",
		Stream: false,
	})
	if err != nil {
		return game.Verdict{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return game.Verdict{}, fmt.Errorf("judge request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return game.Verdict{}, fmt.Errorf("judge returned status %d", resp.StatusCode())
	}

	var chat chatResponse
	if err := json.Unmarshal(resp.Body(), &chat); err != nil {
		return game.Verdict{}, fmt.Errorf("judge response could not be parsed: %w", err)
	}
	if chat.Message.Content == "" {
		return game.Verdict{}, fmt.Errorf("judge returned no content")
	}

	var payload verdictPayload
	if err := json.Unmarshal([]byte(chat.Message.Content), &payload); err != nil {
		return game.Verdict{}, fmt.Errorf("judge verdict was not valid JSON: %w", err)
	}

	zap.L().Debug("judge verdict",
		zap.String("prompt", prompt),
		zap.String("text", text),
		zap.Bool("correct", payload.Correct))

	return game.Verdict{Correct: payload.Correct, Explanation: payload.Explanation}, nil
}
