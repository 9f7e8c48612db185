package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hall-booking/internal/pkg/errs"
)

const defaultBaseURL = "https://api.telegram.org"

var (
	ErrSendFailed      = errs.New("telegram send failed")
	ErrInvalidResponse = errs.New("telegram returned an invalid response")
)

// Sender delivers one text message to the configured chat.
type Sender interface {
	SendMessage(ctx context.Context, text string) error
}

// Client talks to the Telegram Bot API. sendMessage is the only method
// the dispatcher needs, so that is all the client exposes.
type Client struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
}

func NewClient(botToken, chatID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  defaultBaseURL,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		return errs.Mark(err, ErrSendFailed)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(err, ErrSendFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrSendFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.Mark(
			errs.New(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(respBody))),
			ErrSendFailed,
		)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return errs.Mark(err, ErrInvalidResponse)
	}
	if !apiResp.OK {
		return errs.Mark(errs.New(apiResp.Description), ErrSendFailed)
	}
	return nil
}
