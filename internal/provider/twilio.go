package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/gaia_guard/internal/alert"
	"github.com/shenikar/gaia_guard/internal/config"
)

const whatsappPrefix = "whatsapp:"

// TwilioClient отправляет сообщения WhatsApp через Twilio Messages API
type TwilioClient struct {
	apiURL     string
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

func NewTwilioClient(cfg config.ProvidersConfig) *TwilioClient {
	return &TwilioClient{
		apiURL:     strings.TrimRight(cfg.TwilioAPIURL, "/"),
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFrom,
		client:     newHTTPClient(cfg.Timeout),
	}
}

type twilioMessage struct {
	SID string `json:"sid"`
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send отправляет текст на номер и возвращает SID сообщения
func (t *TwilioClient) Send(ctx context.Context, phone, body string) (string, error) {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return "", alert.ErrSenderNotConfigured
	}

	form := url.Values{}
	form.Set("From", withWhatsappPrefix(t.from))
	form.Set("To", withWhatsappPrefix(phone))
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.apiURL, url.PathEscape(t.accountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create twilio request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to twilio: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read twilio response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		deliveryErr := &alert.DeliveryError{StatusCode: resp.StatusCode}
		var te twilioError
		if json.Unmarshal(raw, &te) == nil {
			deliveryErr.Code = te.Code
			deliveryErr.Message = te.Message
		}
		return "", deliveryErr
	}

	var msg twilioMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", fmt.Errorf("failed to parse twilio response: %w", err)
	}
	if msg.SID == "" {
		return "", fmt.Errorf("twilio response has no message sid")
	}
	return msg.SID, nil
}

func withWhatsappPrefix(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, whatsappPrefix) {
		return number
	}
	return whatsappPrefix + number
}
