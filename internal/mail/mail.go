package mail

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/PilYeooong/nuber-eats-backend/internal/config"
	"github.com/PilYeooong/nuber-eats-backend/internal/logger"
)

const (
	defaultBaseURL       = "https://api.mailgun.net/v3"
	verificationSubject  = "Verify Your Email"
	verificationTemplate = "verify-email"
)

type Mail struct {
	cfg     *config.Mailgun
	client  *http.Client
	baseURL string
}

// Variable is a template substitution pair submitted alongside the message.
type Variable struct {
	Key   string
	Value string
}

func New(cfg *config.Mailgun) *Mail {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Mail{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
	}
}

// NewWithBaseURL is used by tests to point the client at a fake provider.
func NewWithBaseURL(cfg *config.Mailgun, baseURL string) *Mail {
	m := New(cfg)
	m.baseURL = baseURL
	return m
}

// SendVerificationEmail submits the verification template for recipient.
// One attempt, no retry. Any transport or provider error is logged and
// collapsed into the boolean result.
func (m *Mail) SendVerificationEmail(recipientEmail, code string) bool {
	err := m.sendEmail(recipientEmail, verificationSubject, verificationTemplate, []Variable{
		{Key: "code", Value: code},
		{Key: "username", Value: recipientEmail},
	})
	if err != nil {
		logger.Log.Error("failed to send verification email", "recipient", recipientEmail, "error", err)
		return false
	}
	return true
}

func (m *Mail) sendEmail(to, subject, template string, vars []Variable) error {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := map[string]string{
		"from":     fmt.Sprintf("Nuber Eats <%s>", m.cfg.FromEmail),
		"to":       to,
		"subject":  subject,
		"template": template,
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	for _, v := range vars {
		if err := form.WriteField("v:"+v.Key, v.Value); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", m.baseURL, m.cfg.Domain)
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth("api", m.cfg.ApiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		providerBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, providerBody)
	}
	return nil
}
