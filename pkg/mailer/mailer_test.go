package mailer

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"acknowledgement.md": &fstest.MapFile{
			Data: []byte("---\nSubject: Thanks for reaching out\n---\nHi **{{.Name}}**, we got your message.\n"),
		},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testFS()), Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Notification",
	})

	sender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "alex@brand.com" &&
			email.Subject == "Thanks for reaching out" &&
			email.ReplyTo == "studio@brightreel.example" &&
			len(email.HTML) > 0 &&
			len(email.Text) > 0
	})).Return(nil)

	err := m.Send(context.Background(), SendParams{
		To:       "alex@brand.com",
		Template: "acknowledgement.md",
		Data:     map[string]string{"Name": "Alex"},
		ReplyTo:  "studio@brightreel.example",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testFS()), Config{})

	err := m.Send(context.Background(), SendParams{Template: "acknowledgement.md"})
	require.ErrorIs(t, err, ErrNoRecipient)
	sender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_TemplateMissing(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := New(sender, NewRenderer(testFS()), Config{DefaultLayout: "base.html"})

	err := m.Send(context.Background(), SendParams{
		To:       "alex@brand.com",
		Template: "missing.md",
	})
	require.ErrorIs(t, err, ErrTemplateNotFound)
	sender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_TransportFailure(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(assert.AnError)

	m := New(sender, NewRenderer(testFS()), Config{DefaultLayout: "base.html"})

	err := m.Send(context.Background(), SendParams{
		To:       "alex@brand.com",
		Template: "acknowledgement.md",
		Data:     map[string]string{"Name": "Alex"},
	})
	require.ErrorIs(t, err, ErrSendFailed)
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	t.Run("delivers prepared email", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(nil)

		m := New(sender, nil, Config{})
		err := m.SendRaw(context.Background(), &Email{
			To:      []string{"inbox@brightreel.example"},
			Subject: "New enquiry",
			Text:    "body",
		})
		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("rejects incomplete email", func(t *testing.T) {
		t.Parallel()

		sender := &MockSender{}
		m := New(sender, nil, Config{})

		assert.ErrorIs(t, m.SendRaw(context.Background(), &Email{}), ErrNoRecipient)
		assert.ErrorIs(t, m.SendRaw(context.Background(), &Email{
			To: []string{"a@b.co"},
		}), ErrNoSubject)
		assert.ErrorIs(t, m.SendRaw(context.Background(), &Email{
			To:      []string{"a@b.co"},
			Subject: "s",
		}), ErrNoContent)
		sender.AssertNotCalled(t, "Send")
	})
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello@brightreel.example", Recipient("", "hello@brightreel.example"))
	assert.Equal(t, "Brightreel <hello@brightreel.example>", Recipient("Brightreel", "hello@brightreel.example"))
}
