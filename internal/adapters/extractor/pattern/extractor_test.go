package pattern

import (
	"context"
	"testing"

	"github.com/davinder1436/fingenie-chat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractorFindsCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want domain.Credentials
	}{
		{
			name: "natural phrasing",
			text: "Hey, I want to log in. My email is test@example.com, and my password is password123.",
			want: domain.Credentials{Email: "test@example.com", Password: "password123"},
		},
		{
			name: "colon separated",
			text: "email: a.user@mail.co password: hunter2",
			want: domain.Credentials{Email: "a.user@mail.co", Password: "hunter2"},
		},
		{
			name: "quoted password loses quotes",
			text: `login test@example.com password "s3cret!"`,
			want: domain.Credentials{Email: "test@example.com", Password: `s3cret!`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creds, found, err := Extractor{}.Extract(context.Background(), tt.text)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, tt.want, creds)
		})
	}
}

func TestExtractorNoCredentialsIsNotAnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "plain command", text: "/add 500 Food Lunch"},
		{name: "email only", text: "my email is test@example.com"},
		{name: "password only", text: "my password is hunter2"},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creds, found, err := Extractor{}.Extract(context.Background(), tt.text)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Equal(t, domain.Credentials{}, creds)
		})
	}
}
