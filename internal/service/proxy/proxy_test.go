package proxy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/lingua-api/internal/mocks"
	"github.com/phrazzld/lingua-api/internal/service/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateFallback(t *testing.T) {
	t.Parallel()

	svc := proxy.NewService(nil, nil)

	testCases := []struct {
		name     string
		text     string
		src      string
		tgt      string
		expected string
	}{
		{"explicit target", "Hola", "es", "fr", "[translated (fr)] Hola"},
		{"default target", "Hola", "", "", "[translated (en)] Hola"},
		{"empty text", "", "", "de", "[translated (de)] "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := svc.Translate(context.Background(), tc.text, tc.src, tc.tgt)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestChatFallback(t *testing.T) {
	t.Parallel()

	out, err := proxy.NewService(nil, nil).Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Bot stub: I heard 'hello'", out)
}

func TestTranslateForwardsPrompt(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{Response: "  Good morning \n"}
	svc := proxy.NewService(gen, nil)

	out, err := svc.Translate(context.Background(), "Buenos días", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Good morning", out)
	require.Len(t, gen.Prompts, 1)
	assert.Equal(t, "Translate the following text from auto to en:\n\nBuenos días", gen.Prompts[0])
}

func TestChatForwardsMessage(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{Response: "¡Hola!"}
	out, err := proxy.NewService(gen, nil).Chat(context.Background(), "Say hi in Spanish")
	require.NoError(t, err)

	assert.Equal(t, "¡Hola!", out)
	assert.Equal(t, []string{"Say hi in Spanish"}, gen.Prompts)
}

func TestUpstreamFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("quota exceeded")
	svc := proxy.NewService(&mocks.MockGenerator{Err: cause}, nil)

	_, err := svc.Translate(context.Background(), "x", "es", "en")
	assert.ErrorIs(t, err, proxy.ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = svc.Chat(context.Background(), "x")
	assert.ErrorIs(t, err, proxy.ErrUpstream)
}
