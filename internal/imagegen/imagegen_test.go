package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockOpenAIClient struct {
	resp    openai.ImageResponse
	err     error
	lastReq openai.ImageRequest
}

func (m *mockOpenAIClient) CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

type mockImagenModels struct {
	resp *genai.GenerateImagesResponse
	err  error
}

func (m *mockImagenModels) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return m.resp, m.err
}

func TestNewOpenAIGenerator_EmptyAPIKey(t *testing.T) {
	_, err := NewOpenAIGenerator("", "", "")
	require.Error(t, err)
}

func TestOpenAIGenerator_ReturnsURL(t *testing.T) {
	client := &mockOpenAIClient{resp: openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{{URL: "https://cdn.example.com/a.png"}},
	}}
	g := NewOpenAIGeneratorWithClient(client, "")

	img, err := g.Generate(context.Background(), "a prompt")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", img.URL)
	assert.Empty(t, img.Data)

	assert.Equal(t, "a prompt", client.lastReq.Prompt)
	assert.Equal(t, OpenAIDefaultModel, client.lastReq.Model)
	assert.Equal(t, 1, client.lastReq.N)
	assert.Equal(t, openai.CreateImageResponseFormatURL, client.lastReq.ResponseFormat)
}

func TestOpenAIGenerator_DecodesInlineData(t *testing.T) {
	client := &mockOpenAIClient{resp: openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{{B64JSON: base64.StdEncoding.EncodeToString([]byte("png"))}},
	}}
	img, err := NewOpenAIGeneratorWithClient(client, "").Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), img.Data)
}

func TestOpenAIGenerator_Errors(t *testing.T) {
	g := NewOpenAIGeneratorWithClient(&mockOpenAIClient{err: errors.New("quota")}, "")
	_, err := g.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "quota")

	g = NewOpenAIGeneratorWithClient(&mockOpenAIClient{}, "")
	_, err = g.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "empty response")
}

func TestImagenGenerator(t *testing.T) {
	models := &mockImagenModels{resp: &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: []byte("img"), MIMEType: "image/png"}}},
	}}
	g := NewImagenGeneratorWithModels(models, "")
	assert.Equal(t, "imagen", g.Name())

	img, err := g.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), img.Data)

	models.resp = &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "safety"}},
	}
	_, err = g.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "filtered: safety")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("bytes"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.Client(), server.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), data)

	_, err = Fetch(context.Background(), server.Client(), server.URL+"/missing")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestImageBytesPrefersInlineData(t *testing.T) {
	img := &Image{Data: []byte("inline"), URL: "http://127.0.0.1:1/never"}
	data, err := img.Bytes(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("inline"), data)

	_, err = (&Image{}).Bytes(context.Background(), nil)
	assert.Error(t, err)
}

type countingGenerator struct{ calls int }

func (c *countingGenerator) Name() string { return "counting" }

func (c *countingGenerator) Generate(ctx context.Context, prompt string) (*Image, error) {
	c.calls++
	return &Image{Data: []byte(prompt)}, nil
}

func TestWithRateLimit(t *testing.T) {
	inner := &countingGenerator{}
	assert.Same(t, Generator(inner), WithRateLimit(inner, 0))

	limited := WithRateLimit(inner, 600)
	assert.Equal(t, "counting", limited.Name())
	_, err := limited.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// burst token already spent, so the wait observes the cancelled context
	_, err = limited.Generate(ctx, "p")
	assert.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}
