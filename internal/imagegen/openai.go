package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI defaults
const (
	OpenAIDefaultModel = openai.CreateImageModelDallE3
	OpenAIDefaultSize  = openai.CreateImageSize1792x1024
)

// OpenAIImageClient abstracts the go-openai client for testing
type OpenAIImageClient interface {
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIGenerator generates images through the OpenAI images endpoint
type OpenAIGenerator struct {
	client OpenAIImageClient
	model  string
	size   string
}

// NewOpenAIGenerator creates a generator backed by the OpenAI API
func NewOpenAIGenerator(apiKey, model, baseURL string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return NewOpenAIGeneratorWithClient(openai.NewClientWithConfig(config), model), nil
}

// NewOpenAIGeneratorWithClient creates a generator around an existing client
func NewOpenAIGeneratorWithClient(client OpenAIImageClient, model string) *OpenAIGenerator {
	if model == "" {
		model = OpenAIDefaultModel
	}
	return &OpenAIGenerator{
		client: client,
		model:  model,
		size:   OpenAIDefaultSize,
	}
}

// Name returns the provider name
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// Generate requests a single image and returns its URL
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (*Image, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		N:              1,
		Size:           g.size,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	}
	if g.model == openai.CreateImageModelDallE3 {
		req.Quality = openai.CreateImageQualityHD
		req.Style = openai.CreateImageStyleVivid
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("openai create image: empty response")
	}

	data := resp.Data[0]
	if data.URL == "" && data.B64JSON == "" {
		return nil, errors.New("openai create image: response has no image")
	}
	img := &Image{URL: data.URL, MIMEType: "image/png"}
	if data.B64JSON != "" {
		raw, err := base64.StdEncoding.DecodeString(data.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("openai create image: %w", err)
		}
		img.Data = raw
	}
	return img, nil
}
