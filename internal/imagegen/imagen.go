package imagegen

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ImagenDefaultModel is used when no model is configured
const ImagenDefaultModel = "imagen-3.0-generate-002"

// ImagenModels abstracts genai's Models service for testing
type ImagenModels interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// ImagenGenerator generates images with Google's Imagen models via the Gemini API
type ImagenGenerator struct {
	models ImagenModels
	model  string
}

// NewImagenGenerator creates a generator backed by the Gemini API
func NewImagenGenerator(ctx context.Context, apiKey, model string) (*ImagenGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return NewImagenGeneratorWithModels(client.Models, model), nil
}

// NewImagenGeneratorWithModels creates a generator around an existing service
func NewImagenGeneratorWithModels(models ImagenModels, model string) *ImagenGenerator {
	if model == "" {
		model = ImagenDefaultModel
	}
	return &ImagenGenerator{models: models, model: model}
}

// Name returns the provider name
func (g *ImagenGenerator) Name() string {
	return "imagen"
}

// Generate requests a single 16:9 image and returns its bytes
func (g *ImagenGenerator) Generate(ctx context.Context, prompt string) (*Image, error) {
	resp, err := g.models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, fmt.Errorf("imagen generate: %w", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, errors.New("imagen generate: empty response")
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return nil, fmt.Errorf("imagen generate: filtered: %s", generated.RAIFilteredReason)
		}
		return nil, errors.New("imagen generate: response has no image")
	}

	return &Image{
		Data:     generated.Image.ImageBytes,
		MIMEType: generated.Image.MIMEType,
	}, nil
}
