package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiExtractor implementa el puerto.
var _ ports.DocumentExtractor = (*GeminiExtractor)(nil)

// GeminiExtractor analiza documentos con Gemini enviando el archivo como
// inline data junto al prompt fiscal. Un solo intento, sin retry: ante
// cualquier fallo (clave ausente, red, HTTP, respuesta vacía o JSON inválido)
// degrada en silencio al resultado sintético y lo reporta solo en el log.
//
// El archivo viaja inline en la petición, así que no existe el estado
// PROCESSING remoto que el diseño original sondeaba sin límite; la espera
// total la acota el timeout del contexto que impone el caller.
type GeminiExtractor struct {
	apiKey   string
	model    string
	fallback *SimulationExtractor
}

// NewGeminiExtractor construye el adaptador. model suele ser "gemini-2.0-flash".
func NewGeminiExtractor(apiKey, model string, fallback *SimulationExtractor) *GeminiExtractor {
	return &GeminiExtractor{apiKey: apiKey, model: model, fallback: fallback}
}

// ExtractDocument envía el documento a Gemini y parsea el JSON de respuesta.
// Nunca expone salida parcial o corrupta: si el parseo falla, sustituye el
// resultado sintético con error nil.
func (g *GeminiExtractor) ExtractDocument(ctx context.Context, filePath, mimeType string) (*dto.ExtractionResult, error) {
	result, err := g.extract(ctx, filePath, mimeType)
	if err != nil {
		log.Warn().Err(err).
			Str("file", filePath).
			Msg("fallo Gemini: bascule al motor de simulación")
		return g.fallback.ExtractDocument(ctx, filePath, mimeType)
	}
	return result, nil
}

func (g *GeminiExtractor) extract(ctx context.Context, filePath, mimeType string) (*dto.ExtractionResult, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY no configurado")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("leer documento: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente genai: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     data,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("respuesta vacía del modelo")
	}

	clean := stripCodeFences(rawText)

	var result dto.ExtractionResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("respuesta del modelo no es JSON válido: %w", err)
	}
	return &result, nil
}

// Engine identifica el motor.
func (g *GeminiExtractor) Engine() string { return "GEMINI" }

// stripCodeFences limpia los bloques markdown (```json … ```) con los que el
// modelo puede envolver la respuesta aunque el prompt lo prohíba.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Quitar la primera línea (``` o ```json)
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Quitar el cierre ``` si existe
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
