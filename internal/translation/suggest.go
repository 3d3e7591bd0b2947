package translation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xelth-com/manualsgo/internal/ai"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
	"github.com/xelth-com/manualsgo/internal/utils"
)

// Suggester drafts translation payloads for a module via Gemini.
// The reply is opaque content: it is returned to the caller as a draft
// and never stored without human review.
type Suggester struct {
	client *ai.GeminiClient
}

// NewSuggester wraps a Gemini client
func NewSuggester(client *ai.GeminiClient) *Suggester {
	return &Suggester{client: client}
}

const suggestPromptTemplate = `You are translating content of a technical manual from %s to %s.
The content is a JSON object. Translate every human-readable string value.
Keep all keys, the structure and any non-text values (urls, file names, ids, numbers, booleans) exactly as they are.
Reply with the translated JSON object only, no explanations.

%s`

// SuggestModule asks Gemini for a draft translation of a module's content.
// The returned payload mirrors the source shape so the completeness
// evaluator can check it like any human-authored translation.
func (s *Suggester) SuggestModule(ctx context.Context, module models.ContentModule, sourceLang, targetLang string) (models.JSONB, error) {
	src := modules.Normalize(module.Content)
	if len(src) == 0 {
		return models.JSONB{}, nil
	}

	srcJSON, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize module content: %w", err)
	}

	prompt := fmt.Sprintf(suggestPromptTemplate, sourceLang, targetLang, string(srcJSON))

	reply, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	out := make(models.JSONB)
	if err := json.Unmarshal([]byte(utils.SanitizeJSON(reply)), &out); err != nil {
		return nil, fmt.Errorf("gemini returned invalid JSON: %w", err)
	}
	return out, nil
}
