package preference

import (
	"strings"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// SaveAIPreferenceRequest represents the request to remember an AI
// provider choice
type SaveAIPreferenceRequest struct {
	Provider string `json:"provider" validate:"required,oneof=gemini openai"`
	APIKey   string `json:"api_key" validate:"required,min=8"`
	Model    string `json:"model,omitempty"`
}

// ToPreference converts the request into the domain value object
func (r SaveAIPreferenceRequest) ToPreference() entities.AIPreference {
	return entities.AIPreference{
		Provider: entities.AIProvider(r.Provider),
		APIKey:   strings.TrimSpace(r.APIKey),
		Model:    strings.TrimSpace(r.Model),
	}
}

// AIPreferenceResponse is the API representation of a stored preference.
// The API key is masked; clients only need to know one is present.
type AIPreferenceResponse struct {
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
	KeyMasked string `json:"api_key_masked"`
}

// NewAIPreferenceResponse masks the key down to its last four characters
func NewAIPreferenceResponse(pref entities.AIPreference) AIPreferenceResponse {
	masked := ""
	if n := len(pref.APIKey); n > 4 {
		masked = strings.Repeat("*", 4) + pref.APIKey[n-4:]
	} else if n > 0 {
		masked = strings.Repeat("*", n)
	}

	return AIPreferenceResponse{
		Provider:  string(pref.Provider),
		Model:     pref.Model,
		KeyMasked: masked,
	}
}
