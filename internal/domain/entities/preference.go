package entities

// AIProvider identifies an external text-generation provider
type AIProvider string

const (
	AIProviderGemini AIProvider = "gemini"
	AIProviderOpenAI AIProvider = "openai"
)

// AIPreference is the user's remembered choice of external text-generation
// provider. It is an explicit value object passed into the AI call path;
// persistence lives behind the cache.Store abstraction, never in package
// globals.
type AIPreference struct {
	Provider AIProvider `json:"provider"`
	APIKey   string     `json:"api_key"`
	Model    string     `json:"model,omitempty"`
}

// Configured reports whether the preference is usable for generation
func (p AIPreference) Configured() bool {
	return p.APIKey != "" && (p.Provider == AIProviderGemini || p.Provider == AIProviderOpenAI)
}
