package llm

import "strings"

// Vendor names accepted by CYBERCALC_LLM_PROVIDER.
const (
	VendorGemini     = "gemini"
	VendorOpenAI     = "openai"
	VendorAnthropic  = "anthropic"
	VendorOpenRouter = "openrouter"
	VendorMock       = "mock"
)

// vendor describes one hosted API: the variables it is configured from,
// its default model and the short model names it accepts.
type vendor struct {
	name string

	// envPrefix is the CYBERCALC_<PREFIX>_* namespace.
	envPrefix string

	// discoveryKey is the vendor's conventional key variable, probed when
	// no CYBERCALC_ key is set.
	discoveryKey string

	defaultModel   string
	defaultBaseURL string
	aliases        map[string]string
}

// vendors is in discovery order.
var vendors = []vendor{
	{
		name:         VendorGemini,
		envPrefix:    "GEMINI",
		discoveryKey: "GEMINI_API_KEY",
		defaultModel: "gemini-2.5-flash",
		aliases: map[string]string{
			"gemini-flash": "gemini-2.5-flash",
			"gemini-pro":   "gemini-2.5-pro",
			"gemini-lite":  "gemini-2.5-flash-lite",
		},
	},
	{
		name:         VendorOpenAI,
		envPrefix:    "OPENAI",
		discoveryKey: "OPENAI_API_KEY",
		defaultModel: "gpt-4o-mini",
	},
	{
		name:         VendorAnthropic,
		envPrefix:    "ANTHROPIC",
		discoveryKey: "ANTHROPIC_API_KEY",
		defaultModel: "claude-haiku",
		aliases: map[string]string{
			"claude-haiku":  "claude-haiku-4-5-20251001",
			"claude-sonnet": "claude-sonnet-4-5-20250929",
		},
	},
	{
		name:           VendorOpenRouter,
		envPrefix:      "OPENROUTER",
		discoveryKey:   "OPENROUTER_API_KEY",
		defaultModel:   "google/gemini-2.5-flash",
		defaultBaseURL: "https://openrouter.ai/api/v1",
	},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// resolveModel expands a short name. Anything else is passed through, so
// full model IDs and gateway paths work unchanged.
func (v vendor) resolveModel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = v.defaultModel
	}
	if id, ok := v.aliases[name]; ok {
		return id
	}
	return name
}
