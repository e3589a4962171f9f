package apimodels

type StatusResponse struct {
	Status  string `json:"status" yaml:"status"`
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
}

type GenerateResponse struct {
	// Generated prompts in generation order
	Prompts []string `json:"prompts" yaml:"prompts"`

	Count       int    `json:"count" yaml:"count"`
	PromptType  string `json:"prompt_type" yaml:"prompt_type"`
	Specificity string `json:"specificity" yaml:"specificity"`
}

type OptimizeResponse struct {
	Original     string `json:"original" yaml:"original"`
	Optimized    string `json:"optimized" yaml:"optimized"`
	DetectedType string `json:"detected_type" yaml:"detected_type"`
}

type TypesResponse struct {
	Types             []string `json:"types" yaml:"types"`
	SpecificityLevels []string `json:"specificity_levels" yaml:"specificity_levels"`
}

// ErrorResponse carries either a message string or a list of FieldError values.
type ErrorResponse struct {
	Detail interface{} `json:"detail" yaml:"detail"`
}

func NewTypesResponse() TypesResponse {
	return TypesResponse{
		Types:             categoryNames(),
		SpecificityLevels: specificityNames(),
	}
}
