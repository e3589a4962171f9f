package server

import (
	"net/http"

	"github.com/sozercan/prompt-generator/apimodels"
	"github.com/sozercan/prompt-generator/internal/engine"
)

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, openAPISpec())
}

func openAPISpec() map[string]interface{} {
	types := apimodels.NewTypesResponse()

	jsonBody := func(ref string) map[string]interface{} {
		return map[string]interface{}{
			"required": true,
			"content": map[string]interface{}{
				"application/json": map[string]interface{}{
					"schema": map[string]interface{}{"$ref": ref},
				},
			},
		}
	}
	jsonResponse := func(desc, ref string) map[string]interface{} {
		return map[string]interface{}{
			"description": desc,
			"content": map[string]interface{}{
				"application/json": map[string]interface{}{
					"schema": map[string]interface{}{"$ref": ref},
				},
			},
		}
	}
	errorResponses := map[string]interface{}{
		"422": jsonResponse("Validation Error", "#/components/schemas/ValidationError"),
		"500": jsonResponse("Internal Error", "#/components/schemas/Error"),
	}
	withErrors := func(ok map[string]interface{}) map[string]interface{} {
		out := map[string]interface{}{"200": ok}
		for code, resp := range errorResponses {
			out[code] = resp
		}
		return out
	}
	stringArray := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       ServiceName,
			"description": "Generate and optimize prompts for images, workflows, code, and automation",
			"version":     Version,
		},
		"paths": map[string]interface{}{
			"/": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":   "Health check",
					"responses": map[string]interface{}{"200": jsonResponse("Service status", "#/components/schemas/Status")},
				},
			},
			"/generate": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Generate multiple random prompts",
					"requestBody": jsonBody("#/components/schemas/GenerateRequest"),
					"responses":   withErrors(jsonResponse("Generated prompts", "#/components/schemas/GenerateResponse")),
				},
			},
			"/optimize": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Optimize a vague prompt into a specific one",
					"requestBody": jsonBody("#/components/schemas/OptimizeRequest"),
					"responses":   withErrors(jsonResponse("Optimized prompt", "#/components/schemas/OptimizeResponse")),
				},
			},
			"/types": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":   "Get available prompt types",
					"responses": map[string]interface{}{"200": jsonResponse("Prompt types and specificity levels", "#/components/schemas/Types")},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Status": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"status":  map[string]interface{}{"type": "string"},
						"service": map[string]interface{}{"type": "string"},
						"version": map[string]interface{}{"type": "string"},
					},
				},
				"GenerateRequest": map[string]interface{}{
					"type":     "object",
					"required": []string{"prompt_type"},
					"properties": map[string]interface{}{
						"prompt_type": map[string]interface{}{"type": "string", "enum": types.Types},
						"count": map[string]interface{}{
							"type":    "integer",
							"minimum": apimodels.MinCount,
							"maximum": apimodels.MaxCount,
							"default": apimodels.DefaultCount,
						},
						"specificity": map[string]interface{}{
							"type":    "string",
							"enum":    types.SpecificityLevels,
							"default": string(engine.SpecificityMedium),
						},
					},
				},
				"GenerateResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"prompts":     stringArray,
						"count":       map[string]interface{}{"type": "integer"},
						"prompt_type": map[string]interface{}{"type": "string"},
						"specificity": map[string]interface{}{"type": "string"},
					},
				},
				"OptimizeRequest": map[string]interface{}{
					"type":     "object",
					"required": []string{"vague_prompt"},
					"properties": map[string]interface{}{
						"vague_prompt": map[string]interface{}{"type": "string", "minLength": 1, "maxLength": apimodels.MaxPromptLength},
						"context":      map[string]interface{}{"type": "string", "maxLength": apimodels.MaxContextLength, "nullable": true},
					},
				},
				"OptimizeResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"original":      map[string]interface{}{"type": "string"},
						"optimized":     map[string]interface{}{"type": "string"},
						"detected_type": map[string]interface{}{"type": "string", "enum": types.Types},
					},
				},
				"Types": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"types":              stringArray,
						"specificity_levels": stringArray,
					},
				},
				"Error": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"detail": map[string]interface{}{"type": "string"},
					},
				},
				"ValidationError": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"detail": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"loc":  stringArray,
									"msg":  map[string]interface{}{"type": "string"},
									"type": map[string]interface{}{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	}
}
