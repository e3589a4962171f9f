package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sozercan/prompt-generator/apimodels"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.StatusResponse{
		Status:  "online",
		Service: ServiceName,
		Version: Version,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req apimodels.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	params, err := req.Validate()
	if err != nil {
		writeValidationError(w, err)
		return
	}

	slog.Info("Handling generate request",
		"prompt_type", params.Category,
		"count", params.Count,
		"specificity", params.Specificity,
	)

	prompts, err := s.engine.Generate(params.Category, params.Count, params.Specificity)
	if err != nil {
		slog.Error("Generate request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, apimodels.GenerateResponse{
		Prompts:     prompts,
		Count:       len(prompts),
		PromptType:  string(params.Category),
		Specificity: string(params.Specificity),
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req apimodels.OptimizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	slog.Info("Handling optimize request", "length", len(req.VaguePrompt))

	result := s.engine.Optimize(req.VaguePrompt, req.ContextValue())

	slog.Debug("Optimize request completed", "detected_type", result.Category)

	writeJSON(w, http.StatusOK, apimodels.OptimizeResponse{
		Original:     result.Original,
		Optimized:    result.Optimized,
		DetectedType: string(result.Category),
	})
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.NewTypesResponse())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return apimodels.NewValidationError("", "invalid JSON body: "+err.Error(), "value_error.jsondecode")
	}
	return nil
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *apimodels.ValidationError
	if errors.As(err, &verr) {
		slog.Debug("Rejected invalid request", "error", verr)
		writeJSON(w, http.StatusUnprocessableEntity, apimodels.ErrorResponse{Detail: verr.Errors})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apimodels.ErrorResponse{Detail: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
