package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/patrolsync/nibrs/internal/extraction"
	"github.com/patrolsync/nibrs/internal/mapper"
	"github.com/patrolsync/nibrs/internal/metrics"
	"github.com/patrolsync/nibrs/internal/models"
	"github.com/patrolsync/nibrs/internal/normalizer"
	"github.com/patrolsync/nibrs/internal/validator"
	"github.com/patrolsync/nibrs/internal/xmlcodec"
)

// Handler serves the mapping pipeline endpoints.
type Handler struct {
	mapper    *mapper.Mapper
	extractor extraction.Extractor
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewHandler constructs a Handler. extractor may be nil when no OpenAI
// key is configured; the extract endpoint then reports unavailable.
func NewHandler(m *mapper.Mapper, extractor extraction.Extractor, collector *metrics.Collector, logger *slog.Logger) *Handler {
	return &Handler{mapper: m, extractor: extractor, collector: collector, logger: logger}
}

// MapResponse is the success payload for the map endpoint. Mapping and
// validation warnings are merged into the validation result so callers
// see a single list.
type MapResponse struct {
	Segments   models.NibrsSegments    `json:"segments"`
	Validation models.ValidationResult `json:"validation"`
}

// MapExtract handles POST /api/nibrs/map: DescriptiveExtract in, a
// validated record out, or a StandardErrorResponse naming what is
// missing.
func (h *Handler) MapExtract(w http.ResponseWriter, r *http.Request) {
	var extract models.DescriptiveExtract
	if err := json.NewDecoder(r.Body).Decode(&extract); err != nil {
		h.writeMalformed(w, r, err)
		return
	}

	report := h.mapper.ValidateAndMap(extract)
	if !report.OK {
		h.collector.RecordMapping("failed")
		h.writeError(w, r, http.StatusUnprocessableEntity, normalizer.FromMapReport(report))
		return
	}
	h.collector.RecordMapping("ok")

	result, level := validator.ValidatePayload(*report.Segments)
	result.Warnings = append(report.Warnings, result.Warnings...)
	if !result.OK {
		h.collector.RecordValidationFailure(string(level))
		h.writeError(w, r, http.StatusUnprocessableEntity, normalizer.FromValidation(result, level, report.Segments))
		return
	}

	h.writeJSON(w, http.StatusOK, MapResponse{
		Segments:   *report.Segments,
		Validation: result,
	})
}

// Validate handles POST /api/nibrs/validate: a mapped record in, the
// composed validation result out. Validation failures are part of the
// result, not an HTTP error.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var segments models.NibrsSegments
	if err := json.NewDecoder(r.Body).Decode(&segments); err != nil {
		h.writeMalformed(w, r, err)
		return
	}

	result, level := validator.ValidatePayload(segments)
	if !result.OK {
		h.collector.RecordValidationFailure(string(level))
	}
	h.writeJSON(w, http.StatusOK, result)
}

// BuildXML handles POST /api/nibrs/xml: a mapped record in, its NIBRS
// XML serialization out. The record must pass validation first.
func (h *Handler) BuildXML(w http.ResponseWriter, r *http.Request) {
	var segments models.NibrsSegments
	if err := json.NewDecoder(r.Body).Decode(&segments); err != nil {
		h.writeMalformed(w, r, err)
		return
	}

	result, level := validator.ValidatePayload(segments)
	if !result.OK {
		h.collector.RecordValidationFailure(string(level))
		h.writeError(w, r, http.StatusUnprocessableEntity, normalizer.FromValidation(result, level, &segments))
		return
	}

	xml, err := xmlcodec.Build(segments)
	if err != nil {
		h.logger.Error("xml build failed", "error", err)
		h.writeError(w, r, http.StatusInternalServerError, models.StandardErrorResponse{
			Error:         err.Error(),
			MissingFields: []string{},
			Warnings:      []string{},
			Suggestions:   []string{},
			RequiredLevel: models.LevelSchema,
		})
		return
	}
	h.collector.RecordXMLBuild()

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml))
}

// ExtractRequest is the body for the extract endpoint.
type ExtractRequest struct {
	Narrative string `json:"narrative"`
}

// Extract handles POST /api/nibrs/extract: raw narrative in, a
// DescriptiveExtract out via the LLM collaborator. Unavailable when no
// extractor is configured.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		h.writeError(w, r, http.StatusServiceUnavailable, models.StandardErrorResponse{
			Error:         "extraction is not configured; submit a DescriptiveExtract to /api/nibrs/map instead",
			MissingFields: []string{},
			Warnings:      []string{},
			Suggestions:   []string{},
			RequiredLevel: models.LevelMapping,
		})
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMalformed(w, r, err)
		return
	}

	extract, err := h.extractor.Extract(r.Context(), req.Narrative)
	if err != nil {
		h.logger.Error("extraction failed", "error", err)
		h.writeError(w, r, http.StatusBadGateway, models.StandardErrorResponse{
			Error:         err.Error(),
			MissingFields: []string{"narrative"},
			Warnings:      []string{},
			Suggestions:   []string{},
			RequiredLevel: models.LevelMapping,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, extract)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, resp models.StandardErrorResponse) {
	h.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", resp.Error,
		"request_id", RequestID(r.Context()),
	)
	h.writeJSON(w, status, resp)
}

func (h *Handler) writeMalformed(w http.ResponseWriter, r *http.Request, err error) {
	h.writeError(w, r, http.StatusBadRequest, models.StandardErrorResponse{
		Error:         "invalid request body: " + err.Error(),
		MissingFields: []string{},
		Warnings:      []string{},
		Suggestions:   []string{},
		RequiredLevel: models.LevelSchema,
	})
}
