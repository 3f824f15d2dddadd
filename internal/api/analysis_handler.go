package api

import (
	"errors"
	"fmt"
	"net/http"

	"agribrain/backend/internal/capture"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/service"
)

// maxMultipartMemory bounds the in-memory part of an upload; the rest spills
// to temporary files.
const maxMultipartMemory = 1 << 20

// AnalysisHandler handles HTTP requests for crop image analysis.
type AnalysisHandler struct {
	service interfaces.AnalysisService
}

func NewAnalysisHandler(svc interfaces.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: svc}
}

// UploadImage godoc
// @Summary      Analyze an uploaded image
// @Description  Analyzes a crop photo. Images must be under 5 MB.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Crop image"
// @Success      200    {object}  model.AnalysisRecord
// @Failure      400    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse
// @Failure      413    {object}  ErrorResponse
// @Failure      415    {object}  ErrorResponse
// @Router       /v1/analysis/upload [post]
func (h *AnalysisHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Leave room for the multipart envelope around the file itself.
	const limit = capture.MaxImageSize + maxMultipartMemory
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || r.ContentLength > limit {
			h.rejectOversized(w, r, limit)
			return
		}
		respondWithError(w, fmt.Errorf("%w: expected a multipart form", app_errors.ErrValidation))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: no file selected", app_errors.ErrValidation))
		return
	}
	defer func() { _ = file.Close() }()

	record, err := h.service.AnalyzeUpload(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// rejectOversized runs the upload through the analysis session with only its
// declared size, so the session fails in capture like any other oversized
// file. The body is never read.
func (h *AnalysisHandler) rejectOversized(w http.ResponseWriter, r *http.Request, limit int64) {
	size := r.ContentLength
	if size <= limit {
		size = limit + 1
	}
	record, err := h.service.AnalyzeUpload(r.Context(), "", size, nil)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// Snapshot godoc
// @Summary      Analyze a camera snapshot
// @Description  Analyzes a frame captured from the camera preview, sent as a data URL.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        snapshot  body      service.SnapshotRequest  true  "Snapshot"
// @Success      200       {object}  model.AnalysisRecord
// @Failure      400       {object}  ErrorResponse
// @Failure      413       {object}  ErrorResponse
// @Failure      415       {object}  ErrorResponse
// @Router       /v1/analysis/snapshot [post]
func (h *AnalysisHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	var req service.SnapshotRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	record, err := h.service.AnalyzeSnapshot(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// GetHistory godoc
// @Summary      Get analysis history
// @Tags         Analysis
// @Produce      json
// @Success      200  {array}   model.AnalysisRecord
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/analysis/history [get]
func (h *AnalysisHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}
