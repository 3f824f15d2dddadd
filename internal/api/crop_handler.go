package api

import (
	"net/http"

	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/model"
)

// CropHandler handles HTTP requests for crop recommendations.
type CropHandler struct {
	service interfaces.CropService
}

func NewCropHandler(svc interfaces.CropService) *CropHandler {
	return &CropHandler{service: svc}
}

// Recommend godoc
// @Summary      Recommend a crop
// @Description  Forwards the soil and climate form to the prediction server.
// @Tags         Crops
// @Accept       json
// @Produce      json
// @Param        input  body      model.CropInput  true  "Soil and climate values"
// @Success      200    {object}  model.CropRecommendation
// @Failure      400    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse
// @Failure      502    {object}  ErrorResponse
// @Router       /v1/crops/recommend [post]
func (h *CropHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input model.CropInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&input); err != nil {
		respondWithError(w, err)
		return
	}
	rec, err := h.service.Recommend(r.Context(), &input)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rec)
}

// GetHistory godoc
// @Summary      Get recommendation history
// @Tags         Crops
// @Produce      json
// @Success      200  {array}   model.CropRecommendation
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/crops/history [get]
func (h *CropHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.History(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, recs)
}
