package handler

import (
	"net/http"

	"go-registration-portal/internal/delivery/dto"
	"go-registration-portal/internal/usecase"
	"go-registration-portal/pkg/response"
)

type LookupHandler struct {
	lookupUsecase usecase.LookupUsecase
}

func NewLookupHandler(lookupUsecase usecase.LookupUsecase) *LookupHandler {
	return &LookupHandler{lookupUsecase: lookupUsecase}
}

// Cities handles GET /api/cities.
func (h *LookupHandler) Cities(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.CitiesResponse{Cities: h.lookupUsecase.ListCities()})
}

// Areas handles GET /api/areas?city=. An unknown city yields an empty list,
// never an error.
func (h *LookupHandler) Areas(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	response.JSON(w, http.StatusOK, dto.AreasResponse{Areas: h.lookupUsecase.ListAreas(city)})
}
