package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(cs *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: cs}
}

// POST /api/projects
func (c *CatalogController) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProjectRequest
	if !decodeCatalogRequest(w, r, &req) {
		return
	}
	p, err := c.catalogService.CreateProject(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// GET /api/projects
func (c *CatalogController) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.catalogService.ListProjects(r.Context())
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GET /api/projects/{id}
func (c *CatalogController) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := c.catalogService.GetProject(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// POST /api/amenities
func (c *CatalogController) CreateAmenityHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateAmenityRequest
	if !decodeCatalogRequest(w, r, &req) {
		return
	}
	a, err := c.catalogService.CreateAmenity(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

// GET /api/amenities
func (c *CatalogController) ListAmenitiesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.catalogService.ListAmenities(r.Context())
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GET /api/amenities/{id}
func (c *CatalogController) GetAmenityHandler(w http.ResponseWriter, r *http.Request) {
	a, err := c.catalogService.GetAmenity(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

func decodeCatalogRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	decodeErrs, ok := decodeBody(w, r, dst)
	if !ok {
		return false
	}
	if len(decodeErrs) > 0 {
		utils.HandleAppError(w, r, &utils.ValidationError{Details: decodeErrs})
		return false
	}
	return true
}
