package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/validation"
)

const msgInvalidJSON = "Invalid JSON payload"

type UnitsController struct {
	unitService *services.UnitService
}

func NewUnitsController(us *services.UnitService) *UnitsController {
	return &UnitsController{unitService: us}
}

// GET /api/units?limit=&offset=
func (c *UnitsController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.unitService.ListUnits(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/units/{id}
func (c *UnitsController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	unit, err := c.unitService.GetUnitDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// POST /api/units
func (c *UnitsController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUnitRequest
	decodeErrs, ok := decodeBody(w, r, &req)
	if !ok {
		return
	}
	if len(decodeErrs) > 0 {
		// Report the decode violations together with everything else wrong
		// with the payload.
		_, schemaErrs := validation.ValidateCreateUnit(req)
		utils.HandleAppError(w, r, &utils.ValidationError{
			Details: validation.Merge(decodeErrs, schemaErrs),
		})
		return
	}

	unit, err := c.unitService.CreateUnit(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, unit)
}
