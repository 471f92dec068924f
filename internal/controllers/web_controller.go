package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/homescout/listing-service/internal/services"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/web"
)

// WebController serves the server-rendered listing pages.
type WebController struct {
	unitService *services.UnitService
	renderer    *web.Renderer
}

func NewWebController(us *services.UnitService, renderer *web.Renderer) *WebController {
	return &WebController{unitService: us, renderer: renderer}
}

// GET /listings?page=N
func (c *WebController) ListingsPageHandler(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	if page < 1 {
		page = 1
	}

	resp, err := c.unitService.ListUnits(r.Context(), web.PageSize, web.PageOffset(page))
	if err != nil {
		pageError(w, r, err, "Failed to load listings page")
		return
	}
	view := web.NewListingsPage(resp, page)
	if view.PastLastPage() {
		http.Redirect(w, r, web.ListingsURL(view.TotalPages), http.StatusFound)
		return
	}
	c.renderer.Render(w, http.StatusOK, web.TemplateListings, view)
}

// GET /listings/{id}
func (c *WebController) ListingDetailPageHandler(w http.ResponseWriter, r *http.Request) {
	unit, err := c.unitService.GetUnitDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if utils.IsNotFound(err, utils.EntityUnit) {
			c.renderer.Render(w, http.StatusNotFound, web.TemplateNotFound, nil)
			return
		}
		pageError(w, r, err, "Failed to load listing detail page")
		return
	}
	c.renderer.Render(w, http.StatusOK, web.TemplateDetail, web.DetailPage{Unit: unit})
}

func pageError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	utils.Logger.WithError(err).
		WithField("request_id", utils.RequestIDFromContext(r.Context())).
		Error(msg)
	http.Error(w, utils.MsgSomethingWentWrong, http.StatusInternalServerError)
}
