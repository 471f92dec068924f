package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/homescout/listing-service/internal/controllers"
	"github.com/homescout/listing-service/internal/middleware"
	"github.com/homescout/listing-service/internal/utils"
)

type Controllers struct {
	Health  *controllers.HealthController
	Units   *controllers.UnitsController
	Catalog *controllers.CatalogController
	Web     *controllers.WebController
}

func NewRouter(c Controllers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	router.HandleFunc(Health, c.Health.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(UnitsBase, c.Units.ListUnitsHandler).Methods(http.MethodGet)
	router.HandleFunc(UnitsBase, c.Units.CreateUnitHandler).Methods(http.MethodPost)
	router.HandleFunc(UnitByID, c.Units.GetUnitHandler).Methods(http.MethodGet)

	router.HandleFunc(ProjectsBase, c.Catalog.ListProjectsHandler).Methods(http.MethodGet)
	router.HandleFunc(ProjectsBase, c.Catalog.CreateProjectHandler).Methods(http.MethodPost)
	router.HandleFunc(ProjectByID, c.Catalog.GetProjectHandler).Methods(http.MethodGet)
	router.HandleFunc(AmenitiesBase, c.Catalog.ListAmenitiesHandler).Methods(http.MethodGet)
	router.HandleFunc(AmenitiesBase, c.Catalog.CreateAmenityHandler).Methods(http.MethodPost)
	router.HandleFunc(AmenityByID, c.Catalog.GetAmenityHandler).Methods(http.MethodGet)

	router.Handle(Root, http.RedirectHandler(Listings, http.StatusFound)).Methods(http.MethodGet)
	router.HandleFunc(Listings, c.Web.ListingsPageHandler).Methods(http.MethodGet)
	router.HandleFunc(ListingDetail, c.Web.ListingDetailPageHandler).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondErrorWithCode(w, r, http.StatusNotFound, utils.ErrCodeNotFound, "Route not found")
	})
	return router
}
