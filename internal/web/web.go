// Package web renders the server-side listing pages.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
	"github.com/homescout/listing-service/internal/utils"
)

const (
	PageSize = 10

	TemplateListings = "listings.html"
	TemplateDetail   = "detail.html"
	TemplateNotFound = "not_found.html"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatPrice": FormatPrice,
		"firstImage":  firstImage,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first so a template
// error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		utils.Logger.WithError(err).WithField("template", name).Error("Failed to render page")
		http.Error(w, utils.MsgSomethingWentWrong, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ListingsPage is the view model for the paginated grid.
type ListingsPage struct {
	Listings   []models.UnitSummary
	Total      int64
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
	HasPrev    bool
	HasNext    bool
}

// NewListingsPage derives pager state for a 1-based page.
func NewListingsPage(resp *dtos.ListUnitsResponse, page int) ListingsPage {
	totalPages := int((resp.Pagination.Total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	return ListingsPage{
		Listings:   resp.Listings,
		Total:      resp.Pagination.Total,
		Page:       page,
		TotalPages: totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// PastLastPage reports a page number beyond the last page of a non-empty
// result set.
func (p ListingsPage) PastLastPage() bool {
	return p.Total > 0 && p.Page > p.TotalPages
}

// ListingsURL is the grid address for a 1-based page.
func ListingsURL(page int) string {
	return "/listings?page=" + strconv.Itoa(page)
}

// PageOffset converts a 1-based page number into a listing offset.
func PageOffset(page int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * PageSize
}

type DetailPage struct {
	Unit *models.Unit
}

func firstImage(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
