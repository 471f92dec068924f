package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price, currency, want string
	}{
		{"25000000", "USD", "25,000,000 USD"},
		{"1500.5", "", "1,500.5 EGP"},
		{"999", "EGP", "999 EGP"},
		{"call us", "USD", "call us USD"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatPrice(tc.price, tc.currency), tc.price)
	}
}

func TestPageMath(t *testing.T) {
	require.Equal(t, 0, PageOffset(0))
	require.Equal(t, 0, PageOffset(1))
	require.Equal(t, 20, PageOffset(3))

	p := NewListingsPage(&dtos.ListUnitsResponse{Pagination: dtos.Pagination{Total: 21}}, 3)
	require.Equal(t, 3, p.TotalPages)
	require.True(t, p.HasPrev)
	require.False(t, p.HasNext)

	empty := NewListingsPage(&dtos.ListUnitsResponse{}, 1)
	require.Equal(t, 1, empty.TotalPages)
	require.False(t, empty.HasPrev)
	require.False(t, empty.HasNext)
	require.False(t, NewListingsPage(&dtos.ListUnitsResponse{}, 9).PastLastPage())

	require.False(t, p.PastLastPage())
	beyond := NewListingsPage(&dtos.ListUnitsResponse{Pagination: dtos.Pagination{Total: 21}}, 4)
	require.True(t, beyond.PastLastPage())
	require.Equal(t, "/listings?page=3", ListingsURL(beyond.TotalPages))
}

func render(t *testing.T, status int, name string, data any) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, status, name, data)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestRenderListings(t *testing.T) {
	id := primitive.NewObjectID()
	resp := &dtos.ListUnitsResponse{
		Listings: []models.UnitSummary{{
			ID: id, Name: "Villa 3", Compound: "Katameya", Bedrooms: 3, Bathrooms: 2,
			Price: "25000000", Currency: "USD", Size: "1500",
		}},
		Pagination: dtos.Pagination{Total: 11, Limit: PageSize},
	}

	rec, doc := render(t, http.StatusOK, TemplateListings, NewListingsPage(resp, 1))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Equal(t, "11 Results Found", doc.Find(".results").Text())
	require.Equal(t, "/listings/"+id.Hex(), doc.Find("a.card").AttrOr("href", ""))
	require.Equal(t, "25,000,000 USD", doc.Find(".card .price").Text())
	require.Equal(t, "Page 1 of 2", doc.Find(".page-info").Text())
	require.Equal(t, 1, doc.Find("span.prev.disabled").Length())
	require.Equal(t, "/listings?page=2", doc.Find("a.next").AttrOr("href", ""))
}

func TestRenderEmptyListings(t *testing.T) {
	_, doc := render(t, http.StatusOK, TemplateListings, NewListingsPage(&dtos.ListUnitsResponse{}, 1))
	require.Equal(t, "No Listings Found", doc.Find(".empty h2").Text())
	require.Zero(t, doc.Find(".pager").Length())
}

func TestRenderDetail(t *testing.T) {
	unit := &models.Unit{
		Name: "Villa 3", Compound: "Katameya", Price: "25000000", Currency: "USD",
		PropertyType: models.PropertyTypeVilla, FinishingType: models.FinishingTypeCoreAndShell,
		ImageURLs: []string{"https://img/1.jpg", "https://img/2.jpg"},
		Project:   models.ProjectSnapshot{Name: "Katameya Heights"},
		Amenities: []models.AmenitySnapshot{{Name: "Pool"}, {Name: "Gym"}},
	}
	_, doc := render(t, http.StatusOK, TemplateDetail, DetailPage{Unit: unit})

	require.Equal(t, "Villa 3", doc.Find("h1.name").Text())
	require.Equal(t, 2, doc.Find(".images img").Length())
	require.Equal(t, "Core & Shell", doc.Find(".finishing-type").Text())
	var tags []string
	doc.Find(".tags span").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	require.Equal(t, []string{"Pool", "Gym"}, tags)
	require.Zero(t, doc.Find(".description").Length())
}

func TestRenderNotFound(t *testing.T) {
	rec, doc := render(t, http.StatusNotFound, TemplateNotFound, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "No Listing Details Found", doc.Find(".empty h2").Text())
}
