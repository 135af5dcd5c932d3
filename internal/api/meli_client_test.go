package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLA/payment_methods", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "visa", "name": "Visa", "payment_type_id": "credit_card"},
			{"id": "master", "name": "Mastercard", "payment_type_id": "credit_card"}
		]`))
	}))
	defer srv.Close()

	client := NewMeliClient(srv.URL)
	records, err := client.PaymentMethods(context.Background(), "MLA")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "visa", records[0]["id"])
	assert.Equal(t, "Mastercard", records[1]["name"])
}

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLB/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "MLB5672", "name": "Acessórios para Veículos"}]`))
	}))
	defer srv.Close()

	client := NewMeliClient(srv.URL)
	records, err := client.Categories(context.Background(), "MLB")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "MLB5672", records[0]["id"])
}

func TestFetchCatalogUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Site not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewMeliClient(srv.URL)
	_, err := client.Categories(context.Background(), "XXX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestFetchCatalogMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := NewMeliClient(srv.URL)
	_, err := client.PaymentMethods(context.Background(), "MLA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json decode")
}

func TestSearchByCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLA/search", r.URL.Path)
		assert.Equal(t, "MLA1055", r.URL.Query().Get("category"))
		assert.Equal(t, "100", r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"site_id": "MLA",
			"paging": {"total": 3007, "offset": 100, "limit": 50},
			"results": [{"id": "MLA1", "title": "uno"}, {"id": "MLA2", "title": "dos"}]
		}`))
	}))
	defer srv.Close()

	client := NewMeliClient(srv.URL)
	page, err := client.SearchByCategory(context.Background(), "MLA", "MLA1055", 100)
	require.NoError(t, err)

	assert.Equal(t, 3007, page.Paging.Total)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "MLA1", page.Results[0].ID)
	assert.Equal(t, "dos", page.Results[1].Title)
}
