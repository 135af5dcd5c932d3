package service

import (
	"context"

	"github.com/felalfaro/sellers-meli/internal/api"
	"github.com/felalfaro/sellers-meli/internal/repository"
)

const (
	pageSize = 50
	itemCap  = 1000
)

// DatasetService builds the cross-country record sets served by the API.
type DatasetService struct {
	meliClient *api.MeliClient
	itemRepo   *repository.ItemRepository
}

// NewDatasetService wires the service. itemRepo may be nil when snapshot
// persistence is not wanted.
func NewDatasetService(meliClient *api.MeliClient, itemRepo *repository.ItemRepository) *DatasetService {
	return &DatasetService{
		meliClient: meliClient,
		itemRepo:   itemRepo,
	}
}

// PaymentMethods returns the payment methods of every registered site,
// each record tagged with its country.
func (s *DatasetService) PaymentMethods(ctx context.Context) ([]api.CatalogRecord, error) {
	return s.fetchAllSites(ctx, s.meliClient.PaymentMethods)
}

// Categories returns the root categories of every registered site, each
// record tagged with its country.
func (s *DatasetService) Categories(ctx context.Context) ([]api.CatalogRecord, error) {
	return s.fetchAllSites(ctx, s.meliClient.Categories)
}

// fetchAllSites runs one catalog fetch per site, in registry order. A
// failure on any site aborts the whole fetch; there is no partial result.
func (s *DatasetService) fetchAllSites(ctx context.Context, fetch func(context.Context, string) ([]api.CatalogRecord, error)) ([]api.CatalogRecord, error) {
	var data []api.CatalogRecord
	for _, site := range api.Sites {
		records, err := fetch(ctx, site.ID)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			data = append(data, api.TagCountry(rec, site.ID))
		}
	}
	return data, nil
}

// ItemsByCategory pages through the category search results of one site,
// flattening every listing. Fetching stops once the reported total is
// passed, and is capped at itemCap records either way.
func (s *DatasetService) ItemsByCategory(ctx context.Context, categoryID, siteID string) ([]api.FlatItem, error) {
	data := make([]api.FlatItem, 0, pageSize)
	offset := 0

	for i := 0; i < itemCap/pageSize; i++ {
		page, err := s.meliClient.SearchByCategory(ctx, siteID, categoryID, offset)
		if err != nil {
			return nil, err
		}

		for _, result := range page.Results {
			data = append(data, api.FlattenResult(result))
		}

		offset += pageSize
		if offset > page.Paging.Total {
			break
		}
	}

	if s.itemRepo != nil {
		snapshots := make([]repository.ItemSnapshot, 0, len(data))
		for _, it := range data {
			snapshots = append(snapshots, repository.ItemSnapshot{
				ItemID:            it.ID,
				SiteID:            it.SiteID,
				CategoryID:        it.CategoryID,
				Title:             it.Title,
				Condition:         it.Condition,
				Price:             it.Price,
				OriginalPrice:     it.OriginalPrice,
				SoldQuantity:      it.SoldQuantity,
				AvailableQuantity: it.AvailableQuantity,
				SellerID:          it.SellerID,
				SellerNickname:    it.SellerNickname,
				BrandName:         it.BrandName,
				ModelName:         it.ModelName,
				FreeShipping:      it.ShippingFreeShipping,
			})
		}

		// Persist snapshot data (surface error to caller).
		if err := s.itemRepo.SaveItemSnapshots(ctx, snapshots); err != nil {
			return nil, err
		}
	}

	return data, nil
}
