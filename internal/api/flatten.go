package api

import (
	"encoding/json"
	"strings"
)

// Attribute ids pulled out of the attribute list during flattening.
const (
	attrBrand         = "BRAND"
	attrModel         = "MODEL"
	attrPackageLength = "PACKAGE_LENGTH"
	attrPackageWeight = "PACKAGE_WEIGHT"
)

// StringList marshals as a JSON array and as a pipe-joined CSV cell.
type StringList []string

func (l StringList) MarshalCSV() (string, error) {
	return strings.Join(l, "|"), nil
}

func (l *StringList) UnmarshalCSV(s string) error {
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, "|")
	return nil
}

// RawJSON carries an already-encoded JSON fragment through both the JSON
// and CSV marshallers untouched.
type RawJSON []byte

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

func (r RawJSON) MarshalCSV() (string, error) {
	return string(r), nil
}

func (r *RawJSON) UnmarshalCSV(s string) error {
	*r = RawJSON(s)
	return nil
}

// FlatItem is one search result flattened to a single level. The field set
// is fixed: every flattened record carries the same columns, with the
// attribute-derived ones nil when the listing has no such attribute.
type FlatItem struct {
	ID                 string     `json:"id" csv:"id"`
	Title              string     `json:"title" csv:"title"`
	Condition          string     `json:"condition" csv:"condition"`
	ListingTypeID      string     `json:"listing_type_id" csv:"listing_type_id"`
	Permalink          string     `json:"permalink" csv:"permalink"`
	SiteID             string     `json:"site_id" csv:"site_id"`
	CategoryID         string     `json:"category_id" csv:"category_id"`
	DomainID           string     `json:"domain_id" csv:"domain_id"`
	Thumbnail          string     `json:"thumbnail" csv:"thumbnail"`
	CurrencyID         string     `json:"currency_id" csv:"currency_id"`
	Price              float64    `json:"price" csv:"price"`
	OriginalPrice      *float64   `json:"original_price" csv:"original_price"`
	SalePrice          *float64   `json:"sale_price" csv:"sale_price"`
	SoldQuantity       int        `json:"sold_quantity" csv:"sold_quantity"`
	AvailableQuantity  int        `json:"available_quantity" csv:"available_quantity"`
	OfficialStoreID    *int       `json:"official_store_id" csv:"official_store_id"`
	UseThumbnailID     bool       `json:"use_thumbnail_id" csv:"use_thumbnail_id"`
	AcceptsMercadopago bool       `json:"accepts_mercadopago" csv:"accepts_mercadopago"`
	Tags               StringList `json:"tags" csv:"tags"`

	ShippingStorePickUp  bool       `json:"shipping_store_pick_up" csv:"shipping_store_pick_up"`
	ShippingFreeShipping bool       `json:"shipping_free_shipping" csv:"shipping_free_shipping"`
	ShippingLogisticType string     `json:"shipping_logistic_type" csv:"shipping_logistic_type"`
	ShippingMode         string     `json:"shipping_mode" csv:"shipping_mode"`
	ShippingTags         StringList `json:"shipping_tags" csv:"shipping_tags"`
	ShippingBenefits     RawJSON    `json:"shipping_benefits" csv:"shipping_benefits"`
	ShippingPromise      RawJSON    `json:"shipping_promise" csv:"shipping_promise"`

	SellerID               int64  `json:"seller_id" csv:"seller_id"`
	SellerNickname         string `json:"seller_nickname" csv:"seller_nickname"`
	SellerCarDealer        bool   `json:"seller_car_dealer" csv:"seller_car_dealer"`
	SellerRealEstateAgency bool   `json:"seller_real_estate_agency" csv:"seller_real_estate_agency"`
	SellerRegistrationDate string `json:"seller_registration_date" csv:"seller_registration_date"`
	SellerCarDealerLogo    string `json:"seller_car_dealer_logo" csv:"seller_car_dealer_logo"`
	SellerPermalink        string `json:"seller_permalink" csv:"seller_permalink"`

	SellerLevelID           string `json:"seller_level_id" csv:"seller_level_id"`
	SellerPowerSellerStatus string `json:"seller_power_seller_status" csv:"seller_power_seller_status"`

	SellerTransactionsCanceled  int     `json:"seller_transactions_canceled" csv:"seller_transactions_canceled"`
	SellerTransactionsCompleted int     `json:"seller_transactions_completed" csv:"seller_transactions_completed"`
	SellerTransactionsTotal     int     `json:"seller_transactions_total" csv:"seller_transactions_total"`
	SellerRatingNegative        float64 `json:"seller_rating_negative" csv:"seller_rating_negative"`
	SellerRatingNeutral         float64 `json:"seller_rating_neutral" csv:"seller_rating_neutral"`
	SellerRatingPositive        float64 `json:"seller_rating_positive" csv:"seller_rating_positive"`

	AddressStateID   string `json:"address_state_id" csv:"address_state_id"`
	AddressStateName string `json:"address_state_name" csv:"address_state_name"`
	AddressCityID    string `json:"address_city_id" csv:"address_city_id"`
	AddressCityName  string `json:"address_city_name" csv:"address_city_name"`

	BrandID             *string `json:"brand_id" csv:"brand_id"`
	BrandName           *string `json:"brand_name" csv:"brand_name"`
	ModelID             *string `json:"model_id" csv:"model_id"`
	ModelName           *string `json:"model_name" csv:"model_name"`
	PackageLengthUnit   *string `json:"package_length_unit" csv:"package_length_unit"`
	PackageLengthNumber *string `json:"package_length_number" csv:"package_length_number"`
	PackageWeightUnit   *string `json:"package_weight_unit" csv:"package_weight_unit"`
	PackageWeightNumber *string `json:"package_weight_number" csv:"package_weight_number"`
}

// FlattenResult maps one nested search result onto a FlatItem.
func FlattenResult(r SearchResult) FlatItem {
	flat := FlatItem{
		ID:                 r.ID,
		Title:              r.Title,
		Condition:          r.Condition,
		ListingTypeID:      r.ListingTypeID,
		Permalink:          r.Permalink,
		SiteID:             r.SiteID,
		CategoryID:         r.CategoryID,
		DomainID:           r.DomainID,
		Thumbnail:          r.Thumbnail,
		CurrencyID:         r.CurrencyID,
		Price:              r.Price,
		OriginalPrice:      r.OriginalPrice,
		SalePrice:          r.SalePrice,
		SoldQuantity:       r.SoldQuantity,
		AvailableQuantity:  r.AvailableQuantity,
		OfficialStoreID:    r.OfficialStoreID,
		UseThumbnailID:     r.UseThumbnailID,
		AcceptsMercadopago: r.AcceptsMercadopago,
		Tags:               StringList(r.Tags),

		ShippingStorePickUp:  r.Shipping.StorePickUp,
		ShippingFreeShipping: r.Shipping.FreeShipping,
		ShippingLogisticType: r.Shipping.LogisticType,
		ShippingMode:         r.Shipping.Mode,
		ShippingTags:         StringList(r.Shipping.Tags),
		ShippingBenefits:     rawJSONOrNil(r.Shipping.Benefits),
		ShippingPromise:      rawJSONOrNil(r.Shipping.Promise),

		SellerID:               r.Seller.ID,
		SellerNickname:         r.Seller.Nickname,
		SellerCarDealer:        r.Seller.CarDealer,
		SellerRealEstateAgency: r.Seller.RealEstateAgency,
		SellerRegistrationDate: r.Seller.RegistrationDate,
		SellerCarDealerLogo:    r.Seller.CarDealerLogo,
		SellerPermalink:        r.Seller.Permalink,

		SellerLevelID:           r.Seller.SellerReputation.LevelID,
		SellerPowerSellerStatus: r.Seller.SellerReputation.PowerSellerStatus,

		SellerTransactionsCanceled:  r.Seller.SellerReputation.Transactions.Canceled,
		SellerTransactionsCompleted: r.Seller.SellerReputation.Transactions.Completed,
		SellerTransactionsTotal:     r.Seller.SellerReputation.Transactions.Total,
		SellerRatingNegative:        r.Seller.SellerReputation.Transactions.Ratings.Negative,
		SellerRatingNeutral:         r.Seller.SellerReputation.Transactions.Ratings.Neutral,
		SellerRatingPositive:        r.Seller.SellerReputation.Transactions.Ratings.Positive,

		AddressStateID:   r.Address.StateID,
		AddressStateName: r.Address.StateName,
		AddressCityID:    r.Address.CityID,
		AddressCityName:  r.Address.CityName,
	}

	if a := attributeByID(r.Attributes, attrBrand); a != nil {
		flat.BrandID = &a.ValueID
		flat.BrandName = &a.ValueName
	}
	if a := attributeByID(r.Attributes, attrModel); a != nil {
		flat.ModelID = &a.ValueID
		flat.ModelName = &a.ValueName
	}
	if a := attributeByID(r.Attributes, attrPackageLength); a != nil {
		flat.PackageLengthUnit = &a.ValueID
		flat.PackageLengthNumber = &a.ValueName
	}
	if a := attributeByID(r.Attributes, attrPackageWeight); a != nil {
		flat.PackageWeightUnit = &a.ValueID
		flat.PackageWeightNumber = &a.ValueName
	}

	return flat
}

// attributeByID returns the first attribute with the given id, or nil. The
// API should not repeat ids, but if it does the first occurrence wins.
func attributeByID(attrs []Attribute, id string) *Attribute {
	for i := range attrs {
		if attrs[i].ID == id {
			return &attrs[i]
		}
	}
	return nil
}

func rawJSONOrNil(m json.RawMessage) RawJSON {
	if len(m) == 0 || string(m) == "null" {
		return nil
	}
	return RawJSON(m)
}
