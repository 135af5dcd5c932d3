package api

import "encoding/json"

// SearchResponse is the body of /sites/{site}/search.
type SearchResponse struct {
	SiteID  string         `json:"site_id"`
	Query   string         `json:"query"`
	Paging  Paging         `json:"paging"`
	Results []SearchResult `json:"results"`
}

type Paging struct {
	Total          int `json:"total"`
	PrimaryResults int `json:"primary_results"`
	Offset         int `json:"offset"`
	Limit          int `json:"limit"`
}

// SearchResult is one listing as returned by the search API.
type SearchResult struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Condition          string      `json:"condition"`
	ListingTypeID      string      `json:"listing_type_id"`
	Permalink          string      `json:"permalink"`
	SiteID             string      `json:"site_id"`
	CategoryID         string      `json:"category_id"`
	DomainID           string      `json:"domain_id"`
	Thumbnail          string      `json:"thumbnail"`
	CurrencyID         string      `json:"currency_id"`
	Price              float64     `json:"price"`
	OriginalPrice      *float64    `json:"original_price"`
	SalePrice          *float64    `json:"sale_price"`
	SoldQuantity       int         `json:"sold_quantity"`
	AvailableQuantity  int         `json:"available_quantity"`
	OfficialStoreID    *int        `json:"official_store_id"`
	UseThumbnailID     bool        `json:"use_thumbnail_id"`
	AcceptsMercadopago bool        `json:"accepts_mercadopago"`
	Tags               []string    `json:"tags"`
	Shipping           Shipping    `json:"shipping"`
	Seller             Seller      `json:"seller"`
	Address            Address     `json:"address"`
	Attributes         []Attribute `json:"attributes"`
}

type Shipping struct {
	StorePickUp  bool            `json:"store_pick_up"`
	FreeShipping bool            `json:"free_shipping"`
	LogisticType string          `json:"logistic_type"`
	Mode         string          `json:"mode"`
	Tags         []string        `json:"tags"`
	Benefits     json.RawMessage `json:"benefits"`
	Promise      json.RawMessage `json:"promise"`
}

type Seller struct {
	ID               int64            `json:"id"`
	Nickname         string           `json:"nickname"`
	CarDealer        bool             `json:"car_dealer"`
	RealEstateAgency bool             `json:"real_estate_agency"`
	RegistrationDate string           `json:"registration_date"`
	CarDealerLogo    string           `json:"car_dealer_logo"`
	Permalink        string           `json:"permalink"`
	SellerReputation SellerReputation `json:"seller_reputation"`
}

type SellerReputation struct {
	LevelID           string       `json:"level_id"`
	PowerSellerStatus string       `json:"power_seller_status"`
	Transactions      Transactions `json:"transactions"`
}

type Transactions struct {
	Canceled  int     `json:"canceled"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratings   Ratings `json:"ratings"`
}

type Ratings struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

type Address struct {
	StateID   string `json:"state_id"`
	StateName string `json:"state_name"`
	CityID    string `json:"city_id"`
	CityName  string `json:"city_name"`
}

type Attribute struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ValueID   string `json:"value_id"`
	ValueName string `json:"value_name"`
}
