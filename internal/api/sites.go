package api

// Site identifies one national Mercado Libre marketplace.
type Site struct {
	ID string `json:"id"`
}

// Sites is the fixed list of marketplaces every dataset is fetched for.
// Order matters: output record sets are grouped by site in this order.
var Sites = []Site{
	{ID: "MLA"}, // Argentina
	{ID: "MBO"}, // Bolivia
	{ID: "MLB"}, // Brasil
	{ID: "MLC"}, // Chile
	{ID: "MCO"}, // Colombia
	{ID: "MCR"}, // Costa Rica
	{ID: "MRD"}, // Dominicana
	{ID: "MEC"}, // Ecuador
	{ID: "MSV"}, // El Salvador
	{ID: "MGT"}, // Guatemala
	{ID: "MHN"}, // Honduras
	{ID: "MLM"}, // Mexico
	{ID: "MNI"}, // Nicaragua
	{ID: "MPA"}, // Panamá
	{ID: "MPY"}, // Paraguay
	{ID: "MPE"}, // Perú
	{ID: "MLU"}, // Uruguay
	{ID: "MLV"}, // Venezuela
}
