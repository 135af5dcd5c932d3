package api

// CatalogRecord is one entry from a catalog endpoint (payment methods,
// categories). The API does not guarantee a stable schema across sites, so
// records are kept as-is instead of forcing them into a struct.
type CatalogRecord map[string]any

// TagCountry stamps the record with the site it was fetched for and returns
// it. Applying the same tag twice is a no-op.
func TagCountry(rec CatalogRecord, siteID string) CatalogRecord {
	rec["country"] = siteID
	return rec
}
