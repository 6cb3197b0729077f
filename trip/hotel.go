package trip

// HotelListing is one fully-defaulted hotel record. Every field is
// guaranteed populated: the hotel fetcher applies a fallback per field, so
// consumers never see a partial listing.
type HotelListing struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Price     float64  `json:"price"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Type      string   `json:"type"`
}
