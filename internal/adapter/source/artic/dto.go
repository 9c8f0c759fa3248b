package artic

// ListResponse is the envelope of GET /artworks
type ListResponse struct {
	Pagination *Pagination `json:"pagination"`
	Data       []Artwork   `json:"data"`
}

// DetailResponse is the envelope of GET /artworks/{id}
type DetailResponse struct {
	Data *Artwork `json:"data"`
}

// ErrorResponse is returned with non-2xx statuses
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Pagination describes the page that was served
type Pagination struct {
	Total int `json:"total"`
	Limit int `json:"limit"`
}

// Artwork is one record as served by the API. Any string field may be
// null, so all of them are pointers.
type Artwork struct {
	ID               int     `json:"id"`
	Title            *string `json:"title"`
	ArtistDisplay    *string `json:"artist_display"`
	ImageID          *string `json:"image_id"`
	ArtworkTypeTitle *string `json:"artwork_type_title"`
	DateDisplay      *string `json:"date_display"`
	MediumDisplay    *string `json:"medium_display"`
	Description      *string `json:"description"`
	Dimensions       *string `json:"dimensions"`
	CreditLine       *string `json:"credit_line"`
}
