package dto

type SearchRequest struct {
	Address       string   `json:"address"`
	EquipmentType *string  `json:"equipment_type"`
	Nature        *string  `json:"nature"`
	Activity      *string  `json:"activity"`
	Surfaces      []string `json:"surfaces"`
	Transport     *string  `json:"transport"`
	RadiusKm      float64  `json:"radius_km"`
	MaxResults    int      `json:"max_results"`
}

type ReferencePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchResultResponse struct {
	Rank          int     `json:"rank"`
	DistanceKm    float64 `json:"distance_km"`
	DirectionsURL string  `json:"directions_url"`
	FacilityResponse
}

type SearchResponse struct {
	Reference     ReferencePoint         `json:"reference"`
	NoMatchReason string                 `json:"no_match_reason,omitempty"`
	Results       []SearchResultResponse `json:"results"`
}
