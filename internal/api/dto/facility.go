package dto

type FacilityResponse struct {
	Name          string  `json:"name"`
	EquipmentType string  `json:"equipment_type"`
	Nature        string  `json:"nature"`
	Surface       string  `json:"surface"`
	Activity      string  `json:"activity"`
	Transport     string  `json:"transport,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type ListFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}
