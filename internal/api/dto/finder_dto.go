package dto

// CenterDTO 附近接种点
type CenterDTO struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	DistanceKm float64 `json:"distanceKm"`
}

type FindCentersResultDTO struct {
	Pincode string       `json:"pincode"`
	Centers []*CenterDTO `json:"centers"`
}
