package request

import "stayspot/internal/usecase/commands"

type SpotRequest struct {
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PriceCents   int64   `json:"priceCents" binding:"required"`
	PreviewImage string  `json:"previewImage" binding:"omitempty,url"`
}

func (r SpotRequest) ToCommand() commands.CreateSpotRequest {
	return commands.CreateSpotRequest{
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		Lat:          r.Lat,
		Lng:          r.Lng,
		Name:         r.Name,
		Description:  r.Description,
		PriceCents:   r.PriceCents,
		PreviewImage: r.PreviewImage,
	}
}
