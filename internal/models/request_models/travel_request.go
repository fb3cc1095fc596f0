package request_models

type TravelTimeRequest struct {
	Coords []Location `json:"coords"`
}
