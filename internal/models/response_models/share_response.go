package response_models

type ShareResponse struct {
	ShareID   string `json:"share_id"`
	IsPublic  bool   `json:"is_public"`
	PublicURL string `json:"public_url,omitempty"`
}

type PublicTripResponse struct {
	Trip  TripResponse   `json:"trip"`
	Stops []StopResponse `json:"stops"`
}

type CopyTripResponse struct {
	NewTripID string `json:"new_trip_id"`
}
