package http

// Request and response shapes for the HTTP API. Identifiers travel as UUID
// strings; coordinates as decimal degrees.

// SubmitParcelRequest is the body of POST /api/v1/parcels.
type SubmitParcelRequest struct {
	CustomerID        string  `json:"customer_id"`
	CompanyID         string  `json:"company_id"`
	PickupAddress     string  `json:"pickup_address"`
	DeliveryAddress   string  `json:"delivery_address"`
	PickupLatitude    float64 `json:"pickup_latitude"`
	PickupLongitude   float64 `json:"pickup_longitude"`
	DeliveryLatitude  float64 `json:"delivery_latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	Length            float64 `json:"length"`
}

// ParcelDecisionRequest is the body of the accept/reject endpoints.
type ParcelDecisionRequest struct {
	CompanyID string `json:"company_id"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	CompanyID   string   `json:"company_id"`
	DriverID    string   `json:"driver_id"`
	VehicleID   string   `json:"vehicle_id"`
	WarehouseID string   `json:"warehouse_id"`
	ParcelIDs   []string `json:"parcel_ids"`
}

// UpdateShipmentStatusRequest is the body of PATCH /api/v1/shipments/:id/status.
// DriverID is set when the actor is a driver; staff leave it empty.
type UpdateShipmentStatusRequest struct {
	CompanyID string `json:"company_id"`
	DriverID  string `json:"driver_id,omitempty"`
	Status    string `json:"status"`
}

// CreateVehicleRequest is the body of POST /api/v1/vehicles.
type CreateVehicleRequest struct {
	CompanyID     string  `json:"company_id"`
	WarehouseID   string  `json:"warehouse_id,omitempty"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	MaxWeight     float64 `json:"max_weight"`
	MaxVolume     float64 `json:"max_volume"`
}

// ParcelResponse represents a parcel in API responses.
type ParcelResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	Status          string  `json:"status"`
	Weight          float64 `json:"weight"`
	Volume          float64 `json:"volume"`
	QuotedPrice     float64 `json:"quoted_price"`
	PickupAddress   string  `json:"pickup_address"`
	DeliveryAddress string  `json:"delivery_address"`
	WarehouseID     *string `json:"warehouse_id,omitempty"`
	ShipmentID      *string `json:"shipment_id,omitempty"`
}

// SubmitParcelResponse is the body returned by parcel submission.
type SubmitParcelResponse struct {
	Parcel  ParcelResponse `json:"parcel"`
	Message string         `json:"message"`
}

// AcceptParcelResponse is the body returned by parcel acceptance.
type AcceptParcelResponse struct {
	Parcel       ParcelResponse `json:"parcel"`
	AutoAssigned bool           `json:"auto_assigned"`
	Message      string         `json:"message"`
}

// ShipmentResponse represents a shipment in API responses.
type ShipmentResponse struct {
	ID          string  `json:"id"`
	DriverID    string  `json:"driver_id"`
	VehicleID   string  `json:"vehicle_id"`
	WarehouseID string  `json:"warehouse_id"`
	Status      string  `json:"status"`
	TotalWeight float64 `json:"total_weight"`
	TotalVolume float64 `json:"total_volume"`
	ParcelCount int     `json:"parcel_count"`
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID            string  `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	MaxWeight     float64 `json:"max_weight"`
	MaxVolume     float64 `json:"max_volume"`
	WarehouseID   *string `json:"warehouse_id,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
