// Package http is the inbound HTTP adapter. It translates echo requests into
// application commands and queries and maps domain failures onto status codes.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitParcelHandler         commands.SubmitParcelCommandHandler
	acceptParcelHandler         commands.AcceptParcelCommandHandler
	rejectParcelHandler         commands.RejectParcelCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler
	createVehicleHandler        commands.CreateVehicleCommandHandler

	// Query handlers
	getCompanyParcelsHandler  queries.GetCompanyParcelsQueryHandler
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitParcelHandler commands.SubmitParcelCommandHandler,
	acceptParcelHandler commands.AcceptParcelCommandHandler,
	rejectParcelHandler commands.RejectParcelCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	getCompanyParcelsHandler queries.GetCompanyParcelsQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
) *Server {
	return &Server{
		submitParcelHandler:         submitParcelHandler,
		acceptParcelHandler:         acceptParcelHandler,
		rejectParcelHandler:         rejectParcelHandler,
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		createVehicleHandler:        createVehicleHandler,
		getCompanyParcelsHandler:    getCompanyParcelsHandler,
		getActiveShipmentsHandler:   getActiveShipmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.SubmitParcel)
	api.GET("/parcels", s.GetCompanyParcels)
	api.POST("/parcels/:id/accept", s.AcceptParcel)
	api.POST("/parcels/:id/reject", s.RejectParcel)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)

	api.POST("/vehicles", s.CreateVehicle)

	e.GET("/health", s.Health)
}

// SubmitParcel handles POST /api/v1/parcels - registers a customer's parcel.
func (s *Server) SubmitParcel(ctx echo.Context) error {
	var req SubmitParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}
	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	pickup, err := kernel.NewGeoPoint(req.PickupLatitude, req.PickupLongitude)
	if err != nil {
		return badRequest(ctx, "Invalid pickup coordinates")
	}
	delivery, err := kernel.NewGeoPoint(req.DeliveryLatitude, req.DeliveryLongitude)
	if err != nil {
		return badRequest(ctx, "Invalid delivery coordinates")
	}

	cmd, err := commands.NewSubmitParcelCommand(
		kernel.NewUUID(), customerID, companyID,
		req.PickupAddress, req.DeliveryAddress,
		pickup, delivery,
		req.Weight, req.Height, req.Width, req.Length,
	)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	result, err := s.submitParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitParcelResponse{
		Parcel:  toParcelResponse(result.Parcel),
		Message: result.Message,
	})
}

// AcceptParcel handles POST /api/v1/parcels/:id/accept - accepts a pending
// parcel, routes it to the nearest warehouse, and tries to place it on a
// shipment.
func (s *Server) AcceptParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var req ParcelDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	cmd, err := commands.NewAcceptParcelCommand(parcelID, companyID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.acceptParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AcceptParcelResponse{
		Parcel:       toParcelResponse(result.Parcel),
		AutoAssigned: result.AutoAssigned,
		Message:      result.Message,
	})
}

// RejectParcel handles POST /api/v1/parcels/:id/reject - rejects a pending parcel.
func (s *Server) RejectParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var req ParcelDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	cmd, err := commands.NewRejectParcelCommand(parcelID, companyID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rejected, err := s.rejectParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(rejected))
}

// CreateShipment handles POST /api/v1/shipments - composes a shipment manually.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id")
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle_id")
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse_id")
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid parcel id: "+raw)
		}
		parcelIDs = append(parcelIDs, id)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), companyID, driverID, vehicleID, warehouseID, parcelIDs,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status - advances
// a shipment through its lifecycle.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	var driverID *kernel.UUID
	if req.DriverID != "" {
		id, idErr := kernel.UUIDFromString(req.DriverID)
		if idErr != nil {
			return badRequest(ctx, "Invalid driver_id")
		}
		driverID = &id
	}

	newStatus, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, companyID, driverID, newStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(updated))
}

// CreateVehicle handles POST /api/v1/vehicles - registers a fleet vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	var warehouseID *kernel.UUID
	if req.WarehouseID != "" {
		id, idErr := kernel.UUIDFromString(req.WarehouseID)
		if idErr != nil {
			return badRequest(ctx, "Invalid warehouse_id")
		}
		warehouseID = &id
	}

	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), companyID, warehouseID,
		req.VehicleNumber, req.VehicleType,
		req.MaxWeight, req.MaxVolume,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	created, err := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toVehicleResponse(created))
}

// GetCompanyParcels handles GET /api/v1/parcels - lists a company's parcels.
func (s *Server) GetCompanyParcels(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("company_id"))
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	query, err := queries.NewGetCompanyParcelsQuery(companyID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	parcels, err := s.getCompanyParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:              p.ID.String(),
			CustomerID:      p.CustomerID.String(),
			Status:          p.Status,
			Weight:          p.Weight,
			Volume:          p.Volume,
			QuotedPrice:     p.QuotedPrice,
			PickupAddress:   p.PickupAddress,
			DeliveryAddress: p.DeliveryAddress,
			WarehouseID:     optionalString(p.WarehouseID),
			ShipmentID:      optionalString(p.ShipmentID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveShipments handles GET /api/v1/shipments/active - lists a company's
// non-completed shipments.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.QueryParam("company_id"))
	if err != nil {
		return badRequest(ctx, "Invalid company_id")
	}

	query, err := queries.NewGetActiveShipmentsQuery(companyID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shipments, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = ShipmentResponse{
			ID:          sh.ID.String(),
			DriverID:    sh.DriverID.String(),
			VehicleID:   sh.VehicleID.String(),
			WarehouseID: sh.WarehouseID.String(),
			Status:      sh.Status,
			TotalWeight: sh.TotalWeight,
			TotalVolume: sh.TotalVolume,
			ParcelCount: sh.ParcelCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// fail maps domain and application errors onto HTTP status codes.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrDriverNotFound),
		errors.Is(err, commands.ErrVehicleNotFound),
		errors.Is(err, commands.ErrWarehouseNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrNoWarehouseAvailable),
		errors.Is(err, commands.ErrDriverBusy),
		errors.Is(err, commands.ErrParcelsUnavailable),
		errors.Is(err, vehicle.ErrCapacityExceeded),
		errors.Is(err, vehicle.ErrInsufficientCapacity):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, vehicle.ErrUnknownVehicleType),
		errors.Is(err, vehicle.ErrCapacityMismatch):
		return respond(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return respond(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func toParcelResponse(p *parcel.Parcel) ParcelResponse {
	resp := ParcelResponse{
		ID:              p.ID().String(),
		CustomerID:      p.CustomerID().String(),
		Status:          p.Status().String(),
		Weight:          p.Weight(),
		Volume:          p.Volume(),
		QuotedPrice:     p.QuotedPrice(),
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
	}

	if id := p.WarehouseID(); id != nil {
		value := id.String()
		resp.WarehouseID = &value
	}
	if id := p.ShipmentID(); id != nil {
		value := id.String()
		resp.ShipmentID = &value
	}

	return resp
}

func toShipmentResponse(sh *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:          sh.ID().String(),
		DriverID:    sh.DriverID().String(),
		VehicleID:   sh.VehicleID().String(),
		WarehouseID: sh.WarehouseID().String(),
		Status:      sh.Status().String(),
		TotalWeight: sh.TotalWeight(),
		TotalVolume: sh.TotalVolume(),
		ParcelCount: len(sh.ParcelIDs()),
	}
}

func toVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:            v.ID().String(),
		VehicleNumber: v.VehicleNumber(),
		VehicleType:   v.VehicleType(),
		MaxWeight:     v.MaxWeight(),
		MaxVolume:     v.MaxVolume(),
	}

	if id := v.WarehouseID(); id != nil {
		value := id.String()
		resp.WarehouseID = &value
	}

	return resp
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}
