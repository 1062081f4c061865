package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meddrone/internal/core/application/usecases/commands"
	"meddrone/internal/core/application/usecases/queries"
	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

// parseUUID parses a client-supplied identifier, reporting failures as
// invalid-value errors so they surface as 400 rather than 500.
func parseUUID(paramName, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	assignDroneHandler    commands.AssignDroneCommandHandler
	advanceStatusHandler  commands.AdvanceDeliveryStatusCommandHandler
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler
	createDroneHandler    commands.CreateDroneCommandHandler
	updateDroneHandler    commands.UpdateDroneCommandHandler
	deleteDroneHandler    commands.DeleteDroneCommandHandler

	// Query handlers
	getDeliveriesHandler queries.GetDeliveriesQueryHandler
	getDeliveryHandler   queries.GetDeliveryQueryHandler
	getAllDronesHandler  queries.GetAllDronesQueryHandler
	getDroneHandler      queries.GetDroneQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDroneHandler commands.AssignDroneCommandHandler,
	advanceStatusHandler commands.AdvanceDeliveryStatusCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	createDroneHandler commands.CreateDroneCommandHandler,
	updateDroneHandler commands.UpdateDroneCommandHandler,
	deleteDroneHandler commands.DeleteDroneCommandHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getAllDronesHandler queries.GetAllDronesQueryHandler,
	getDroneHandler queries.GetDroneQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler: createDeliveryHandler,
		assignDroneHandler:    assignDroneHandler,
		advanceStatusHandler:  advanceStatusHandler,
		cancelDeliveryHandler: cancelDeliveryHandler,
		createDroneHandler:    createDroneHandler,
		updateDroneHandler:    updateDroneHandler,
		deleteDroneHandler:    deleteDroneHandler,
		getDeliveriesHandler:  getDeliveriesHandler,
		getDeliveryHandler:    getDeliveryHandler,
		getAllDronesHandler:   getAllDronesHandler,
		getDroneHandler:       getDroneHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
// Everything under /api requires a valid bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)

	api := e.Group("/api", AuthMiddleware(jwtSecret))

	api.POST("/deliveries", s.CreateDelivery, RequireRoles(kernel.RoleUser, kernel.RoleAdmin))
	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.PATCH("/deliveries/:id/assign", s.AssignDrone, RequireRoles(kernel.RoleOperator, kernel.RoleAdmin))
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus, RequireRoles(kernel.RoleOperator, kernel.RoleAdmin))
	api.DELETE("/deliveries/:id", s.CancelDelivery)

	admin := api.Group("/admin", RequireRoles(kernel.RoleAdmin))
	admin.GET("/drones", s.GetDrones)
	admin.POST("/drones", s.CreateDrone)
	admin.PUT("/drones/:id", s.UpdateDrone)
	admin.DELETE("/drones/:id", s.DeleteDrone)
}

// respondWithDelivery reads the delivery back through the query side
// and writes it as the response body. Mutation endpoints return the
// updated representation, not just a status.
func (s *Server) respondWithDelivery(ctx echo.Context, viewer kernel.Identity,
	deliveryID kernel.UUID, status int) error {
	query, err := queries.NewGetDeliveryQuery(deliveryID, viewer)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, deliveryFromReadModel(found))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/deliveries. The requester is the
// authenticated caller.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	hospitalID, err := parseUUID("hospitalId", req.HospitalID)
	if err != nil {
		return writeError(ctx, err)
	}
	villageID, err := parseUUID("villageId", req.VillageID)
	if err != nil {
		return writeError(ctx, err)
	}
	medicineTypeID, err := parseUUID("medicineTypeId", req.MedicineTypeID)
	if err != nil {
		return writeError(ctx, err)
	}

	priority := delivery.PriorityNormal
	if req.Priority != "" {
		priority, err = delivery.PriorityFromString(req.Priority)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, hospitalID, villageID,
		medicineTypeID, identity.UserID(), priority, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDelivery(ctx, identity, deliveryID, http.StatusCreated)
}

// GetDeliveries handles GET /api/deliveries. The result set is scoped
// by the caller's role.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesQuery(identity)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = deliveryFromReadModel(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID, identity)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromReadModel(found))
}

// AssignDrone handles PATCH /api/deliveries/:id/assign. The caller
// becomes the delivery's operator.
func (s *Server) AssignDrone(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDroneCommand(deliveryID, identity.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDelivery(ctx, identity, deliveryID, http.StatusOK)
}

// UpdateDeliveryStatus handles PATCH /api/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDelivery(ctx, identity, deliveryID, http.StatusOK)
}

// CancelDelivery handles DELETE /api/deliveries/:id. Ownership is
// enforced by the command handler.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, identity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDelivery(ctx, identity, deliveryID, http.StatusOK)
}

// GetDrones handles GET /api/admin/drones.
func (s *Server) GetDrones(ctx echo.Context) error {
	query := queries.NewGetAllDronesQuery()

	drones, err := s.getAllDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DroneResponse, len(drones))
	for i, d := range drones {
		response[i] = droneFromReadModel(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDrone handles POST /api/admin/drones. A drone registered
// without a battery level starts fully charged.
func (s *Server) CreateDrone(ctx echo.Context) error {
	var req CreateDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	batteryLevel := 100
	if req.BatteryLevel != nil {
		batteryLevel = *req.BatteryLevel
	}

	droneID := kernel.NewUUID()

	cmd, err := commands.NewCreateDroneCommand(droneID, req.Name, req.Model,
		batteryLevel, req.MaxPayloadKg, req.MaxRangeKm)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: droneID.String()})
}

// respondWithDrone reads the drone back through the query side and
// writes it as the response body.
func (s *Server) respondWithDrone(ctx echo.Context, droneID kernel.UUID, status int) error {
	query, err := queries.NewGetDroneQuery(droneID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getDroneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, droneFromReadModel(found))
}

// UpdateDrone handles PUT /api/admin/drones/:id. Only the fields
// present in the body change; this is the path that grounds a drone
// for maintenance or charging and returns it to the pool.
func (s *Server) UpdateDrone(ctx echo.Context) error {
	droneID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var status *drone.Status
	if req.Status != nil {
		parsed, err := drone.StatusFromString(*req.Status)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateDroneCommand(droneID, req.Name, req.Model,
		status, req.BatteryLevel, req.MaxPayloadKg, req.MaxRangeKm)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDrone(ctx, droneID, http.StatusOK)
}

// DeleteDrone handles DELETE /api/admin/drones/:id. A drone out on a
// delivery cannot be removed.
func (s *Server) DeleteDrone(ctx echo.Context) error {
	droneID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDroneCommand(droneID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteDroneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
