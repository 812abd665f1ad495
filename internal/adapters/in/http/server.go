package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
//
// Two mappings here are deliberate. A claim that loses the race maps to
// 409 so couriers see "just taken" rather than a failure. An unauthorized
// lifecycle action maps to 404, the same shape as a missing order, so a
// courier probing ids cannot distinguish "exists but not yours" from
// "does not exist".
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	claimOrderHandler   commands.ClaimOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler

	// Query handlers
	availableOrdersHandler     queries.AvailableOrdersQueryHandler
	courierActiveOrdersHandler queries.CourierActiveOrdersQueryHandler
	customerOrdersHandler      queries.CustomerOrdersQueryHandler
	ordersInRangeHandler       queries.OrdersInRangeQueryHandler
	orderHistoryHandler        queries.OrderHistoryQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	availableOrdersHandler queries.AvailableOrdersQueryHandler,
	courierActiveOrdersHandler queries.CourierActiveOrdersQueryHandler,
	customerOrdersHandler queries.CustomerOrdersQueryHandler,
	ordersInRangeHandler queries.OrdersInRangeQueryHandler,
	orderHistoryHandler queries.OrderHistoryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		advanceOrderHandler:        advanceOrderHandler,
		availableOrdersHandler:     availableOrdersHandler,
		courierActiveOrdersHandler: courierActiveOrdersHandler,
		customerOrdersHandler:      customerOrdersHandler,
		ordersInRangeHandler:       ordersInRangeHandler,
		orderHistoryHandler:        orderHistoryHandler,
		logger:                     logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Every
// /api/v1 route runs behind the principal middleware; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", PrincipalMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/range", s.GetOrdersInRange)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.GET("/orders/:id/history", s.GetOrderHistory)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order for the
// calling customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok, err := requireRole(ctx, kernel.Principal.IsCustomer)
	if !ok {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := buildCreateOrderCommand(principal.ActorID(), req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:         result.OrderID.Int64(),
		TrackingID: result.TrackingID.String(),
	})
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - the calling courier
// attempts to take ownership of a pending order.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	principal, ok, err := requireRole(ctx, kernel.Principal.IsCourier)
	if !ok {
		return err
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, principal.ActorID())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid claim: " + err.Error(),
		})
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if s.acceptDegraded(orderID, err) {
			return ctx.NoContent(http.StatusNoContent)
		}
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - the owning courier
// moves the order to the next lifecycle status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	principal, ok, err := requireRole(ctx, kernel.Principal.IsCourier)
	if !ok {
		return err
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req AdvanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + req.Target,
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, principal.ActorID(), target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition request: " + err.Error(),
		})
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if s.acceptDegraded(orderID, err) {
			return ctx.NoContent(http.StatusNoContent)
		}
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available - the claimable
// pool, oldest first.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	_, ok, err := requireRole(ctx, kernel.Principal.IsCourier)
	if !ok {
		return err
	}

	pool, err := s.availableOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewAvailableOrdersQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]AvailableOrder, len(pool))
	for i, o := range pool {
		response[i] = AvailableOrder{
			ID:           o.ID,
			TrackingID:   o.TrackingID.String(),
			PickupStreet: o.PickupStreet,
			PickupCity:   o.PickupCity,
			Pieces:       o.Pieces,
			WeightKg:     o.WeightKg,
			WindowFrom:   o.WindowFrom,
			WindowTo:     o.WindowTo,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - the calling courier's
// claimed, undelivered orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	principal, ok, err := requireRole(ctx, kernel.Principal.IsCourier)
	if !ok {
		return err
	}

	query, err := queries.NewCourierActiveOrdersQuery(principal.ActorID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	jobs, err := s.courierActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ActiveOrder, len(jobs))
	for i, o := range jobs {
		response[i] = ActiveOrder{
			ID:            o.ID,
			TrackingID:    o.TrackingID.String(),
			Status:        o.Status,
			PickupStreet:  o.PickupStreet,
			PickupCity:    o.PickupCity,
			DropoffStreet: o.DropoffStreet,
			DropoffCity:   o.DropoffCity,
			ContactName:   o.ContactName,
			ContactPhone:  o.ContactPhone,
			Pieces:        o.Pieces,
			WeightKg:      o.WeightKg,
			WindowFrom:    o.WindowFrom,
			WindowTo:      o.WindowTo,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/v1/orders - one page of the calling
// customer's orders, newest first. The page query parameter defaults to 1.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	principal, ok, err := requireRole(ctx, kernel.Principal.IsCustomer)
	if !ok {
		return err
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid page parameter",
			})
		}
	}

	query, err := queries.NewCustomerOrdersQuery(principal.ActorID(), page)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid page parameter",
		})
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]CustomerOrder, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrder{
			ID:            o.ID,
			TrackingID:    o.TrackingID.String(),
			Status:        o.Status,
			PickupStreet:  o.PickupStreet,
			PickupCity:    o.PickupCity,
			DropoffStreet: o.DropoffStreet,
			DropoffCity:   o.DropoffCity,
			Pieces:        o.Pieces,
			WeightKg:      o.WeightKg,
			WindowFrom:    o.WindowFrom,
			WindowTo:      o.WindowTo,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersInRange handles GET /api/v1/orders/range - the admin listing of
// orders created within [from, to).
func (s *Server) GetOrdersInRange(ctx echo.Context) error {
	_, ok, err := requireRole(ctx, kernel.Principal.IsAdmin)
	if !ok {
		return err
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid from parameter, expected RFC3339 timestamp",
		})
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid to parameter, expected RFC3339 timestamp",
		})
	}

	query, err := queries.NewOrdersInRangeQuery(from, to)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid range: " + err.Error(),
		})
	}

	orders, err := s.ordersInRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]AdminOrder, len(orders))
	for i, o := range orders {
		response[i] = AdminOrder{
			ID:         o.ID,
			TrackingID: o.TrackingID.String(),
			CustomerID: o.CustomerID,
			CourierID:  o.CourierID,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - the admin view
// of one order's recorded lifecycle.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	_, ok, err := requireRole(ctx, kernel.Principal.IsAdmin)
	if !ok {
		return err
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewOrderHistoryQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	entries, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = HistoryEntry{
			Status:     e.Status,
			ChangedBy:  e.ChangedBy,
			RecordedAt: e.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// acceptDegraded reports whether err is a failed ledger append behind an
// already committed state change. The change stands, so the request still
// succeeds; the gap is logged and left for the reconciliation sweep.
func (s *Server) acceptDegraded(orderID kernel.OrderID, err error) bool {
	if !errors.Is(err, errs.ErrLedgerWriteFailed) {
		return false
	}

	s.logger.Warn("ledger append failed, transition committed",
		"order_id", orderID.Int64(),
		"error", err)

	return true
}

// writeError maps application errors onto HTTP responses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAlreadyClaimed):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order was just taken",
		})
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStoreUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.Error("request failed", "error", err)

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// buildCreateOrderCommand assembles the value objects for order creation
// from the raw request body.
func buildCreateOrderCommand(
	customerID kernel.ActorID,
	req CreateOrderRequest,
) (commands.CreateOrderCommand, error) {
	pickup, err := kernel.NewAddress(req.PickupStreet, req.PickupCity)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	dropoff, err := kernel.NewAddress(req.DropoffStreet, req.DropoffCity)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	contact, err := kernel.NewContact(req.ContactName, req.ContactPhone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	window, err := kernel.NewWindow(req.WindowFrom, req.WindowTo)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		customerID,
		pickup,
		dropoff,
		contact,
		req.Pieces,
		req.WeightKg,
		window,
	)
}

// orderIDParam parses the :id path parameter.
func orderIDParam(ctx echo.Context) (kernel.OrderID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	orderID := kernel.OrderID(raw)
	if err = orderID.Validate(); err != nil {
		return 0, err
	}

	return orderID, nil
}
