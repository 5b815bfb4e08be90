package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server exposes the decision engines over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	processOrdersHandler commands.ProcessOrdersCommandHandler
	fulfillOrderHandler  commands.FulfillOrderCommandHandler

	// Query handlers
	getUnprocessedOrdersHandler queries.GetUnprocessedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	fulfillOrderHandler commands.FulfillOrderCommandHandler,
	getUnprocessedOrdersHandler queries.GetUnprocessedOrdersQueryHandler,
) *Server {
	return &Server{
		processOrdersHandler:        processOrdersHandler,
		fulfillOrderHandler:         fulfillOrderHandler,
		getUnprocessedOrdersHandler: getUnprocessedOrdersHandler,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.POST("/api/v1/owners/:owner_id/orders/process", s.ProcessOrders)
	e.GET("/api/v1/owners/:owner_id/orders/unprocessed", s.GetUnprocessedOrders)
	e.POST("/api/v1/shipments/:order_id/process", s.FulfillOrder)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// ProcessOrders handles POST /api/v1/owners/:owner_id/orders/process - runs
// the type-dispatch engine over the owner's orders.
func (s *Server) ProcessOrders(ctx echo.Context) error {
	ownerID, err := strconv.ParseInt(ctx.Param("owner_id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid owner id",
		})
	}

	cmd, err := commands.NewProcessOrdersCommand(ownerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	processed, err := s.processOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process orders",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"processed": processed})
}

// GetUnprocessedOrders handles GET /api/v1/owners/:owner_id/orders/unprocessed -
// lists the owner's orders still awaiting the engine.
func (s *Server) GetUnprocessedOrders(ctx echo.Context) error {
	ownerID, err := strconv.ParseInt(ctx.Param("owner_id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid owner id",
		})
	}

	query, err := queries.NewGetUnprocessedOrdersQuery(ownerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orders, err := s.getUnprocessedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// FulfillOrder handles POST /api/v1/shipments/:order_id/process - runs one
// status-dispatch step for the given order on behalf of the user_id query
// parameter.
func (s *Server) FulfillOrder(ctx echo.Context) error {
	// Malformed ids become zero values and fail the command's own contract
	// check, so both kinds of bad input surface as the same 400.
	orderID, _ := strconv.ParseInt(ctx.Param("order_id"), 10, 64)
	userID, _ := strconv.ParseInt(ctx.QueryParam("user_id"), 10, 64)

	cmd, err := commands.NewFulfillOrderCommand(orderID, userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	outcome, err := s.fulfillOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrUnauthorizedOrderAccess) {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process order",
		})
	}

	return ctx.JSON(http.StatusOK, outcome)
}
