package http

import (
	"errors"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers. The surrounding platform authenticates the request and
// forwards the resolved identity; this adapter only reads the headers.
const (
	HeaderUserID = "X-User-ID"
	HeaderAdmin  = "X-Admin"
)

// Server exposes the shop use cases over HTTP.
// It coordinates between echo handlers and application commands and queries.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addCartLineHandler       commands.AddCartLineCommandHandler
	removeCartLineHandler    commands.RemoveCartLineCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler
	getAdminStatisticsHandler queries.GetAdminStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addCartLineHandler commands.AddCartLineCommandHandler,
	removeCartLineHandler commands.RemoveCartLineCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler,
	getAdminStatisticsHandler queries.GetAdminStatisticsQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		confirmOrderHandler:      confirmOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addCartLineHandler:       addCartLineHandler,
		removeCartLineHandler:    removeCartLineHandler,

		getOrderHandler:           getOrderHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderStatisticsHandler: getOrderStatisticsHandler,
		getAdminStatisticsHandler: getAdminStatisticsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/cart/lines", s.AddCartLine)
	v1.DELETE("/cart/lines/:productId", s.RemoveCartLine)
	v1.POST("/checkout", s.Checkout)

	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/statistics", s.GetOrderStatistics)
	v1.GET("/orders/:humanId", s.GetOrder)
	v1.POST("/orders/:humanId/confirm", s.ConfirmOrder)
	v1.PATCH("/orders/:humanId/status", s.ChangeOrderStatus)

	v1.GET("/admin/orders/statistics", s.GetAdminStatistics)
}

// AddCartLine handles POST /api/v1/cart/lines - adds a product to the user's cart.
func (s *Server) AddCartLine(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var body AddCartLine
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewAddCartLineCommand(userID, productID, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart line data: "+err.Error())
	}

	if handleErr := s.addCartLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/cart/lines/:productId - removes a product
// from the user's cart.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewRemoveCartLineCommand(userID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid cart line data: "+err.Error())
	}

	if handleErr := s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - converts the user's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(userID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:    result.OrderID.String(),
		HumanID:    result.HumanID.String(),
		Status:     result.Status.String(),
		TotalPrice: result.TotalPrice.String(),
	})
}

// ConfirmOrder handles POST /api/v1/orders/:humanId/confirm - the owner moves
// a new order to pending.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	humanID, err := order.ParseHumanID(ctx.Param("humanId"))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(humanID, userID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:humanId/status - the privileged
// status change used by back-office tooling.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return forbidden(ctx)
	}

	humanID, err := order.ParseHumanID(ctx.Param("humanId"))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	var body ChangeOrderStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(humanID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change data: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:humanId - retrieves one order with its lines.
// Customers only see their own orders; admins see any.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	humanID, err := order.ParseHumanID(ctx.Param("humanId"))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(humanID, userID, isAdmin(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]OrderLine, len(found.Lines))
	for i, line := range found.Lines {
		lines[i] = OrderLine{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		OrderID:    found.OrderID.String(),
		HumanID:    found.HumanID,
		UserID:     found.UserID.String(),
		Status:     found.Status,
		TotalPrice: found.TotalPrice.String(),
		CreatedAt:  found.CreatedAt,
		UpdatedAt:  found.UpdatedAt,
		Lines:      lines,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves the user's order history,
// most recent first.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			HumanID:    o.HumanID,
			Status:     o.Status,
			TotalPrice: o.TotalPrice.String(),
			ItemCount:  o.ItemCount,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatistics handles GET /api/v1/orders/statistics - summarizes the
// user's own orders.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	query, err := queries.NewGetOrderStatisticsQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatistics{
		TotalOrders:       stats.TotalOrders,
		OrdersByStatus:    stats.OrdersByStatus,
		TotalSpent:        stats.TotalSpent.String(),
		AverageOrderValue: stats.AverageOrderValue.String(),
	})
}

// GetAdminStatistics handles GET /api/v1/admin/orders/statistics - summarizes
// all orders in the store.
func (s *Server) GetAdminStatistics(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return forbidden(ctx)
	}

	query, err := queries.NewGetAdminStatisticsQuery(time.Now())
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getAdminStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminStatistics{
		TotalOrders:    stats.TotalOrders,
		OrdersByStatus: stats.OrdersByStatus,
		OrdersToday:    stats.OrdersToday,
		Revenue:        stats.Revenue.String(),
	})
}

// requestUserID extracts the authenticated user from the identity header.
func requestUserID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + HeaderUserID + " header")
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, err
	}
	return userID, nil
}

// isAdmin reports whether the request carries the admin flag.
func isAdmin(ctx echo.Context) bool {
	return ctx.Request().Header.Get(HeaderAdmin) == "true"
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized: " + err.Error(),
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: "Forbidden",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps use case failures to HTTP statuses. Workflow failures that
// leave the system unchanged surface as conflicts, lookup misses as not found,
// and anything unrecognized as an internal error without leaking details.
func writeError(ctx echo.Context, err error) error {
	var unavailable *commands.ItemUnavailableError

	switch {
	case errors.As(err, &unavailable),
		errors.Is(err, cart.ErrCartIsEmpty),
		errors.Is(err, commands.ErrAllocationConflict),
		errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrNotOwner):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
