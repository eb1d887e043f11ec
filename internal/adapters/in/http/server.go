package http

import (
	"errors"
	"net/http"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/generated/servers"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler    commands.CreateCourierCommandHandler
	setCourierStatusHandler commands.SetCourierStatusCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	updateSessionHandler    commands.UpdateSessionStatusCommandHandler
	assignSessionHandler    commands.AssignSessionCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	submitRatingHandler     commands.SubmitDeliveryRatingCommandHandler

	// Query handlers
	getAllCouriersHandler   queries.GetAllCouriersQueryHandler
	getOrderSessionsHandler queries.GetOrderSessionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	setCourierStatusHandler commands.SetCourierStatusCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateSessionHandler commands.UpdateSessionStatusCommandHandler,
	assignSessionHandler commands.AssignSessionCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	submitRatingHandler commands.SubmitDeliveryRatingCommandHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getOrderSessionsHandler queries.GetOrderSessionsQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:    createCourierHandler,
		setCourierStatusHandler: setCourierStatusHandler,
		placeOrderHandler:       placeOrderHandler,
		updateSessionHandler:    updateSessionHandler,
		assignSessionHandler:    assignSessionHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		submitRatingHandler:     submitRatingHandler,
		getAllCouriersHandler:   getAllCouriersHandler,
		getOrderSessionsHandler: getOrderSessionsHandler,
	}
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve couriers")
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:                c.ID.Bytes(),
			Name:              c.Name,
			Status:            c.Status,
			Rating:            c.Rating,
			TotalAssigned:     c.TotalAssigned,
			TotalRatingsCount: c.TotalRatingsCount,
			LastAssignedAt:    c.LastAssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
// Couriers start off shift and have to be activated explicitly.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(newCourier.Name)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetCourierStatus handles POST /api/v1/couriers/{courierId}/status - puts a
// courier on or off shift.
func (s *Server) SetCourierStatus(ctx echo.Context, courierId openapi_types.UUID) error {
	var body servers.CourierStatus
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid courier id")
	}

	status, err := courier.StatusFromString(string(body.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewSetCourierStatusCommand(courierID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if handleErr := s.setCourierStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - checks out a batch of items as one
// session of pending orders sharing a fresh batch key.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var checkout servers.Checkout
	if err := ctx.Bind(&checkout); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if len(checkout.Items) == 0 {
		return errorJSON(ctx, http.StatusBadRequest, "At least one item is required")
	}

	customerID, err := kernel.UUIDFromBytes(checkout.CustomerId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}
	canteenID, err := kernel.UUIDFromBytes(checkout.CanteenId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid canteen id")
	}

	sessionTs := time.Now().UnixMilli()

	items := make([]commands.PlaceOrderItem, 0, len(checkout.Items))
	for _, item := range checkout.Items {
		method, methodErr := order.MethodFromString(string(item.Method))
		if methodErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid method: "+methodErr.Error())
		}

		address := ""
		if item.Address != nil {
			address = *item.Address
		}

		items = append(items, commands.PlaceOrderItem{
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			TotalAmount: item.TotalAmount,
			Method:      method,
			Address:     address,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, canteenID, sessionTs, items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.CheckoutResult{
		SessionTs:  sessionTs,
		OrderCount: len(checkout.Items),
	})
}

// GetOrderSessions handles GET /api/v1/canteens/{canteenId}/sessions -
// retrieves the canteen's checkout sessions, most recent first.
func (s *Server) GetOrderSessions(ctx echo.Context, canteenId openapi_types.UUID) error {
	canteenID, err := kernel.UUIDFromBytes(canteenId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid canteen id")
	}

	query, err := queries.NewGetOrderSessionsQuery(canteenID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	sessions, err := s.getOrderSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve sessions")
	}

	response := make([]servers.OrderSession, len(sessions))
	for i, session := range sessions {
		response[i] = servers.OrderSession{
			SessionTs:     session.SessionTs,
			ItemCount:     session.ItemCount,
			TotalAmount:   session.TotalAmount,
			Status:        session.Status,
			CourierName:   session.CourierName,
			CourierRating: session.CourierRating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateSessionStatus handles POST /api/v1/canteens/{canteenId}/sessions/{sessionTs}/status -
// advances a whole session through the kitchen workflow.
func (s *Server) UpdateSessionStatus(ctx echo.Context, canteenId openapi_types.UUID, sessionTs int64) error {
	var body servers.SessionStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	canteenID, err := kernel.UUIDFromBytes(canteenId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid canteen id")
	}

	status, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateSessionStatusCommand(canteenID, sessionTs, status)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	affected, err := s.updateSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SessionStatusResult{
		AffectedCount: affected,
	})
}

// AssignSession handles POST /api/v1/canteens/{canteenId}/sessions/{sessionTs}/assign -
// assigns one courier to all ready delivery orders of the session.
func (s *Server) AssignSession(ctx echo.Context, canteenId openapi_types.UUID, sessionTs int64) error {
	canteenID, err := kernel.UUIDFromBytes(canteenId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid canteen id")
	}

	cmd, err := commands.NewAssignSessionCommand(canteenID, sessionTs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
	}

	result, err := s.assignSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AssignmentResult{
		CourierId:     result.CourierID.Bytes(),
		CourierName:   result.CourierName,
		CourierRating: result.CourierRating,
		AffectedCount: result.AffectedCount,
	})
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/delivered - marks a
// delivery order as handed over to the customer.
func (s *Server) CompleteDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDeliveryRating handles POST /api/v1/orders/{orderId}/rating - rates
// the courier of a delivered order. One rating per order.
func (s *Server) SubmitDeliveryRating(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RatingSubmission
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	cmd, err := commands.NewSubmitDeliveryRatingCommand(orderID, customerID, body.Rating)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rating data: "+err.Error())
	}

	if handleErr := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainErrorJSON maps use-case errors to HTTP statuses. Conflicting repeats
// are 409, state that makes the operation impossible is 422, bad input is 400,
// missing objects are 404.
func domainErrorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrRatingNotOwner):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrSessionAlreadyAssigned),
		errors.Is(err, commands.ErrRatingAlreadySubmitted):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrNoEligibleOrders),
		errors.Is(err, commands.ErrNoOrdersToUpdate),
		errors.Is(err, commands.ErrStatusNotSettable),
		errors.Is(err, commands.ErrRatingWrongMethod),
		errors.Is(err, commands.ErrRatingNotYetDelivered),
		errors.Is(err, commands.ErrRatingMissingAssignment),
		errors.Is(err, commands.ErrDeliveryMissingAssignment),
		errors.Is(err, services.ErrNoActiveCouriers):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
