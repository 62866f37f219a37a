// Package http exposes the shop's use cases over a JSON API.
// Handlers translate requests into commands and queries and map the
// business error taxonomy onto HTTP status codes; no business rule lives here.
package http

import (
	"errors"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerMemberHandler commands.RegisterMemberCommandHandler
	updateMemberHandler   commands.UpdateMemberCommandHandler
	createItemHandler     commands.CreateItemCommandHandler
	updateItemHandler     commands.UpdateItemCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	findOrdersHandler    queries.FindOrdersQueryHandler
	getAllMembersHandler queries.GetAllMembersQueryHandler
	getAllItemsHandler   queries.GetAllItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerMemberHandler commands.RegisterMemberCommandHandler,
	updateMemberHandler commands.UpdateMemberCommandHandler,
	createItemHandler commands.CreateItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	findOrdersHandler queries.FindOrdersQueryHandler,
	getAllMembersHandler queries.GetAllMembersQueryHandler,
	getAllItemsHandler queries.GetAllItemsQueryHandler,
) *Server {
	return &Server{
		registerMemberHandler: registerMemberHandler,
		updateMemberHandler:   updateMemberHandler,
		createItemHandler:     createItemHandler,
		updateItemHandler:     updateItemHandler,
		placeOrderHandler:     placeOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		findOrdersHandler:     findOrdersHandler,
		getAllMembersHandler:  getAllMembersHandler,
		getAllItemsHandler:    getAllItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/members", s.RegisterMember)
	api.PUT("/members/:memberId", s.UpdateMember)
	api.GET("/members", s.GetMembers)

	api.POST("/items", s.CreateItem)
	api.PUT("/items/:itemId", s.UpdateItem)
	api.GET("/items", s.GetItems)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders", s.GetOrders)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMemberRequest is the body of POST /api/v1/members.
type NewMemberRequest struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// UpdateMemberRequest is the body of PUT /api/v1/members/:memberId.
type UpdateMemberRequest struct {
	Name string `json:"name"`
}

// NewItemRequest is the body of POST /api/v1/items. Kind selects the variant;
// only the attribute fields belonging to that kind are read.
type NewItemRequest struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Artist        string `json:"artist,omitempty"`
	Director      string `json:"director,omitempty"`
	Actor         string `json:"actor,omitempty"`
}

// UpdateItemRequest is the body of PUT /api/v1/items/:itemId.
type UpdateItemRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	MemberID string `json:"memberId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// CreatedResponse carries the identity assigned to a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Member is the JSON shape of one member in GET /api/v1/members.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// Item is the JSON shape of one catalog item in GET /api/v1/items.
type Item struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
}

// Order is the JSON shape of one order in GET /api/v1/orders.
type Order struct {
	ID         string `json:"id"`
	MemberName string `json:"memberName"`
	Status     string `json:"status"`
	OrderDate  string `json:"orderDate"`
	TotalPrice int    `json:"totalPrice"`
}

// RegisterMember handles POST /api/v1/members - registers a new member.
func (s *Server) RegisterMember(ctx echo.Context) error {
	var req NewMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(req.Street, req.City, req.ZipCode)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMemberCommand(memberID, req.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.registerMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: memberID.String()})
}

// UpdateMember handles PUT /api/v1/members/:memberId - renames a member.
func (s *Server) UpdateMember(ctx echo.Context) error {
	memberID, err := kernel.UUIDFromString(ctx.Param("memberId"))
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	var req UpdateMemberRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMemberCommand(memberID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.updateMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMembers handles GET /api/v1/members - retrieves all members.
func (s *Server) GetMembers(ctx echo.Context) error {
	members, err := s.getAllMembersHandler.Handle(ctx.Request().Context(), queries.NewGetAllMembersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve members")
	}

	response := make([]Member, len(members))
	for i, m := range members {
		response[i] = Member{
			ID:      m.ID.String(),
			Name:    m.Name,
			Street:  m.Address.Street(),
			City:    m.Address.City(),
			ZipCode: m.Address.ZipCode(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/v1/items - adds a new item to the catalog.
func (s *Server) CreateItem(ctx echo.Context) error {
	var req NewItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := item.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid item kind: "+req.Kind)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, kind, req.Name, req.Price, req.StockQuantity, item.Attributes{
		Author:   req.Author,
		ISBN:     req.ISBN,
		Artist:   req.Artist,
		Director: req.Director,
		Actor:    req.Actor,
	})
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.createItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.String()})
}

// UpdateItem handles PUT /api/v1/items/:itemId - overwrites name and price.
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var req UpdateItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, req.Name, req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.updateItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItems handles GET /api/v1/items - retrieves the catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.getAllItemsHandler.Handle(ctx.Request().Context(), queries.NewGetAllItemsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve items")
	}

	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = Item{
			ID:            it.ID.String(),
			Kind:          it.Kind.String(),
			Name:          it.Name,
			Price:         it.Price,
			StockQuantity: it.StockQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromString(req.MemberID)
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	cmd, err := commands.NewPlaceOrderCommand(memberID, itemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().String()})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - searches orders.
// Both query parameters are optional: memberName filters by the ordering
// member's name, status by order status (Placed or Cancelled).
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order status: "+raw)
		}
		status = parsed
	}

	query, err := queries.NewFindOrdersQuery(ctx.QueryParam("memberName"), status)
	if err != nil {
		return badRequest(ctx, "Invalid order filter: "+err.Error())
	}

	orders, err := s.findOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:         o.OrderID.String(),
			MemberName: o.MemberName,
			Status:     o.Status.String(),
			OrderDate:  o.OrderDate.Format("2006-01-02T15:04:05Z07:00"),
			TotalPrice: o.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// businessError maps the business error taxonomy onto HTTP status codes:
// missing aggregates are 404, business rule rejections and write conflicts
// are 409, anything else is 500.
func businessError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrMemberAlreadyExists),
		errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, order.ErrOrderAlreadyCancelled),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
