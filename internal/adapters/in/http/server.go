package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pedidofacil/internal/core/application/usecases/commands"
	"pedidofacil/internal/core/application/usecases/queries"
	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/core/domain/model/order"
	"pedidofacil/internal/core/ports"
	"pedidofacil/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Use case ports consumed by the server. The application handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
		HandleItems(ctx context.Context, query queries.GetOrderQuery) ([]queries.ItemResponse, error)
	}

	SummaryHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersSummaryQuery) (queries.GetOrdersSummaryQueryResponse, error)
	}

	// OrderRecorder receives successful writes for metrics.
	OrderRecorder interface {
		RecordOrderCreated(items int, value decimal.Decimal)
		RecordOrderUpdated(items int, value decimal.Decimal)
		RecordOrderDeleted()
	}
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler CreateOrderHandler
	updateOrderHandler UpdateOrderHandler
	deleteOrderHandler DeleteOrderHandler

	// Query handlers
	listOrdersHandler ListOrdersHandler
	getOrderHandler   GetOrderHandler
	summaryHandler    SummaryHandler

	recorder OrderRecorder
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderHandler UpdateOrderHandler,
	deleteOrderHandler DeleteOrderHandler,
	listOrdersHandler ListOrdersHandler,
	getOrderHandler GetOrderHandler,
	summaryHandler SummaryHandler,
	recorder OrderRecorder,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		getOrderHandler:    getOrderHandler,
		summaryHandler:     summaryHandler,
		recorder:           recorder,
	}
}

// ListPedidos handles GET /api/pedidos - lists orders, optionally filtered.
func (s *Server) ListPedidos(ctx echo.Context, params ListPedidosParams) error {
	filter, err := toFilter(params)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	query, err := queries.NewGetAllOrdersQuery(filter)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePedido handles POST /api/pedidos - creates an order with its items.
func (s *Server) CreatePedido(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	lines, err := toLines(body.Produtos)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	cmd, err := commands.NewCreateOrderCommand(body.NomeComprador, body.NomeFornecedor, lines)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	s.recorder.RecordOrderCreated(created.TotalItems(), created.TotalValue().Decimal())
	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// GetPedidosResumo handles GET /api/pedidos/resumo - store-wide totals.
func (s *Server) GetPedidosResumo(ctx echo.Context) error {
	summary, err := s.summaryHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersSummaryQuery())
	if err != nil {
		return writeError(ctx, err, "Failed to compute summary")
	}

	return ctx.JSON(http.StatusOK, Summary{
		TotalPedidos:           summary.TotalOrders,
		TotalProdutosComprados: summary.TotalItems,
		ValorTotalComprado:     NewAmount(summary.TotalValue),
	})
}

// GetPedido handles GET /api/pedidos/{id} - one order with its items.
func (s *Server) GetPedido(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdatePedido handles PUT /api/pedidos/{id} - overwrites an order and replaces its items.
func (s *Server) UpdatePedido(ctx echo.Context, id int64) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	lines, err := toLines(body.Produtos)
	if err != nil {
		return writeError(ctx, err, "Failed to update order")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.NomeComprador, body.NomeFornecedor, lines)
	if err != nil {
		return writeError(ctx, err, "Failed to update order")
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to update order")
	}

	s.recorder.RecordOrderUpdated(updated.TotalItems(), updated.TotalValue().Decimal())
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// DeletePedido handles DELETE /api/pedidos/{id}.
func (s *Server) DeletePedido(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err, "Failed to delete order")
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to delete order")
	}

	s.recorder.RecordOrderDeleted()
	return ctx.NoContent(http.StatusNoContent)
}

// ListPedidoProdutos handles GET /api/pedidos/{id}/produtos - the items of one order.
func (s *Server) ListPedidoProdutos(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve items")
	}

	items, err := s.getOrderHandler.HandleItems(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve items")
	}

	return ctx.JSON(http.StatusOK, toItems(items))
}

func toFilter(params ListPedidosParams) (ports.OrderFilter, error) {
	filter := ports.OrderFilter{}
	if params.Comprador != nil {
		filter.Buyer = *params.Comprador
	}
	if params.Fornecedor != nil {
		filter.Supplier = *params.Fornecedor
	}

	var err error
	if filter.MinTotal, err = parseBound("valorMin", params.ValorMin); err != nil {
		return ports.OrderFilter{}, err
	}
	if filter.MaxTotal, err = parseBound("valorMax", params.ValorMax); err != nil {
		return ports.OrderFilter{}, err
	}
	return filter, nil
}

func parseBound(name string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &value, nil
}

func toLines(items []NewItem) ([]commands.OrderLine, error) {
	lines := make([]commands.OrderLine, 0, len(items))
	for idx, item := range items {
		value, err := kernel.NewMoney(item.ValorTotalProduto.Decimal())
		if err != nil {
			return nil, fmt.Errorf("produtos[%d].valorTotalProduto: %w", idx, err)
		}
		lines = append(lines, commands.OrderLine{
			Name:     item.NomeProduto,
			Quantity: item.QuantidadeComprada,
			Value:    value,
		})
	}
	return lines, nil
}

func toOrder(view queries.OrderResponse) Order {
	return Order{
		Id:                     view.ID,
		NomeComprador:          view.Buyer,
		NomeFornecedor:         view.Supplier,
		ValorTotalComprado:     NewAmount(view.TotalValue.Decimal()),
		TotalProdutosComprados: view.TotalItems,
		Produtos:               toItems(view.Items),
	}
}

func toItems(items []queries.ItemResponse) []Item {
	response := make([]Item, 0, len(items))
	for _, item := range items {
		response = append(response, Item{
			Id:                 item.ID,
			NomeProduto:        item.Name,
			QuantidadeComprada: item.Quantity,
			ValorTotalProduto:  NewAmount(item.Value.Decimal()),
		})
	}
	return response
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// writeError maps validation errors to 400, missing orders to 404 and anything else to 500.
// Store failures are logged and answered with fallback so internals do not leak.
func writeError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: strings.ReplaceAll(err.Error(), "\n", "; "),
		})
	case errs.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		ctx.Logger().Errorf("%s: %v", fallback, err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
