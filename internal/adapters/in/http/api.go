package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value on the wire. It is written as a JSON number with exactly two
// fraction digits and read from either a JSON number or a numeric string.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) Amount {
	return Amount{value: value}
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.value = decimal.Zero
		return nil
	}

	data = bytes.TrimSpace(bytes.Trim(data, `"`))
	value, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("amount %q is not a decimal number: %w", data, err)
	}
	a.value = value
	return nil
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Item is a line item as returned to clients.
type Item struct {
	Id                 int64  `json:"id"`
	NomeProduto        string `json:"nomeProduto"`
	QuantidadeComprada int    `json:"quantidadeComprada"`
	ValorTotalProduto  Amount `json:"valorTotalProduto"`
}

// Order is an order with its items as returned to clients.
type Order struct {
	Id                     int64  `json:"id"`
	NomeComprador          string `json:"nomeComprador"`
	NomeFornecedor         string `json:"nomeFornecedor"`
	ValorTotalComprado     Amount `json:"valorTotalComprado"`
	TotalProdutosComprados int    `json:"totalProdutosComprados"`
	Produtos               []Item `json:"produtos"`
}

// NewItem is a line item in a create or update request. Any id sent by the client is ignored.
type NewItem struct {
	NomeProduto        string `json:"nomeProduto"`
	QuantidadeComprada int    `json:"quantidadeComprada"`
	ValorTotalProduto  Amount `json:"valorTotalProduto"`
}

// NewOrder is the body of create and update requests. Totals sent by the client are ignored.
type NewOrder struct {
	NomeComprador  string    `json:"nomeComprador"`
	NomeFornecedor string    `json:"nomeFornecedor"`
	Produtos       []NewItem `json:"produtos"`
}

// Summary holds store-wide totals.
type Summary struct {
	TotalPedidos           int64  `json:"totalPedidos"`
	TotalProdutosComprados int64  `json:"totalProdutosComprados"`
	ValorTotalComprado     Amount `json:"valorTotalComprado"`
}

// ListPedidosParams are the optional filters of GET /api/pedidos.
type ListPedidosParams struct {
	Comprador  *string
	Fornecedor *string
	ValorMin   *string
	ValorMax   *string
}

// ServerInterface lists every order endpoint.
type ServerInterface interface {
	// (GET /api/pedidos)
	ListPedidos(ctx echo.Context, params ListPedidosParams) error
	// (POST /api/pedidos)
	CreatePedido(ctx echo.Context) error
	// (GET /api/pedidos/resumo)
	GetPedidosResumo(ctx echo.Context) error
	// (GET /api/pedidos/{id})
	GetPedido(ctx echo.Context, id int64) error
	// (PUT /api/pedidos/{id})
	UpdatePedido(ctx echo.Context, id int64) error
	// (DELETE /api/pedidos/{id})
	DeletePedido(ctx echo.Context, id int64) error
	// (GET /api/pedidos/{id}/produtos)
	ListPedidoProdutos(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListPedidos(ctx echo.Context) error {
	var params ListPedidosParams

	for name, dest := range map[string]**string{
		"comprador":  &params.Comprador,
		"fornecedor": &params.Fornecedor,
		"valorMin":   &params.ValorMin,
		"valorMax":   &params.ValorMax,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
			return badParameter(ctx, name, err)
		}
	}

	return w.Handler.ListPedidos(ctx, params)
}

func (w *ServerInterfaceWrapper) CreatePedido(ctx echo.Context) error {
	return w.Handler.CreatePedido(ctx)
}

func (w *ServerInterfaceWrapper) GetPedidosResumo(ctx echo.Context) error {
	return w.Handler.GetPedidosResumo(ctx)
}

func (w *ServerInterfaceWrapper) GetPedido(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return badParameter(ctx, "id", err)
	}
	return w.Handler.GetPedido(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdatePedido(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return badParameter(ctx, "id", err)
	}
	return w.Handler.UpdatePedido(ctx, id)
}

func (w *ServerInterfaceWrapper) DeletePedido(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return badParameter(ctx, "id", err)
	}
	return w.Handler.DeletePedido(ctx, id)
}

func (w *ServerInterfaceWrapper) ListPedidoProdutos(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return badParameter(ctx, "id", err)
	}
	return w.Handler.ListPedidoProdutos(ctx, id)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return id, err
}

func badParameter(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid format for parameter %s: %s", name, err),
	})
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every order route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/pedidos", wrapper.ListPedidos)
	router.POST("/api/pedidos", wrapper.CreatePedido)
	router.GET("/api/pedidos/resumo", wrapper.GetPedidosResumo)
	router.GET("/api/pedidos/:id", wrapper.GetPedido)
	router.PUT("/api/pedidos/:id", wrapper.UpdatePedido)
	router.DELETE("/api/pedidos/:id", wrapper.DeletePedido)
	router.GET("/api/pedidos/:id/produtos", wrapper.ListPedidoProdutos)
}
