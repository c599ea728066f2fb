package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// swaggerInstance is the swag registry name the docs UI reads the contract from.
const swaggerInstance = "pedidofacil"

//go:embed openapi.yaml
var openAPIContract []byte

var registerSwagger sync.Once

// LoadOpenAPI parses and validates the embedded API contract.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIContract)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi contract: %w", err)
	}

	// requests are matched by path only, whatever host serves them
	doc.Servers = nil
	return doc, nil
}

// RequestValidator rejects requests that do not match the contract with a 400 response.
// Paths absent from the contract pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				// health, metrics and docs routes are not part of the contract
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(validationErr),
				})
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("Invalid parameter %s: %s", requestErr.Parameter.Name, flatten(requestErr.Err))
		}
		if requestErr.RequestBody != nil {
			return "Invalid request body: " + flatten(requestErr.Err)
		}
	}
	return flatten(err)
}

func flatten(err error) string {
	if err == nil {
		return ""
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return strings.Join(pointer, ".") + ": " + schemaErr.Reason
		}
		return schemaErr.Reason
	}
	return strings.Join(strings.Fields(err.Error()), " ")
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger publishes doc to the swag registry once per process.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi contract: %w", err)
	}

	registerSwagger.Do(func() {
		swag.Register(swaggerInstance, swaggerDoc{json: string(raw)})
	})
	return nil
}
