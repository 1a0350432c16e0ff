package http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses and validates the embedded API description.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("openapi spec is invalid: %w", err)
	}
	return doc, nil
}

// RequestValidator rejects requests that do not match the API description before they
// reach a handler. Paths the description does not know, like /health, pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Any host may serve the API.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("error building openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) {
				return next(c)
			}
			if err != nil {
				return c.JSON(http.StatusMethodNotAllowed, Error{Code: http.StatusMethodNotAllowed, Message: err.Error()})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: validationMessage(err)})
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return err.Error()
}

type swaggerDoc struct {
	once sync.Once
	doc  string
}

// ReadDoc serves the API description as JSON for the swagger UI.
func (s *swaggerDoc) ReadDoc() string {
	s.once.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			s.doc = "{}"
			return
		}
		b, err := json.Marshal(doc)
		if err != nil {
			s.doc = "{}"
			return
		}
		s.doc = string(b)
	})
	return s.doc
}

var registerDoc sync.Once

// RegisterSwaggerDoc makes the description available to echo-swagger under swag.Name.
func RegisterSwaggerDoc() {
	registerDoc.Do(func() {
		swag.Register(swag.Name, &swaggerDoc{})
	})
}
