package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// DocInstance is the swag registry name the Swagger UI reads the API document from.
const DocInstance = "stowage"

var registerDoc sync.Once

// apiDoc hands the embedded OpenAPI document to swag.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// RequestValidator rejects requests that do not match spec with a 400 error
// body. Requests for paths spec does not describe pass through untouched.
func (s *Server) RequestValidator(spec *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    &openapi3filter.Options{},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return s.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
			}
			return next(c)
		}
	}, nil
}

// SwaggerHandler serves Swagger UI with spec as its document (GET /swagger/doc.json).
func SwaggerHandler(spec *openapi3.T) (echo.HandlerFunc, error) {
	doc, err := spec.MarshalJSON()
	if err != nil {
		return nil, err
	}

	registerDoc.Do(func() {
		swag.Register(DocInstance, apiDoc{json: string(doc)})
	})
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(DocInstance)), nil
}
