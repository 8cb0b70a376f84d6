package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=server.cfg.yaml openapi.yaml

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document is loaded
// once; callers must not mutate it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading Swagger: %w", err)
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("invalid Swagger: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}
