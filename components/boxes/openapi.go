package boxes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const openAPIOperationID = "getBoxesByWarehouse"

// OpenAPIDocument describes the lookup endpoint mounted at pattern. The
// document is validated before it is returned.
func OpenAPIDocument(pattern string, opts Options) (*openapi3.T, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	if pattern == "" {
		pattern = opts.RoutePath
	}

	box := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("disabled", openapi3.NewBoolSchema())
	box.Required = []string{"id", "label", "disabled"}

	body := openapi3.NewObjectSchema().
		WithProperty("boxes", openapi3.NewArraySchema().WithItems(box))
	body.Required = []string{"boxes"}

	param := openapi3.NewQueryParameter(opts.Param).
		WithDescription("Warehouse whose boxes are listed. Empty yields an empty list.").
		WithSchema(openapi3.NewStringSchema())

	op := openapi3.NewOperation()
	op.OperationID = openAPIOperationID
	op.Summary = "List the boxes of a warehouse"
	op.Tags = []string{"storage"}
	op.AddParameter(param)
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Boxes ordered by number; occupied boxes are disabled.").
		WithJSONSchema(body))
	op.AddResponse(http.StatusMethodNotAllowed, openapi3.NewResponse().
		WithDescription("Only GET and HEAD are supported."))
	op.AddResponse(http.StatusInternalServerError, openapi3.NewResponse().
		WithDescription("The inventory could not be read."))
	op.AddResponse(0, openapi3.NewResponse().
		WithDescription("Guard rejection or other unexpected error."))

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "Storage box lookup",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}
	doc.AddOperation(pattern, http.MethodGet, op)

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("boxes: invalid openapi document: %w", err)
	}
	return doc, nil
}
