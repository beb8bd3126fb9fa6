// Package servers holds the HTTP contract of the logistics API: the embedded
// OpenAPI document, the request and response models, and the echo bindings
// that decode path and query parameters before calling a ServerInterface.
//
// types.go and server.go are generated from openapi.yaml; edit the document
// and run go generate. Validation tags come from x-oapi-codegen-extra-tags.
// spec.go embeds the document as is and is maintained by hand.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=server.cfg.yaml openapi.yaml
