package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 --config=oapi-codegen.yaml ../../../spec/openapi.yaml
