package gen

//go:generate go tool oapi-codegen -config oapi-codegen.yml ../../../../../api/openapi.yaml
