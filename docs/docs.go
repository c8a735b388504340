// Package docs registra a especificação OpenAPI servida em /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/products": {
            "get": {
                "tags": ["products"],
                "summary": "Lista o catálogo de produtos",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "boolean", "name": "active", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}
            }
        },
        "/v1/products/{id}": {
            "get": {
                "tags": ["products"],
                "summary": "Busca um produto pelo ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/v1/stock": {
            "get": {
                "tags": ["stock"],
                "summary": "Lista o estoque filtrado e ordenado",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "enum": ["all", "low", "out-of-stock"], "name": "status", "in": "query"},
                    {"type": "string", "enum": ["name", "stock", "status"], "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockView"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/v1/stock/{productId}": {
            "get": {
                "tags": ["stock"],
                "summary": "Posição atual de um produto",
                "parameters": [{"type": "string", "name": "productId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockView"}}}
            }
        },
        "/v1/stock/{productId}/threshold": {
            "put": {
                "tags": ["stock"],
                "summary": "Altera o limite mínimo",
                "parameters": [
                    {"type": "string", "name": "productId", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ThresholdUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/v1/stock/alerts": {
            "get": {
                "tags": ["stock"],
                "summary": "Produtos em falta ou abaixo do limite",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockAlertSummary"}}}
            }
        },
        "/v1/stock/inbound": {
            "post": {
                "tags": ["stock"],
                "summary": "Registra uma entrada de estoque",
                "parameters": [
                    {"type": "string", "name": "X-Actor", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.InboundRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.MovementResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/v1/stock/outbound": {
            "post": {
                "tags": ["stock"],
                "summary": "Registra uma saída de estoque",
                "parameters": [
                    {"type": "string", "name": "X-Actor", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.OutboundRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.MovementResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/v1/stock/transactions": {
            "get": {
                "tags": ["stock"],
                "summary": "Histórico recente de movimentações",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "product_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.TransactionRecord"}}}}
            }
        },
        "/v1/stock/transactions/export": {
            "get": {
                "tags": ["stock"],
                "summary": "Exporta o histórico em CSV",
                "produces": ["text/csv"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/stock/reasons": {
            "get": {
                "tags": ["stock"],
                "summary": "Motivos de saída sugeridos",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"}
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "name_en": {"type": "string"},
                "category": {"type": "string"},
                "unit_price": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.StockView": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "name_en": {"type": "string"},
                "category": {"type": "string"},
                "current_quantity": {"type": "integer"},
                "minimum_threshold": {"type": "integer"},
                "status": {"type": "string", "enum": ["normal", "low", "out-of-stock"]},
                "last_restocked_at": {"type": "string", "format": "date-time"},
                "version": {"type": "integer"}
            }
        },
        "domain.StockAlertSummary": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.StockView"}}
            }
        },
        "domain.TransactionRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "TXN001"},
                "timestamp": {"type": "string", "format": "date-time"},
                "direction": {"type": "string", "enum": ["inbound", "outbound"]},
                "product_id": {"type": "string"},
                "product_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "reason": {"type": "string"},
                "note": {"type": "string"},
                "actor": {"type": "string"}
            }
        },
        "domain.MovementResult": {
            "type": "object",
            "properties": {
                "stock": {"$ref": "#/definitions/domain.StockView"},
                "transaction": {"$ref": "#/definitions/domain.TransactionRecord"}
            }
        },
        "domain.InboundRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1},
                "occurred_at": {"type": "string", "example": "2024-03-01"},
                "note": {"type": "string"}
            }
        },
        "domain.OutboundRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1},
                "reason": {"type": "string", "example": "판매"},
                "note": {"type": "string"}
            }
        },
        "domain.ThresholdUpdateRequest": {
            "type": "object",
            "required": ["minimum_threshold"],
            "properties": {
                "minimum_threshold": {"type": "integer", "minimum": 0},
                "expected_version": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo contém as informações exportadas da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Stock Ledger API",
	Description:      "Ledger de estoque em memória: entradas, saídas, limites mínimos e histórico.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
