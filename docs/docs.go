// Package docs contiene la documentación OpenAPI de la API de StockPro.
// Se regenera con `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Iniciar sesión", "responses": {"200": {"description": "OK"}, "401": {"description": "Credenciales inválidas"}}}
        },
        "/api/auth/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Cerrar sesión", "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Usuario de la sesión", "responses": {"200": {"description": "OK"}}}
        },
        "/api/products": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Listar productos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Crear producto", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/products/low-stock": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Productos con stock bajo", "responses": {"200": {"description": "OK"}}}
        },
        "/api/products/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Categorías del catálogo visible", "responses": {"200": {"description": "OK"}}}
        },
        "/api/products/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Obtener producto por ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Actualizar producto", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Eliminar producto", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/movements": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["movements"], "summary": "Listar movimientos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["movements"], "summary": "Registrar movimiento", "responses": {"201": {"description": "Created"}}}
        },
        "/api/movements/entry": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["movements"], "summary": "Registrar entrada", "responses": {"201": {"description": "Created"}}}
        },
        "/api/movements/exit": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["movements"], "summary": "Registrar salida", "responses": {"201": {"description": "Created"}}}
        },
        "/api/movements/reasons": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["movements"], "summary": "Catálogo de motivos", "responses": {"200": {"description": "OK"}}}
        },
        "/api/dashboard/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Resumen del inventario", "responses": {"200": {"description": "OK"}}}
        },
        "/api/reports/movements": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Reporte de movimientos", "responses": {"200": {"description": "OK"}}}
        },
        "/api/reports/movements/export": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Exportar reporte de movimientos", "parameters": [{"enum": ["pdf", "csv"], "type": "string", "name": "format", "in": "query"}], "responses": {"200": {"description": "Archivo"}}}
        },
        "/api/stock/reconcile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["stock"], "summary": "Reconciliar stock con el ledger", "parameters": [{"type": "boolean", "name": "fix", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/stock/replenishment": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["stock"], "summary": "Lista de reposición", "responses": {"200": {"description": "OK"}}}
        },
        "/api/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Listar usuarios", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Crear usuario", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/users/{username}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Actualizar usuario", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Eliminar usuario", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Token JWT con el prefijo Bearer",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo contiene la información exportada de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "StockPro API",
	Description:      "Control de inventario multiusuario: productos, movimientos, dashboard y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
