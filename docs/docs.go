// Package docs registers the OpenAPI description of the /api/v1 surface
// served at /swagger. Keep it in step with the @Router annotations in
// internal/api/controller; `swag init -g cmd/alfred/main.go` regenerates it.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register",
                "parameters": [
                    {"description": "new user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "email taken", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.LoginResponse"}},
                    "401": {"description": "invalid credentials", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/chat": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat with Alfred",
                "parameters": [
                    {"description": "message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.ChatResponse"}},
                    "409": {"description": "a previous message is still being processed", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/chat/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat transcript",
                "parameters": [
                    {"type": "integer", "description": "max messages (50)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Transaction"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "description": "INCOME, EXPENSE or INVESTMENT", "name": "type", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, inclusive", "name": "end_date", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transaction"],
                "summary": "Create transaction",
                "parameters": [
                    {"description": "transaction", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateTransactionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/transactions/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Transaction"],
                "summary": "Transaction summary",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, inclusive", "name": "end_date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/transactions/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transaction"],
                "summary": "Update transaction",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.UpdateTransactionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Transaction"],
                "summary": "Delete transaction",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "List tasks",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Create task",
                "parameters": [
                    {"description": "task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Task"],
                "summary": "Complete task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/tasks/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Task"],
                "summary": "Delete task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/lists": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["List"],
                "summary": "Lists with items",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["List"],
                "summary": "Create list",
                "parameters": [
                    {"description": "list name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.NameRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/lists/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["List"],
                "summary": "Delete list and its items",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/lists/{id}/items": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["List"],
                "summary": "Add list item",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "item name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.NameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "list not found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/lists/{id}/items/{itemId}/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["List"],
                "summary": "Toggle list item",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "itemId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/lists/{id}/items/{itemId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["List"],
                "summary": "Delete list item",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "itemId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Project"],
                "summary": "List projects with progress",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["Project"],
                "summary": "Create project",
                "parameters": [
                    {"description": "project", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateProjectRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/projects/{id}/contribute": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["Project"],
                "summary": "Add to saved amount",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "amount", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.ContributeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/projects/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Project"],
                "summary": "Delete project",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "description": "0 ok, -1 error"},
                "msg": {"type": "string"},
                "data": {}
            }
        },
        "controller.RegisterRequest": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "controller.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controller.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "controller.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string", "maxLength": 2000}
            }
        },
        "controller.ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "action": {"type": "object", "description": "{type, payload}; type is ADD_TRANSACTION, ADD_TASK, ADD_LIST_ITEM, ADD_PROJECT or NONE"},
                "dispatched": {"type": "boolean"},
                "clarification": {"type": "string"},
                "entity": {"type": "object"}
            }
        },
        "controller.RecurrenceRequest": {
            "type": "object",
            "properties": {
                "period": {"type": "string", "enum": ["DAILY", "WEEKLY", "MONTHLY", "YEARLY"]},
                "interval": {"type": "integer", "minimum": 1},
                "limit": {"type": "integer", "minimum": 1}
            }
        },
        "controller.CreateTransactionRequest": {
            "type": "object",
            "required": ["description", "amount", "type", "date"],
            "properties": {
                "description": {"type": "string"},
                "amount": {"type": "string", "example": "42.50"},
                "type": {"type": "string", "enum": ["INCOME", "EXPENSE", "INVESTMENT"]},
                "category": {"type": "string"},
                "date": {"type": "string", "example": "2026-10-19"},
                "recurrence": {"$ref": "#/definitions/controller.RecurrenceRequest"}
            }
        },
        "controller.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "amount": {"type": "string"},
                "type": {"type": "string", "enum": ["INCOME", "EXPENSE", "INVESTMENT"]},
                "category": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "controller.CreateTaskRequest": {
            "type": "object",
            "required": ["title", "date"],
            "properties": {
                "title": {"type": "string"},
                "date": {"type": "string", "example": "2026-10-20"},
                "time": {"type": "string", "example": "14:30"},
                "priority": {"type": "string", "enum": ["LOW", "MEDIUM", "HIGH"]},
                "recurrence": {"$ref": "#/definitions/controller.RecurrenceRequest"}
            }
        },
        "controller.NameRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "controller.CreateProjectRequest": {
            "type": "object",
            "required": ["title", "target_amount"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "target_amount": {"type": "string", "example": "5000"},
                "category": {"type": "string", "enum": ["GOAL", "RESERVE", "ASSET"]},
                "deadline": {"type": "string", "example": "2027-06-30"}
            }
        },
        "controller.ContributeRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "string", "example": "250"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "\"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds the exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Alfred API",
	Description:      "Finance and task backend with a chat assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
