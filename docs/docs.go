// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/api/villages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["villages"],
                "summary": "List villages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.VillageResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/villages/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["villages"],
                "summary": "Get village",
                "parameters": [{"type": "string", "description": "Village ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.VillageResponse"}},
                    "400": {"description": "Malformed village id", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Concurrent update, retry", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/villages/{id}/resources": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["villages"],
                "summary": "Get village resources",
                "parameters": [{"type": "string", "description": "Village ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.VillageResourcesResponse"}},
                    "400": {"description": "Malformed village id", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Concurrent update, retry", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/villages/{id}/rename": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["villages"],
                "summary": "Rename village",
                "parameters": [
                    {"type": "string", "description": "Village ID", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RenameVillageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.VillageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/tribes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tribes"],
                "summary": "List tribes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Tribe"}}}
                }
            }
        },
        "/api/tribes/select": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "One-time tribe choice; founds the capital village at a random free tile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tribes"],
                "summary": "Select tribe",
                "parameters": [{"description": "Tribe choice", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SelectTribeRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.VillageResponse"}},
                    "400": {"description": "Invalid request or tribe already chosen", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Unknown tribe", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CurrentUserResponse"}}}
            }
        },
        "/api/users/player": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Player summary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PlayerResponse"}}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Build information",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}}
            }
        }
    },
    "definitions": {
        "domain.CurrentUserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.PlayerResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "has_villages": {"type": "boolean"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "tribe_id": {"type": "integer"}
            }
        },
        "domain.Tribe": {
            "type": "object",
            "properties": {
                "clay_bonus": {"type": "integer"},
                "color_hex": {"type": "string"},
                "crop_bonus": {"type": "integer"},
                "description": {"type": "string"},
                "icon_name": {"type": "string"},
                "id": {"type": "integer"},
                "iron_bonus": {"type": "integer"},
                "name": {"type": "string"},
                "wood_bonus": {"type": "integer"}
            }
        },
        "domain.VillageResourcesResponse": {
            "type": "object",
            "properties": {
                "clay": {"type": "integer"},
                "crop": {"type": "integer"},
                "iron": {"type": "integer"},
                "last_resource_update": {"type": "string"},
                "wood": {"type": "integer"}
            }
        },
        "domain.VillageResponse": {
            "type": "object",
            "properties": {
                "clay": {"type": "integer"},
                "clay_production": {"type": "integer"},
                "coordinate_x": {"type": "integer"},
                "coordinate_y": {"type": "integer"},
                "crop": {"type": "integer"},
                "crop_production": {"type": "integer"},
                "granary_capacity": {"type": "integer"},
                "id": {"type": "string"},
                "iron": {"type": "integer"},
                "iron_production": {"type": "integer"},
                "is_capital": {"type": "boolean"},
                "last_resource_update": {"type": "string"},
                "name": {"type": "string"},
                "population": {"type": "integer"},
                "population_limit": {"type": "integer"},
                "tribe_id": {"type": "integer"},
                "tribe_name": {"type": "string"},
                "warehouse_capacity": {"type": "integer"},
                "wood": {"type": "integer"},
                "wood_production": {"type": "integer"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "status": {"type": "string"}}
        },
        "handler.RenameVillageRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 400}}
        },
        "handler.SelectTribeRequest": {
            "type": "object",
            "required": ["tribe_id"],
            "properties": {"tribe_id": {"type": "integer", "minimum": 1}}
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "build_time": {"type": "string"},
                "git_commit": {"type": "string"},
                "go_version": {"type": "string"},
                "version": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Alion API",
	Description:      "Backend of the Alion browser strategy game: villages, tribes and lazily accrued resources.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
