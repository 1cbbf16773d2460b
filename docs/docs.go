// Package docs registers the Swagger document served under /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Welcome message",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/prospect/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prospecting"],
                "summary": "Start a prospect search",
                "parameters": [
                    {
                        "description": "service and geo filter",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.SearchResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}
                    }
                }
            }
        },
        "/prospect/sets/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prospecting"],
                "summary": "Get a prospect set",
                "parameters": [
                    {
                        "type": "string",
                        "description": "prospect set id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.ProspectSet"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.GeoRequest": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "radiusMiles": {"type": "integer", "example": 15},
                "state": {"type": "string"},
                "zip": {"type": "string", "example": "20878"}
            }
        },
        "handler.SearchRequest": {
            "type": "object",
            "properties": {
                "geo": {"$ref": "#/definitions/handler.GeoRequest"},
                "service": {"type": "string", "example": "plumbing"}
            }
        },
        "handler.SearchResponse": {
            "type": "object",
            "properties": {
                "prospectSetId": {"type": "string", "example": "set_1a2b3c4d"},
                "count": {"type": "integer", "example": 5}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/schema.FieldError"}
                }
            }
        },
        "schema.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "models.Lead": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "models.ProspectSet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "service": {"type": "string"},
                "geo": {"type": "object", "additionalProperties": {"type": "string"}},
                "created_at": {"type": "number"},
                "leads": {"type": "array", "items": {"$ref": "#/definitions/models.Lead"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Seekan Prospector API",
	Description:      "Search-and-retrieve API for prospect sets of mocked business leads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
