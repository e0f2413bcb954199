// Package docs registers the OpenAPI description of the postboard HTTP API with swag.
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
        "/api/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Current page state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Reload the post list from upstream",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}},
                    "303": {"description": "See Other"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/posts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Create the demo post and prepend it to the list",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}},
                    "303": {"description": "See Other"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/posts/{id}/view": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Select a post and load its comments",
                "parameters": [{"type": "integer", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}},
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/posts/{id}/update": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Apply the demo update to a post",
                "parameters": [{"type": "integer", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}},
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/posts/{id}/delete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Delete a post and drop it from the list",
                "parameters": [{"type": "integer", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.State"}},
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "controller.State": {
            "type": "object",
            "properties": {
                "posts": {"type": "array", "items": {"$ref": "#/definitions/model.Post"}},
                "selected": {"$ref": "#/definitions/model.Post"},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/model.Comment"}},
                "lastError": {"type": "string"},
                "notice": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.Comment": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "postId": {"type": "integer"}
            }
        },
        "model.Post": {
            "type": "object",
            "properties": {
                "body": {"type": "string"},
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "userId": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Postboard API",
	Description:      "Page state and actions over an upstream posts API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
