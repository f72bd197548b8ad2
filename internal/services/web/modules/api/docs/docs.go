// Package docs registers the OpenAPI document for the JSON API.
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
        "/seal": {
            "post": {
                "description": "Seals text and returns its hash and timestamp",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["seal"],
                "summary": "Seal text",
                "parameters": [
                    {"description": "Text to seal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sealapi.SealRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sealapi.SealResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/verify": {
            "post": {
                "description": "Reports whether text was sealed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["seal"],
                "summary": "Verify text",
                "parameters": [
                    {"description": "Text to verify", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sealapi.SealRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sealapi.VerifyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not sealed", "schema": {"$ref": "#/definitions/sealapi.VerifyResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/resolve": {
            "post": {
                "description": "Looks up a sealed record by hash",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["seal"],
                "summary": "Resolve hash",
                "parameters": [
                    {"description": "Hash to resolve", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sealapi.ResolveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sealapi.ResolveResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/sealapi.ResolveResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/resolve/{hash}": {
            "get": {
                "description": "Looks up a sealed record by hash",
                "produces": ["application/json"],
                "tags": ["seal"],
                "summary": "Resolve hash",
                "parameters": [
                    {"type": "string", "description": "Hex hash", "name": "hash", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sealapi.ResolveResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/sealapi.ResolveResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/list": {
            "get": {
                "description": "Lists every sealed record",
                "produces": ["application/json"],
                "tags": ["seal"],
                "summary": "List records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sealapi.ListResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "sealapi.SealRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "hash": {"type": "string"},
                "timestamp": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "sealapi.SealRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "sealapi.ResolveRequest": {
            "type": "object",
            "properties": {"hash": {"type": "string"}}
        },
        "sealapi.SealResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "hash": {"type": "string"},
                "timestamp": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "sealapi.VerifyResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "message": {"type": "string"},
                "record": {"$ref": "#/definitions/sealapi.SealRecord"}
            }
        },
        "sealapi.ResolveResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "message": {"type": "string"},
                "record": {"$ref": "#/definitions/sealapi.SealRecord"}
            }
        },
        "sealapi.ListResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/sealapi.SealRecord"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Crypto Seal API",
	Description:      "Same-origin JSON pass-through to the seal backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
