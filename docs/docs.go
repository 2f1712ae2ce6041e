// Package docs registers the Swagger document for the JSON API.
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
        "/api/search-templates": {
            "post": {
                "description": "Forwards the company profile to the search backend once and returns its templates in backend order.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Search website templates",
                "parameters": [
                    {
                        "description": "Company profile",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.CompanyProfile"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TemplateResults"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the template search backend is reachable.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend health",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
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
        "model.CompanyProfile": {
            "type": "object",
            "required": ["name", "industry"],
            "properties": {
                "description": {"type": "string"},
                "industry": {"type": "string"},
                "name": {"type": "string"},
                "target_audience": {"type": "string"}
            }
        },
        "model.Template": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.TemplateResults": {
            "type": "object",
            "properties": {
                "templates": {"type": "array", "items": {"$ref": "#/definitions/model.Template"}}
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
	Title:            "Template Finder API",
	Description:      "Company profile search for matching website templates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
