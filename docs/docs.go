// Package docs holds the OpenAPI document served at /swagger. It is kept in
// sync with the handler annotations by hand; paths are relative to BasePath,
// which the server sets to its API prefix.
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
                "tags": ["meta"],
                "summary": "API name and version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.rootInfo"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Constant health payload",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.statusPayload"}}
                }
            }
        },
        "/portfolio/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio headline figures",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PortfolioStats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/portfolio/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "List client case studies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Client"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Create a client case study",
                "parameters": [
                    {"description": "Client", "name": "client", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Client"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Client"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/portfolio/init": {
            "post": {
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Seed the demonstration clients once",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SeedResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/portfolio/images": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload a portfolio image",
                "parameters": [
                    {"type": "file", "description": "Image file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Image"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/portfolio/images/{name}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["images"],
                "summary": "Download a portfolio image",
                "parameters": [
                    {"type": "string", "description": "Generated file name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "List contact submissions, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ContactSubmission"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {"description": "Contact form", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ContactSubmissionCreate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ContactSubmission"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "handler.rootInfo": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "handler.statusPayload": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "model.Client": {
            "type": "object",
            "required": ["description", "display_name", "metrics", "name", "period"],
            "properties": {
                "analytics_images": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "display_name": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "metrics": {"type": "array", "items": {"$ref": "#/definitions/model.ProjectMetric"}},
                "name": {"type": "string"},
                "period": {"type": "string"},
                "project_type": {"type": "string"},
                "testimonial": {"type": "string"},
                "testimonial_author": {"type": "string"}
            }
        },
        "model.ContactSubmission": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "model.ContactSubmissionCreate": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {
                "email": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "model.Image": {
            "type": "object",
            "properties": {
                "content_type": {"type": "string"},
                "key": {"type": "string"},
                "size": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "model.PortfolioStats": {
            "type": "object",
            "properties": {
                "experience_years": {"type": "integer"},
                "success_rate": {"type": "string"},
                "total_clients": {"type": "integer"},
                "total_reach": {"type": "string"}
            }
        },
        "model.ProjectMetric": {
            "type": "object",
            "required": ["metric_name", "value"],
            "properties": {
                "description": {"type": "string"},
                "metric_name": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "service.SeedResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Tomiwa Portfolio API",
	Description:      "Portfolio content and contact form backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
