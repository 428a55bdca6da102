// Package swagger registers the API description served at /swagger.
package swagger

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
        "/regions": {
            "get": {
                "tags": ["buckets"],
                "summary": "List Regions",
                "produces": ["application/json"],
                "responses": {"200": {"description": "Regions", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/buckets": {
            "get": {
                "tags": ["buckets"],
                "summary": "List Buckets",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Buckets", "schema": {"type": "object", "additionalProperties": true}},
                    "502": {"description": "Backend Error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/buckets/{bucket}": {
            "get": {
                "tags": ["buckets"],
                "summary": "Bucket Existence",
                "parameters": [{"$ref": "#/parameters/bucket"}],
                "responses": {"200": {"description": "Existence", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "head": {
                "tags": ["buckets"],
                "summary": "Check Bucket",
                "parameters": [{"$ref": "#/parameters/bucket"}],
                "responses": {"200": {"description": "Exists"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["buckets"],
                "summary": "Create Bucket",
                "parameters": [
                    {"$ref": "#/parameters/bucket"},
                    {"type": "string", "description": "Region (backend default when empty)", "name": "region", "in": "query"}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Bucket Exists", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["buckets"],
                "summary": "Delete Bucket",
                "parameters": [{"$ref": "#/parameters/bucket"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Bucket Not Empty", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/buckets/{bucket}/objects": {
            "get": {
                "tags": ["objects"],
                "summary": "List Objects",
                "parameters": [{"$ref": "#/parameters/bucket"}],
                "responses": {"200": {"description": "Objects", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "delete": {
                "tags": ["objects"],
                "summary": "Delete Object",
                "parameters": [{"$ref": "#/parameters/bucket"}, {"$ref": "#/parameters/key"}],
                "responses": {"204": {"description": "Deleted"}, "400": {"description": "Missing Key", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/buckets/{bucket}/objects/exists": {
            "get": {
                "tags": ["objects"],
                "summary": "Object Existence",
                "parameters": [{"$ref": "#/parameters/bucket"}, {"$ref": "#/parameters/key"}],
                "responses": {"200": {"description": "Existence", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/buckets/{bucket}/objects/url": {
            "get": {
                "tags": ["objects"],
                "summary": "Presign Object",
                "description": "Expiry is taken from expires (RFC3339) or ttl (seconds), defaulting to one hour.",
                "parameters": [
                    {"$ref": "#/parameters/bucket"},
                    {"$ref": "#/parameters/key"},
                    {"type": "string", "description": "Absolute expiry (RFC3339)", "name": "expires", "in": "query"},
                    {"type": "integer", "description": "Lifetime in seconds", "name": "ttl", "in": "query"}
                ],
                "responses": {"200": {"description": "URL", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/buckets/{bucket}/upload": {
            "post": {
                "tags": ["transfer"],
                "summary": "Upload Object",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"$ref": "#/parameters/bucket"},
                    {"type": "string", "description": "Object key", "name": "key", "in": "query"},
                    {"type": "file", "description": "File to upload", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Uploaded"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/buckets/{bucket}/download": {
            "get": {
                "tags": ["transfer"],
                "summary": "Download Object",
                "produces": ["application/octet-stream"],
                "parameters": [{"$ref": "#/parameters/bucket"}, {"$ref": "#/parameters/key"}],
                "responses": {"200": {"description": "Object content", "schema": {"type": "file"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/buckets/{bucket}/cleanup": {
            "get": {
                "tags": ["cleanup"],
                "summary": "Plan Cleanup",
                "parameters": [{"$ref": "#/parameters/bucket"}, {"$ref": "#/parameters/before"}],
                "responses": {"200": {"description": "Plan", "schema": {"type": "object", "additionalProperties": true}}}
            },
            "post": {
                "tags": ["cleanup"],
                "summary": "Apply Cleanup",
                "parameters": [
                    {"$ref": "#/parameters/bucket"},
                    {"$ref": "#/parameters/before"},
                    {"type": "boolean", "description": "Plan only", "name": "dry_run", "in": "query"}
                ],
                "responses": {"200": {"description": "Result", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/transfers": {
            "get": {
                "tags": ["transfers"],
                "summary": "List Transfers",
                "parameters": [
                    {"type": "string", "name": "bucket", "in": "query"},
                    {"type": "string", "name": "direction", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "Transfers", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "parameters": {
        "bucket": {"type": "string", "description": "Bucket name", "name": "bucket", "in": "path", "required": true},
        "key": {"type": "string", "description": "Object key", "name": "key", "in": "query", "required": true},
        "before": {"type": "string", "description": "Cutoff (RFC3339), defaults to now", "name": "before", "in": "query"}
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "S3 Dropbox API",
	Description:      "HTTP facade over S3-compatible object storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
