package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves the items API documentation.
// - GET /swagger/index.html  -> Swagger UI page loading the document below
// - GET /swagger/doc.json    -> OpenAPI 3 document
func RegisterSwagger(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>shopping-list API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "shopping-list", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Item": { "type": "object", "required": ["id", "name"], "properties": { "id": { "type": "string", "pattern": "^[0-9a-f]{24}$" }, "name": { "type": "string" } } },
      "Error": { "type": "object", "properties": { "message": { "type": "string", "enum": ["Bad Request", "Not Found", "Internal Server Error"] } } }
    }
  },
  "paths": {
    "/items": {
      "get": { "summary": "List items in insertion order", "responses": { "200": { "description": "array of items" }, "500": { "description": "store failure" } } },
      "post": {
        "summary": "Create an item",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["name"], "properties": { "name": { "type": "string" } } } } } },
        "responses": { "201": { "description": "created item" }, "400": { "description": "empty body or invalid name" }, "500": { "description": "store failure" } }
      },
      "delete": { "summary": "Always rejected; the collection cannot be deleted", "responses": { "400": { "description": "bad request" } } }
    },
    "/items/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
      "put": {
        "summary": "Rename an item",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["id", "name"], "properties": { "id": { "type": "string" }, "name": { "type": "string" } } } } } },
        "responses": { "200": { "description": "updated item" }, "400": { "description": "bad body, id mismatch or malformed id" }, "404": { "description": "no such item" }, "500": { "description": "store failure" } }
      },
      "delete": { "summary": "Delete an item (idempotent)", "responses": { "200": { "description": "deletion result" }, "404": { "description": "malformed id" }, "500": { "description": "store failure" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
