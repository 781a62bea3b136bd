// Package docs registers the OpenAPI description served at /swagger.
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
    "tags": [
        {"name": "Tasks", "description": "Task list operations"},
        {"name": "Board", "description": "Kanban columns and drag-and-drop"}
    ],
    "paths": {
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query", "description": "To Do | In Progress | Completed | All"},
                    {"type": "string", "name": "priority", "in": "query", "description": "Low | Medium | High | All"},
                    {"type": "string", "name": "sort", "in": "query", "description": "dueDate | status | priority"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskForm"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}}, "400": {"description": "Invalid task"}}
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get a task with its edit form",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Replace a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskForm"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}}, "404": {"description": "Task not found"}}
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/board": {
            "get": {"tags": ["Board"], "summary": "Kanban columns", "responses": {"200": {"description": "OK"}}}
        },
        "/board/move": {
            "post": {
                "tags": ["Board"],
                "summary": "Apply a drag-and-drop gesture",
                "parameters": [{"name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DropEvent"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown column"}}
            }
        },
        "/events": {
            "get": {"tags": ["Tasks"], "summary": "Stream task changes", "produces": ["text/event-stream"], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["To Do", "In Progress", "Completed"]},
                "priority": {"type": "string", "enum": ["Low", "Medium", "High"]},
                "dueDate": {"type": "string", "format": "date"}
            }
        },
        "TaskForm": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "dueDate": {"type": "string", "format": "date"}
            }
        },
        "Position": {
            "type": "object",
            "properties": {"bucket": {"type": "string"}, "index": {"type": "integer"}}
        },
        "DropEvent": {
            "type": "object",
            "properties": {
                "source": {"$ref": "#/definitions/Position"},
                "destination": {"$ref": "#/definitions/Position"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "Task list and kanban board backed by a single persisted task collection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
