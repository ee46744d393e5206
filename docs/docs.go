// Package docs registers the StepUp OpenAPI document with swag.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Sign up a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}, "409": {"description": "conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh tokens", "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/users/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get current user", "responses": {"200": {"description": "OK"}}}},
        "/dances": {
            "get": {"tags": ["dances"], "summary": "Search dances", "parameters": [{"type": "string", "name": "progressType", "in": "query"}, {"type": "string", "name": "keyword", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["dances"], "summary": "Host a dance", "responses": {"201": {"description": "Created"}}}
        },
        "/dances/{danceID}": {
            "get": {"tags": ["dances"], "summary": "Get a dance", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["dances"], "summary": "Update a dance", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["dances"], "summary": "Delete a dance", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/dances/{danceID}/music": {"get": {"tags": ["dances"], "summary": "List a dance's music", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/dances/{danceID}/reservations": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "Reserve a dance", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["reservations"], "summary": "Cancel a reservation", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/dances/{danceID}/attendance": {"post": {"security": [{"BearerAuth": []}], "tags": ["attendance"], "summary": "Record attendance", "parameters": [{"type": "string", "name": "danceID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/me/dances/hosted": {"get": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "List my hosted dances", "responses": {"200": {"description": "OK"}}}},
        "/me/dances/reserved": {"get": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "List dances I reserved", "responses": {"200": {"description": "OK"}}}},
        "/me/dances/attended": {"get": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "List dances I attended", "responses": {"200": {"description": "OK"}}}},
        "/music": {
            "get": {"tags": ["music"], "summary": "Search the catalog", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["music"], "summary": "Add a song to the catalog", "responses": {"201": {"description": "Created"}}}
        },
        "/music/{musicID}": {
            "get": {"tags": ["music"], "summary": "Get a song", "parameters": [{"type": "string", "name": "musicID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["music"], "summary": "Remove a song from the catalog", "parameters": [{"type": "string", "name": "musicID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict"}}}
        },
        "/music-applies": {
            "get": {"tags": ["music-applies"], "summary": "List song requests", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["music-applies"], "summary": "Request a song", "responses": {"201": {"description": "Created"}}}
        },
        "/music-applies/{applyID}": {
            "get": {"tags": ["music-applies"], "summary": "Get a song request", "parameters": [{"type": "string", "name": "applyID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["music-applies"], "summary": "Delete a song request", "parameters": [{"type": "string", "name": "applyID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/notices": {
            "get": {"tags": ["boards"], "summary": "List posts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Write a post", "responses": {"201": {"description": "Created"}}}
        },
        "/notices/{boardID}": {
            "get": {"tags": ["boards"], "summary": "Get a post", "parameters": [{"type": "string", "name": "boardID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Delete a post", "parameters": [{"type": "string", "name": "boardID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/talks": {
            "get": {"tags": ["boards"], "summary": "List posts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Write a post", "responses": {"201": {"description": "Created"}}}
        },
        "/talks/{boardID}": {
            "get": {"tags": ["boards"], "summary": "Get a post", "parameters": [{"type": "string", "name": "boardID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["boards"], "summary": "Delete a post", "parameters": [{"type": "string", "name": "boardID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/ranks": {"get": {"tags": ["ranks"], "summary": "Point leaderboard", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/ranks/policies": {"get": {"tags": ["ranks"], "summary": "List point policies", "responses": {"200": {"description": "OK"}}}},
        "/ranks/points": {"post": {"security": [{"BearerAuth": []}], "tags": ["ranks"], "summary": "Grant points", "responses": {"201": {"description": "Created"}, "403": {"description": "forbidden"}}}},
        "/ranks/users/{userID}/history": {"get": {"tags": ["ranks"], "summary": "A user's point history", "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "StepUp API",
	Description:      "Random-play dance events, reservations, music requests, boards and ranking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
