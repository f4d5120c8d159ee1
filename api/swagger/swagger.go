package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Eventum API",
        "description": "Calendar event CRUD with range-overlap queries and day-grid layout",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Calendar event lifecycle"},
        {"name": "Health", "description": "Process probes"}
    ],
    "paths": {
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events overlapping an optional date range",
                "parameters": [
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Ordered event list"},
                    "400": {"description": "Unparseable or inverted range"}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "201": {"description": "Created event"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get event by id",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Event"},
                    "400": {"description": "Malformed id"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Partial update; omitted fields keep stored values",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "Updated event"},
                    "400": {"description": "Validation failure or malformed id"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event, returning its prior state",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Deletion confirmation with removed record"},
                    "400": {"description": "Malformed id"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/day-grid": {
            "get": {
                "tags": ["Events"],
                "summary": "Render geometry for one day",
                "parameters": [{"name": "date", "in": "query", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "All-day lane, positioned events and hour-slot buckets"},
                    "400": {"description": "Invalid date"}
                }
            }
        },
        "/exports/events": {
            "get": {
                "tags": ["Events"],
                "summary": "Download events as CSV, PDF or iCalendar",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "required": true},
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Unknown format or invalid range"}
                }
            }
        }
    },
    "definitions": {
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "startTime": {"type": "string", "format": "date-time"},
                "endTime": {"type": "string", "format": "date-time"},
                "allDay": {"type": "boolean"},
                "color": {"type": "string"},
                "location": {"type": "string"},
                "recurring": {"type": "string", "enum": ["none", "daily", "weekly", "monthly", "yearly"]},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
