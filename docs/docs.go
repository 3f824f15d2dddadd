// Package docs holds the OpenAPI document served at /api/swagger. It is
// maintained by hand alongside the handler annotations.
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
        "/v1/analysis/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Get analysis history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AnalysisRecord"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/analysis/snapshot": {
            "post": {
                "description": "Analyzes a frame captured from the camera preview, sent as a data URL.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze a camera snapshot",
                "parameters": [
                    {"description": "Snapshot", "name": "snapshot", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SnapshotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AnalysisRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/analysis/upload": {
            "post": {
                "description": "Analyzes a crop photo. Images must be under 5 MB.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze an uploaded image",
                "parameters": [
                    {"type": "file", "description": "Crop image", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AnalysisRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chat/messages": {
            "get": {
                "description": "Returns every stored chat message in the order it was sent.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get chat history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Message"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Sends a typed message or quick action and returns the reply.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Ask the assistant",
                "parameters": [
                    {"description": "Message", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SendMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ChatExchange"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Clear chat history",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chat/voice": {
            "post": {
                "description": "Sends a transcript recognized by the browser, or the reason recognition failed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Ask the assistant by voice",
                "parameters": [
                    {"description": "Recognition result", "name": "voice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.VoiceMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ChatExchange"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/crops/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Crops"],
                "summary": "Get recommendation history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.CropRecommendation"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/crops/recommend": {
            "post": {
                "description": "Forwards the soil and climate form to the prediction server.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crops"],
                "summary": "Recommend a crop",
                "parameters": [
                    {"description": "Soil and climate values", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CropInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CropRecommendation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/reports/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Farm report summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Report"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/sessions": {
            "get": {
                "description": "Returns the current or last session of every flow.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "List sessions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/session.Status"}}}
                }
            }
        },
        "/v1/sessions/{kind}/cancel": {
            "post": {
                "description": "Cancels the in-flight capture or request of one flow.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Cancel a session",
                "parameters": [
                    {"enum": ["chat", "analysis", "weather", "crop", "report"], "type": "string", "description": "Flow kind", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/settings": {
            "get": {
                "description": "Returns the dashboard settings.",
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Settings"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Saves the dashboard settings.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "New settings", "name": "settings", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.Settings"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/weather": {
            "get": {
                "description": "Fetches the current weather for a city or a coordinate pair. Without either, the configured default city is used.\nOn failure the last successful snapshot is returned in the error body.",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Fetch weather",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query"},
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query"},
                    {"enum": ["denied", "unavailable", "unsupported"], "type": "string", "description": "Geolocation failure reported by the browser", "name": "geo_status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WeatherSnapshot"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.WeatherErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.WeatherErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.WeatherErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/api.WeatherErrorResponse"}}
                }
            }
        },
        "/v1/weather/current": {
            "get": {
                "description": "Returns the most recent successful weather snapshot without fetching.",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Last weather snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WeatherSnapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/weather/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get weather history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.WeatherSnapshot"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "api.StatusResponse": {"type": "object", "properties": {"status": {"type": "string"}}},
        "api.WeatherErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "last": {"$ref": "#/definitions/model.WeatherSnapshot"}}},
        "model.AnalysisResult": {"type": "object", "properties": {"confidence": {"type": "number"}, "disease": {"type": "string"}, "status": {"type": "string"}}},
        "model.AnalysisRecord": {"type": "object", "properties": {"analyzed_at": {"type": "string"}, "id": {"type": "string"}, "mime_type": {"type": "string"}, "result": {"$ref": "#/definitions/model.AnalysisResult"}, "size_bytes": {"type": "integer"}, "source": {"type": "string"}}},
        "model.CropInput": {"type": "object", "required": ["Humidity", "Nitrogen", "Ph", "Phosphorus", "Potassium", "Rainfall", "Temperature"], "properties": {"Humidity": {"type": "number", "maximum": 100, "minimum": 0}, "Nitrogen": {"type": "number", "minimum": 0}, "Ph": {"type": "number", "maximum": 14, "minimum": 0}, "Phosphorus": {"type": "number", "minimum": 0}, "Potassium": {"type": "number", "minimum": 0}, "Rainfall": {"type": "number", "minimum": 0}, "Temperature": {"type": "number"}}},
        "model.CropRecommendation": {"type": "object", "properties": {"crop": {"type": "string"}, "message": {"type": "string"}, "recommended_at": {"type": "string"}}},
        "model.Message": {"type": "object", "properties": {"sender": {"type": "string"}, "text": {"type": "string"}, "timestamp": {"type": "integer"}}},
        "model.Report": {"type": "object", "properties": {"pest_incidents": {"type": "integer"}, "recommendations": {"type": "array", "items": {"type": "string"}}, "revenue_projection": {"type": "string"}, "soil_quality": {"type": "string"}, "water_efficiency": {"type": "string"}, "yield_increase": {"type": "string"}}},
        "model.WeatherSnapshot": {"type": "object", "properties": {"city": {"type": "string"}, "condition": {"type": "string"}, "country": {"type": "string"}, "feels_like": {"type": "integer"}, "fetched_at": {"type": "string"}, "humidity": {"type": "integer"}, "icon": {"type": "string"}, "pressure_hpa": {"type": "integer"}, "temperature": {"type": "integer"}, "wind_speed_kmh": {"type": "integer"}}},
        "service.ChatExchange": {"type": "object", "properties": {"answer": {"$ref": "#/definitions/model.Message"}, "question": {"$ref": "#/definitions/model.Message"}}},
        "service.SendMessageRequest": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string", "maxLength": 2000, "example": "How do I control pests?"}}},
        "service.Settings": {"type": "object", "required": ["default_city"], "properties": {"default_city": {"type": "string", "maxLength": 100, "example": "London"}}},
        "service.SnapshotRequest": {"type": "object", "required": ["image"], "properties": {"image": {"type": "string", "example": "data:image/png;base64,iVBORw0KGgo="}}},
        "service.VoiceMessageRequest": {"type": "object", "properties": {"outcome": {"type": "string", "enum": ["ok", "denied", "unsupported", "unavailable"], "example": "ok"}, "transcript": {"type": "string", "example": "what crops should I plant"}}},
        "session.Status": {"type": "object", "properties": {"current_input": {}, "error": {"type": "string"}, "id": {"type": "string"}, "kind": {"type": "string"}, "resolved_at": {"type": "string"}, "result": {}, "started_at": {"type": "string"}, "state": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "AgriBrain API",
	Description:      "Backend for the AgriBrain farm dashboard: chat assistant, crop image analysis, weather and crop recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
