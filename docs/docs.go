// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with `go generate ./cmd/api`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/location/forecast-point": {
            "get": {
                "description": "Resolve a latitude and longitude into the NWS hourly forecast URL, the nearest \"City, State\" and the IANA timezone",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Get forecast point data",
                "parameters": [
                    {
                        "maximum": 90,
                        "minimum": -90,
                        "type": "number",
                        "example": 39.11539,
                        "description": "Latitude in decimal degrees",
                        "name": "latitude",
                        "in": "query",
                        "required": true
                    },
                    {
                        "maximum": 180,
                        "minimum": -180,
                        "type": "number",
                        "example": -107.6584,
                        "description": "Longitude in decimal degrees",
                        "name": "longitude",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ForecastPoint"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Check if the API is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Ping health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.PingResponse"
                        }
                    }
                }
            }
        },
        "/weather": {
            "get": {
                "description": "Current conditions plus the average, minimum, maximum and final conditions over the configured forecast window. Falls back to the configured location when no coordinates are given.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weather"
                ],
                "summary": "Get current weather and forecast",
                "parameters": [
                    {
                        "maximum": 90,
                        "minimum": -90,
                        "type": "number",
                        "example": 39.1911,
                        "description": "Latitude in decimal degrees",
                        "name": "latitude",
                        "in": "query"
                    },
                    {
                        "maximum": 180,
                        "minimum": -180,
                        "type": "number",
                        "example": -106.8175,
                        "description": "Longitude in decimal degrees",
                        "name": "longitude",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "default": true,
                        "description": "Include the forecast window",
                        "name": "forecast",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/weather.WeatherResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "main.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "latitude must be between -90 and 90"
                }
            }
        },
        "main.PingResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "description": "Response message",
                    "type": "string",
                    "example": "pong"
                }
            }
        },
        "types.Coords": {
            "type": "object",
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                }
            }
        },
        "types.ForecastPoint": {
            "type": "object",
            "properties": {
                "coordinates": {
                    "$ref": "#/definitions/types.Coords"
                },
                "forecast_hourly_url": {
                    "type": "string"
                },
                "grid_x": {
                    "type": "integer"
                },
                "grid_y": {
                    "type": "integer"
                },
                "location": {
                    "$ref": "#/definitions/types.LocationInfo"
                },
                "office": {
                    "description": "NWS grid the point resolves to",
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                }
            }
        },
        "types.LocationInfo": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "types.UnitSystem": {
            "type": "string",
            "enum": [
                "metric",
                "imperial"
            ],
            "x-enum-varnames": [
                "Metric",
                "Imperial"
            ]
        },
        "weather.Forecast": {
            "type": "object",
            "properties": {
                "avg": {
                    "$ref": "#/definitions/weather.ForecastAggregate"
                },
                "fin": {
                    "$ref": "#/definitions/weather.WeatherMoment"
                },
                "max": {
                    "$ref": "#/definitions/weather.ForecastAggregate"
                },
                "min": {
                    "$ref": "#/definitions/weather.ForecastAggregate"
                }
            }
        },
        "weather.ForecastAggregate": {
            "type": "object",
            "properties": {
                "apparent": {
                    "type": "number"
                },
                "humidity": {
                    "type": "number"
                },
                "temp": {
                    "type": "number"
                },
                "wind": {
                    "type": "number"
                },
                "wind_direction": {
                    "type": "number"
                },
                "wind_kmh": {
                    "type": "number"
                }
            }
        },
        "weather.IconJSON": {
            "type": "object",
            "properties": {
                "is_night": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string",
                    "enum": [
                        "clear",
                        "clouds",
                        "fog",
                        "thunder",
                        "rain",
                        "snow",
                        "default"
                    ]
                }
            }
        },
        "weather.WeatherMoment": {
            "type": "object",
            "properties": {
                "apparent": {
                    "type": "number"
                },
                "humidity": {
                    "type": "number"
                },
                "icon": {
                    "$ref": "#/definitions/weather.IconJSON"
                },
                "temp": {
                    "type": "number"
                },
                "weather": {
                    "type": "string"
                },
                "weather_verbose": {
                    "type": "string"
                },
                "wind": {
                    "type": "number"
                },
                "wind_direction": {
                    "type": "number"
                },
                "wind_kmh": {
                    "type": "number"
                }
            }
        },
        "weather.WeatherResult": {
            "type": "object",
            "properties": {
                "current_weather": {
                    "$ref": "#/definitions/weather.WeatherMoment"
                },
                "forecast": {
                    "$ref": "#/definitions/weather.Forecast"
                },
                "location": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                },
                "units": {
                    "$ref": "#/definitions/types.UnitSystem"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Medi-Weather API",
	Description:      "Current conditions and short-range forecast summaries from the National Weather Service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
