// Package swagger holds the OpenAPI document served under /swagger.
// Regenerate it with `go generate ./cmd/fyyur-server` after changing handler annotations.
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
        "/artists": {
            "get": {
                "description": "All artists ordered by id, each with its number of upcoming shows",
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "List artists",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/definitions/store.Summary"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/artists/create": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Create an artist",
                "parameters": [
                    {
                        "description": "Artist",
                        "name": "artist",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forms.ArtistForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Artist"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Artist could not be listed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/artists/search": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Search artists",
                "parameters": [
                    {
                        "description": "Search term",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/artists.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/store.SearchResult-store_Summary"
                        }
                    }
                }
            }
        },
        "/artists/{id}": {
            "get": {
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Get an artist",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/artists.ArtistResponse"
                        }
                    },
                    "404": {
                        "description": "Artist not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Delete an artist",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    },
                    "500": {
                        "description": "Artist could not be deleted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/artists/{id}/edit": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "artists"
                ],
                "summary": "Update an artist",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Artist ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Artist",
                        "name": "artist",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forms.ArtistForm"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Artist"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Artist not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/export": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "importexport"
                ],
                "summary": "Export the directory",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Send as an attachment",
                        "name": "download",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/store.Directory"
                        }
                    }
                }
            }
        },
        "/import": {
            "post": {
                "description": "Ids in the document are remapped; shows pointing at unknown entries are skipped",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "importexport"
                ],
                "summary": "Import a directory",
                "parameters": [
                    {
                        "description": "Directory",
                        "name": "directory",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/store.Directory"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/store.ImportResult"
                        }
                    },
                    "400": {
                        "description": "Invalid document",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/shows": {
            "get": {
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "shows"
                ],
                "summary": "List shows",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/definitions/store.ShowDetail"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/shows/create": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "shows"
                ],
                "summary": "Create a show",
                "parameters": [
                    {
                        "description": "Show",
                        "name": "show",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forms.ShowForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Show"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Show could not be listed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/venues": {
            "get": {
                "description": "Venues grouped by city and state, each with its number of upcoming shows",
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "List venues",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/definitions/store.Area"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/venues/create": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Create a venue",
                "parameters": [
                    {
                        "description": "Venue",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forms.VenueForm"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Venue"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Venue could not be listed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/venues/search": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Search venues",
                "parameters": [
                    {
                        "description": "Search term",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/venues.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/store.SearchResult-store_Summary"
                        }
                    }
                }
            }
        },
        "/venues/{id}": {
            "get": {
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Get a venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/venues.VenueResponse"
                        }
                    },
                    "404": {
                        "description": "Venue not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Delete a venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "boolean"
                            }
                        }
                    },
                    "500": {
                        "description": "Venue could not be deleted",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/venues/{id}/edit": {
            "post": {
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json",
                    "text/html"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Update a venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Venue",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forms.VenueForm"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Venue"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Venue not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "artists.ArtistResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                },
                "shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Show"
                    }
                },
                "upcoming_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.ShowDetail"
                    }
                },
                "past_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.ShowDetail"
                    }
                },
                "upcoming_shows_count": {
                    "type": "integer"
                },
                "past_shows_count": {
                    "type": "integer"
                }
            }
        },
        "artists.SearchRequest": {
            "type": "object",
            "properties": {
                "search_term": {
                    "type": "string"
                }
            }
        },
        "forms.ArtistForm": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                }
            },
            "required": [
                "city",
                "genres",
                "name",
                "state"
            ]
        },
        "forms.ShowForm": {
            "type": "object",
            "properties": {
                "artist_id": {
                    "type": "integer"
                },
                "venue_id": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "string"
                }
            },
            "required": [
                "artist_id",
                "start_time",
                "venue_id"
            ]
        },
        "forms.VenueForm": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "image_link": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                }
            },
            "required": [
                "address",
                "city",
                "genres",
                "name",
                "state"
            ]
        },
        "models.Artist": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "seeking_venue": {
                    "type": "boolean"
                },
                "shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Show"
                    }
                }
            }
        },
        "models.Show": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "venue_id": {
                    "type": "integer"
                },
                "artist_id": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "string"
                },
                "venue": {
                    "$ref": "#/definitions/models.Venue"
                },
                "artist": {
                    "$ref": "#/definitions/models.Artist"
                }
            }
        },
        "models.Venue": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                },
                "shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Show"
                    }
                }
            }
        },
        "store.Area": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "venues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.Summary"
                    }
                }
            }
        },
        "store.Directory": {
            "type": "object",
            "properties": {
                "venues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Venue"
                    }
                },
                "artists": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Artist"
                    }
                },
                "shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Show"
                    }
                }
            }
        },
        "store.ImportResult": {
            "type": "object",
            "properties": {
                "venues": {
                    "type": "integer"
                },
                "artists": {
                    "type": "integer"
                },
                "shows": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "store.SearchResult-store_Summary": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.Summary"
                    }
                }
            }
        },
        "store.ShowDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "venue_id": {
                    "type": "integer"
                },
                "venue_name": {
                    "type": "string"
                },
                "venue_image_link": {
                    "type": "string"
                },
                "artist_id": {
                    "type": "integer"
                },
                "artist_name": {
                    "type": "string"
                },
                "artist_image_link": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "store.Summary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "num_upcoming_shows": {
                    "type": "integer"
                }
            }
        },
        "venues.SearchRequest": {
            "type": "object",
            "properties": {
                "search_term": {
                    "type": "string"
                }
            }
        },
        "venues.VenueResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "seeking_description": {
                    "type": "string"
                },
                "image_link": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "facebook_link": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "seeking_talent": {
                    "type": "boolean"
                },
                "shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Show"
                    }
                },
                "upcoming_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.ShowDetail"
                    }
                },
                "past_shows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.ShowDetail"
                    }
                },
                "upcoming_shows_count": {
                    "type": "integer"
                },
                "past_shows_count": {
                    "type": "integer"
                }
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
	Title:            "Fyyur API",
	Description:      "A booking directory of music venues, artists and the shows they play.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
