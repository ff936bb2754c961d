// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/auth/login": {
            "post": {
                "description": "Exchanges the admin password for a bearer token used by catalog writes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Login Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-categories"],
                "summary": "Create a new category",
                "parameters": [
                    {"description": "Category Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.CreateCategoryInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games": {
            "get": {
                "description": "Returns every game in insertion order.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "List all games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a new game and links it to the given categories.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Create a new game",
                "parameters": [
                    {"description": "Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.CreateGameInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/featured": {
            "get": {
                "description": "Up to ten ranked games with a BoardGameGeek rating of at least 7.0, best rated first.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Featured games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}}
                }
            }
        },
        "/games/search": {
            "get": {
                "description": "Filters games by name, categories, player count, playtime, age and complexity, with sorting and offset pagination.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Search games",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the game name", "name": "query", "in": "query"},
                    {"type": "string", "description": "Comma-separated or repeated category IDs; any match", "name": "category_ids", "in": "query"},
                    {"type": "integer", "description": "Game must support at least this many players", "name": "min_players", "in": "query"},
                    {"type": "integer", "description": "Game must support at most this many players", "name": "max_players", "in": "query"},
                    {"type": "integer", "description": "Minimum playtime in minutes", "name": "min_playtime", "in": "query"},
                    {"type": "integer", "description": "Maximum playtime in minutes", "name": "max_playtime", "in": "query"},
                    {"type": "integer", "description": "Age of the youngest player", "name": "min_age", "in": "query"},
                    {"type": "number", "description": "Minimum complexity (1-5)", "name": "complexity_min", "in": "query"},
                    {"type": "number", "description": "Maximum complexity (1-5)", "name": "complexity_max", "in": "query"},
                    {"type": "string", "description": "name, bgg_rating, bgg_rank, playtime_minutes or created_at", "name": "sort_by", "in": "query"},
                    {"type": "string", "default": "desc", "description": "asc or desc", "name": "sort_order", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Items per page", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PaginatedGameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "description": "Retrieves a game with its songs and categories.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.GameDetails"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes a game together with its songs, their ratings and its category links.",
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Delete a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DeleteResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Partially updates a game. Omitted fields are kept, null clears optional fields, category_ids replaces the categories.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Update a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.UpdateGameInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/bgg-stats": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Fetches the current BoardGameGeek rating and rank for a game that has a bgg_id.",
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Refresh BoardGameGeek stats",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Game has no BoardGameGeek id", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "BoardGameGeek unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/events": {
            "get": {
                "description": "Server-sent events stream. Emits \"ready\" once subscribed, then one \"message\" per song.rated, song.added or game.stats_updated event.",
                "produces": ["text/event-stream"],
                "tags": ["games"],
                "summary": "Live events of a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "event stream", "schema": {"type": "string"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/ratings": {
            "get": {
                "description": "Average and count over the ratings of all songs of a game.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Rating summary of a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.RatingSummary"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/{id}/songs": {
            "get": {
                "description": "Lists a game's songs in insertion order with their average rating and rating count.",
                "produces": ["application/json"],
                "tags": ["songs"],
                "summary": "Songs of a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/store.SongWithRating"}}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/songs": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-songs"],
                "summary": "Add a song to a game",
                "parameters": [
                    {"description": "Song Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/store.CreateSongInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Song"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/songs/{id}/ratings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["songs"],
                "summary": "Rating summary of a song",
                "parameters": [
                    {"type": "integer", "description": "Song ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.RatingSummary"}}
                }
            },
            "post": {
                "description": "Stores a 1-5 rating. The rater is the token subject when a valid token is sent, the client IP otherwise; rating again replaces the previous value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["songs"],
                "summary": "Rate a song",
                "parameters": [
                    {"type": "integer", "description": "Song ID", "name": "id", "in": "path", "required": true},
                    {"description": "Rating", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RateSongInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RateSongResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Song not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.DeleteResponse": {
            "type": "object",
            "properties": {"deleted": {"type": "boolean", "example": true}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "An error message"}}
        },
        "handler.LoginInput": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string"}}
        },
        "handler.PaginatedGameResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "has_more": {"type": "boolean"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total_items": {"type": "integer"}
            }
        },
        "handler.RateSongInput": {
            "type": "object",
            "required": ["rating"],
            "properties": {"rating": {"type": "integer", "example": 4}}
        },
        "handler.RateSongResponse": {
            "type": "object",
            "properties": {
                "rating": {"$ref": "#/definitions/models.SongRating"},
                "summary": {"$ref": "#/definitions/store.RatingSummary"}
            }
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "age_rating": {"type": "integer"},
                "amazon_link": {"type": "string"},
                "bgg_id": {"type": "integer"},
                "bgg_rank": {"type": "integer"},
                "bgg_rating": {"type": "number"},
                "bol_link": {"type": "string"},
                "complexity_rating": {"type": "number"},
                "cover_image_url": {"type": "string"},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "max_players": {"type": "integer"},
                "min_players": {"type": "integer"},
                "name": {"type": "string"},
                "playtime_minutes": {"type": "integer"},
                "rules_text": {"type": "string"},
                "updated_at": {"type": "string"},
                "youtube_tutorial_url": {"type": "string"}
            }
        },
        "models.Song": {
            "type": "object",
            "properties": {
                "audio_url": {"type": "string"},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "duration_seconds": {"type": "integer"},
                "game_id": {"type": "integer"},
                "genre": {"type": "string"},
                "id": {"type": "integer"},
                "suno_track_id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.SongRating": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "rating": {"type": "integer"},
                "song_id": {"type": "integer"},
                "updated_at": {"type": "string"},
                "user_ip": {"type": "string"}
            }
        },
        "store.CreateCategoryInput": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "store.CreateGameInput": {
            "type": "object",
            "required": ["complexity_rating", "max_players", "min_players", "name", "playtime_minutes"],
            "properties": {
                "age_rating": {"type": "integer"},
                "amazon_link": {"type": "string"},
                "bgg_id": {"type": "integer"},
                "bol_link": {"type": "string"},
                "category_ids": {"type": "array", "items": {"type": "integer"}},
                "complexity_rating": {"type": "number", "maximum": 5, "minimum": 1},
                "cover_image_url": {"type": "string"},
                "description": {"type": "string"},
                "max_players": {"type": "integer"},
                "min_players": {"type": "integer"},
                "name": {"type": "string"},
                "playtime_minutes": {"type": "integer"},
                "rules_text": {"type": "string"},
                "youtube_tutorial_url": {"type": "string"}
            }
        },
        "store.CreateSongInput": {
            "type": "object",
            "required": ["audio_url", "duration_seconds", "game_id", "suno_track_id", "title"],
            "properties": {
                "audio_url": {"type": "string"},
                "description": {"type": "string"},
                "duration_seconds": {"type": "integer"},
                "game_id": {"type": "integer"},
                "genre": {"type": "string"},
                "suno_track_id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "store.GameDetails": {
            "allOf": [
                {"$ref": "#/definitions/models.Game"},
                {
                    "type": "object",
                    "properties": {
                        "categories": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}},
                        "songs": {"type": "array", "items": {"$ref": "#/definitions/models.Song"}}
                    }
                }
            ]
        },
        "store.RatingSummary": {
            "type": "object",
            "properties": {
                "average_rating": {"type": "number"},
                "total_ratings": {"type": "integer"}
            }
        },
        "store.SongWithRating": {
            "allOf": [
                {"$ref": "#/definitions/models.Song"},
                {
                    "type": "object",
                    "properties": {
                        "average_rating": {"type": "number"},
                        "total_ratings": {"type": "integer"}
                    }
                }
            ]
        },
        "store.UpdateGameInput": {
            "type": "object",
            "properties": {
                "age_rating": {"type": "integer"},
                "amazon_link": {"type": "string"},
                "bgg_id": {"type": "integer"},
                "bol_link": {"type": "string"},
                "category_ids": {"type": "array", "items": {"type": "integer"}},
                "complexity_rating": {"type": "number"},
                "cover_image_url": {"type": "string"},
                "description": {"type": "string"},
                "max_players": {"type": "integer"},
                "min_players": {"type": "integer"},
                "name": {"type": "string"},
                "playtime_minutes": {"type": "integer"},
                "rules_text": {"type": "string"},
                "youtube_tutorial_url": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GameBeats API",
	Description:      "Board game catalog with AI-generated soundtracks, song ratings and live rating events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
