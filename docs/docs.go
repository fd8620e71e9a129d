// Package docs is the OpenAPI document served under /swagger/. Regenerate it
// from the handler annotations with `swag init -g cmd/app/main.go`.
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
        "/api/v1/admin/cache/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get question cache stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CacheStatsResponse"}}
                }
            }
        },
        "/api/v1/admin/questions": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create question",
                "parameters": [
                    {"description": "Question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateQuestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/questions/{id}/grade": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Grade a question",
                "parameters": [
                    {"type": "string", "description": "Question id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.GradeResult"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/score": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Score a date",
                "parameters": [
                    {"description": "Date", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.ScoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ScoreResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Leaderboard",
                "parameters": [
                    {"type": "string", "description": "wins, accuracy or streak", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.LeaderboardEntry"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["voters"],
                "summary": "Voter record",
                "parameters": [
                    {"type": "string", "description": "Voter identity", "name": "X-Voter-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.VoterRecord"}}
                }
            }
        },
        "/api/v1/me/profile": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["voters"],
                "summary": "Set username",
                "parameters": [
                    {"type": "string", "description": "Voter identity", "name": "X-Voter-ID", "in": "header", "required": true},
                    {"description": "Profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/questions/today": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Today's question",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Question"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/questions/{id}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments",
                "parameters": [
                    {"type": "string", "description": "Question id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Post comment",
                "parameters": [
                    {"type": "string", "description": "Question id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Voter identity", "name": "X-Voter-ID", "in": "header", "required": true},
                    {"description": "Comment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PostCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Comment"}}
                }
            }
        },
        "/api/v1/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["leaderboard"],
                "summary": "Results",
                "parameters": [
                    {"type": "integer", "description": "Number of questions", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.QuestionResult"}}}
                }
            }
        },
        "/api/v1/votes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Submit vote",
                "parameters": [
                    {"type": "string", "description": "Voter identity", "name": "X-Voter-ID", "in": "header", "required": true},
                    {"description": "Vote", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SubmitVoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.VoteReceipt"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Comment": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "parent_id": {"type": "string"},
                "question_id": {"type": "string"},
                "voter_id": {"type": "string"}
            }
        },
        "domain.GradeResult": {
            "type": "object",
            "properties": {
                "correct": {"type": "integer"},
                "graded": {"type": "integer"},
                "incorrect": {"type": "integer"},
                "question_id": {"type": "string"},
                "skipped": {"type": "integer"},
                "ungraded": {"type": "array", "items": {"type": "string"}},
                "winner": {"type": "string"}
            }
        },
        "domain.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "accuracy": {"type": "number"},
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"},
                "losses": {"type": "integer"},
                "stored_streak": {"type": "integer"},
                "total": {"type": "integer"},
                "username": {"type": "string"},
                "voter_id": {"type": "string"},
                "wins": {"type": "integer"}
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "updated_at": {"type": "string"},
                "username": {"type": "string"},
                "voter_id": {"type": "string"}
            }
        },
        "domain.Question": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "id": {"type": "string"},
                "option_a": {"type": "string"},
                "option_b": {"type": "string"},
                "scored_at": {"type": "string"},
                "text": {"type": "string"},
                "winner": {"type": "string"}
            }
        },
        "domain.QuestionResult": {
            "type": "object",
            "properties": {
                "percent_a": {"type": "number"},
                "percent_b": {"type": "number"},
                "question": {"$ref": "#/definitions/domain.Question"},
                "tally": {"type": "object"}
            }
        },
        "domain.ScoreResult": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "grading": {"$ref": "#/definitions/domain.GradeResult"},
                "question_id": {"type": "string"},
                "tally": {"type": "object"},
                "winner": {"type": "string"}
            }
        },
        "domain.VoteReceipt": {
            "type": "object",
            "properties": {
                "streak": {"type": "object"},
                "vote": {"type": "object"}
            }
        },
        "domain.VoterRecord": {
            "type": "object",
            "properties": {
                "accuracy": {"type": "number"},
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"},
                "losses": {"type": "integer"},
                "stored_streak": {"type": "integer"},
                "today_vote": {"type": "object"},
                "total": {"type": "integer"},
                "username": {"type": "string"},
                "voted_today": {"type": "boolean"},
                "voter_id": {"type": "string"},
                "wins": {"type": "integer"}
            }
        },
        "handler.CacheStatsResponse": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "hits": {"type": "integer"},
                "misses": {"type": "integer"},
                "size": {"type": "integer"}
            }
        },
        "handler.CreateQuestionRequest": {
            "type": "object",
            "required": ["date", "text"],
            "properties": {
                "date": {"type": "string"},
                "option_a": {"type": "string", "maxLength": 100},
                "option_b": {"type": "string", "maxLength": 100},
                "text": {"type": "string", "maxLength": 500}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"},
                "store_latency_ms": {"type": "integer"}
            }
        },
        "handler.PostCommentRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string", "maxLength": 1000},
                "parent_id": {"type": "string"}
            }
        },
        "handler.ScoreRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"}
            }
        },
        "handler.SubmitVoteRequest": {
            "type": "object",
            "required": ["choice", "prediction", "question_id"],
            "properties": {
                "choice": {"type": "string"},
                "prediction": {"type": "string"},
                "question_id": {"type": "string"}
            }
        },
        "handler.UpdateProfileRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string", "maxLength": 30, "minLength": 3}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
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
	Title:            "Daily Poll API",
	Description:      "Daily two-option poll with prediction scoring, streaks and a leaderboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
