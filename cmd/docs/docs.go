// Package docs contains the OpenAPI description of the ledger API served under /swagger.
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
		"/accounts": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "List the chart of accounts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.AccountResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to list accounts",
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
		"/accounts/{code}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get an account by code",
				"parameters": [
					{
						"type": "string",
						"description": "Account code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Account not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to retrieve account",
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
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Deletes an account that no entry line references",
				"tags": [
					"accounts"
				],
				"summary": "Delete an account",
				"parameters": [
					{
						"type": "string",
						"description": "Account code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "Account deleted"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Account not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Account has child accounts",
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
		"/accounts/{code}/balance": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns debit and credit totals of an account over [from, to]",
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get the balance of an account",
				"parameters": [
					{
						"type": "string",
						"description": "Account code",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "First day (YYYY-MM-DD)",
						"name": "from",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Last day (YYYY-MM-DD)",
						"name": "to",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountBalanceResponse"
						}
					},
					"400": {
						"description": "Invalid date range",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Account not found",
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
		"/accounts/{code}/ledger": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the lines of an account over [from, to] with a running balance",
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get the ledger of an account",
				"parameters": [
					{
						"type": "string",
						"description": "Account code",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "First day (YYYY-MM-DD)",
						"name": "from",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Last day (YYYY-MM-DD)",
						"name": "to",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountLedgerResponse"
						}
					},
					"400": {
						"description": "Invalid date range",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Account not found",
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
		"/entries": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Validates and posts an entry. Rule violations come back as 422 with every violated rule listed.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "Post a journal entry",
				"parameters": [
					{
						"description": "Entry to post",
						"name": "entry",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PostEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					},
					"400": {
						"description": "Invalid input format",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Entry violates ledger rules",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					},
					"500": {
						"description": "Failed to post entry",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					}
				}
			}
		},
		"/entries/validate": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Runs every posting rule against an entry without writing anything",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "Validate a journal entry",
				"parameters": [
					{
						"description": "Entry to validate",
						"name": "entry",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PostEntryRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ValidateEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input format",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
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
		"/entries/{entryID}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Retrieves a posted entry with its lines",
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "Get an entry by ID",
				"parameters": [
					{
						"type": "integer",
						"description": "Entry ID",
						"name": "entryID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EntryResponse"
						}
					},
					"400": {
						"description": "Invalid entry ID",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Entry not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to retrieve entry",
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
		"/entries/{entryID}/reverse": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Posts a mirror entry that swaps the debit and credit of every line",
				"produces": [
					"application/json"
				],
				"tags": [
					"entries"
				],
				"summary": "Reverse an entry",
				"parameters": [
					{
						"type": "integer",
						"description": "Entry ID to reverse",
						"name": "entryID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					},
					"400": {
						"description": "Invalid entry ID",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Entry not found",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					},
					"409": {
						"description": "Entry already reversed",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					},
					"422": {
						"description": "Reversal violates ledger rules",
						"schema": {
							"$ref": "#/definitions/dto.PostResultResponse"
						}
					}
				}
			}
		},
		"/periods": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Registers a period of a fiscal year, open unless a status is given",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Register an accounting period",
				"parameters": [
					{
						"description": "Period details",
						"name": "period",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePeriodRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PeriodResponse"
						}
					},
					"400": {
						"description": "Invalid input format or validation error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Period overlaps an existing one",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to create period",
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
		"/periods/{year}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "List periods and locks of a year",
				"parameters": [
					{
						"type": "integer",
						"description": "Fiscal year",
						"name": "year",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListPeriodsResponse"
						}
					},
					"400": {
						"description": "Invalid year",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to list periods",
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
		"/periods/{year}/close": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Closes the whole year. Every month of the year must already be closed.",
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Close a fiscal year",
				"parameters": [
					{
						"type": "integer",
						"description": "Fiscal year",
						"name": "year",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodResponse"
						}
					},
					"400": {
						"description": "Invalid year",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Year not ready to close",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Failed to close year",
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
		"/periods/{year}/{month}/close": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Closes a month so no entry dated inside it can be posted. Closing twice is a no-op.",
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Close a month",
				"parameters": [
					{
						"type": "integer",
						"description": "Fiscal year",
						"name": "year",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Month (1-12)",
						"name": "month",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodResponse"
						}
					},
					"400": {
						"description": "Invalid year or month",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Ledger busy",
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
		"/periods/{year}/{month}/reopen": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Reopen a month",
				"parameters": [
					{
						"type": "integer",
						"description": "Fiscal year",
						"name": "year",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Month (1-12)",
						"name": "month",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodResponse"
						}
					},
					"204": {
						"description": "Month was never registered"
					},
					"400": {
						"description": "Invalid year or month",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Year is closed",
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
		"dto.AccountBalanceResponse": {
			"type": "object",
			"properties": {
				"accountCode": {
					"type": "string"
				},
				"balance": {
					"type": "number"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"totalCredit": {
					"type": "number"
				},
				"totalDebit": {
					"type": "number"
				}
			}
		},
		"dto.AccountLedgerResponse": {
			"type": "object",
			"properties": {
				"accountCode": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LedgerRowResponse"
					}
				}
			}
		},
		"dto.AccountResponse": {
			"type": "object",
			"properties": {
				"class": {
					"type": "string",
					"enum": [
						"A",
						"P",
						"N",
						"C",
						"R"
					]
				},
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"parentCode": {
					"type": "string"
				}
			}
		},
		"dto.CreatePeriodRequest": {
			"type": "object",
			"required": [
				"endDate",
				"startDate",
				"year"
			],
			"properties": {
				"endDate": {
					"type": "string"
				},
				"startDate": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"open",
						"closed"
					]
				},
				"year": {
					"type": "integer",
					"maximum": 9999,
					"minimum": 1
				}
			}
		},
		"dto.EntryLineRequest": {
			"type": "object",
			"required": [
				"accountCode"
			],
			"properties": {
				"accountCode": {
					"type": "string"
				},
				"credit": {
					"type": "number"
				},
				"debit": {
					"type": "number"
				}
			}
		},
		"dto.EntryLineResponse": {
			"type": "object",
			"properties": {
				"accountCode": {
					"type": "string"
				},
				"credit": {
					"type": "number"
				},
				"debit": {
					"type": "number"
				}
			}
		},
		"dto.EntryResponse": {
			"type": "object",
			"properties": {
				"clientReferenceID": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"document": {
					"type": "string"
				},
				"documentDate": {
					"type": "string"
				},
				"entryID": {
					"type": "integer"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.EntryLineResponse"
					}
				},
				"party": {
					"type": "string"
				},
				"protocol": {
					"type": "string"
				},
				"reversalOf": {
					"type": "integer"
				},
				"taxableAmount": {
					"type": "number"
				},
				"vatAmount": {
					"type": "number"
				},
				"vatRate": {
					"type": "number"
				}
			}
		},
		"dto.LedgerErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"enum": [
						"UNBALANCED",
						"INVALID_ACCOUNT",
						"PERIOD_CLOSED",
						"NEGATIVE_AMOUNT",
						"AMBIGUOUS_LINE",
						"EMPTY_LINES",
						"ALREADY_REVERSED",
						"DB_ERROR",
						"NOT_FOUND"
					]
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.LedgerRowResponse": {
			"type": "object",
			"properties": {
				"credit": {
					"type": "number"
				},
				"date": {
					"type": "string"
				},
				"debit": {
					"type": "number"
				},
				"description": {
					"type": "string"
				},
				"document": {
					"type": "string"
				},
				"entryID": {
					"type": "integer"
				},
				"protocol": {
					"type": "string"
				},
				"runningBalance": {
					"type": "number"
				}
			}
		},
		"dto.ListPeriodsResponse": {
			"type": "object",
			"properties": {
				"locks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PeriodLockResponse"
					}
				},
				"periods": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.PeriodResponse"
					}
				},
				"year": {
					"type": "integer"
				}
			}
		},
		"dto.PeriodLockResponse": {
			"type": "object",
			"properties": {
				"lockedAt": {
					"type": "string"
				},
				"lockedBy": {
					"type": "string"
				},
				"month": {
					"type": "integer"
				},
				"year": {
					"type": "integer"
				}
			}
		},
		"dto.PeriodResponse": {
			"type": "object",
			"properties": {
				"endDate": {
					"type": "string"
				},
				"month": {
					"type": "integer"
				},
				"periodID": {
					"type": "integer"
				},
				"startDate": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"open",
						"closed"
					]
				},
				"year": {
					"type": "integer"
				}
			}
		},
		"dto.PostEntryRequest": {
			"type": "object",
			"required": [
				"date"
			],
			"properties": {
				"clientReferenceID": {
					"type": "string",
					"maxLength": 128,
					"minLength": 1
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"document": {
					"type": "string"
				},
				"documentDate": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.EntryLineRequest"
					}
				},
				"party": {
					"type": "string"
				},
				"taxableAmount": {
					"type": "number"
				},
				"vatAmount": {
					"type": "number"
				},
				"vatRate": {
					"type": "number"
				}
			}
		},
		"dto.PostResultResponse": {
			"type": "object",
			"properties": {
				"entryID": {
					"type": "integer"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LedgerErrorResponse"
					}
				},
				"protocol": {
					"type": "string"
				},
				"success": {
					"type": "boolean"
				}
			}
		},
		"dto.ValidateEntryResponse": {
			"type": "object",
			"properties": {
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LedgerErrorResponse"
					}
				},
				"valid": {
					"type": "boolean"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	},
	"security": [
		{
			"BearerAuth": []
		}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledger Core API",
	Description:      "Double-entry ledger: chart of accounts, journal entries, reversals and period closing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
