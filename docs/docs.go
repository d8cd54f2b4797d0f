// Package docs holds the generated OpenAPI document served by the Swagger
// UI route. Regenerate with:
//
//	swag init -g cmd/server/main.go -o docs
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
                "tags": ["Auth"],
                "summary": "Authenticate a back-office user",
                "operationId": "login",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Terminate the current session",
                "operationId": "logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Return the authenticated user",
                "operationId": "me",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/donations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Donations"],
                "summary": "List donations",
                "operationId": "listDonations",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            },
            "post": {
                "tags": ["Donations"],
                "summary": "Record a donation",
                "operationId": "createDonation",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/donations/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Donations"],
                "summary": "Update a donation's status",
                "operationId": "updateDonation",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/payments/manual": {
            "post": {
                "tags": ["ManualPayments"],
                "summary": "Report a manual transfer",
                "operationId": "submitManualPayment",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/payments/manual/pending": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["ManualPayments"],
                "summary": "List the verification work queue",
                "operationId": "pendingPayments",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/payments/manual/{id}/verify": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["ManualPayments"],
                "summary": "Finalize a pending manual payment",
                "operationId": "verifyPayment",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/payments/card/intent": {
            "post": {
                "tags": ["Gateway"],
                "summary": "Prepare a card charge",
                "operationId": "createCardIntent",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/payments/redirect/order": {
            "post": {
                "tags": ["Gateway"],
                "summary": "Open a redirect wallet order",
                "operationId": "createRedirectOrder",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/payments/redirect/order/{id}/capture": {
            "post": {
                "tags": ["Gateway"],
                "summary": "Capture an approved redirect order",
                "operationId": "captureRedirectOrder",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/contact": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Contact"],
                "summary": "List contact messages",
                "operationId": "listContactMessages",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Contact"],
                "summary": "Submit a contact message",
                "operationId": "createContactMessage",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/contact/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Contact"],
                "summary": "Update a contact message's status",
                "operationId": "updateContactMessage",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/stats/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Stats"],
                "summary": "Admin dashboard metrics",
                "operationId": "adminStats",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/stats/owner": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Stats"],
                "summary": "Owner revenue metrics",
                "operationId": "ownerStats",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Donation Backend API",
	Description:      "Donation collection service with manual payment verification and a role-gated back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
