// Package docs holds the swagger document for the gateway, kept in the layout
// swag init produces so gin-swagger can serve it.
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
        "/api.v1.TextTranslator.com/AllLanguages/{scope}": {
            "get": {
                "description": "Gets the set of languages currently supported",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Supported languages",
                "parameters": [
                    {
                        "type": "string",
                        "description": "translation or transliteration or dictionary",
                        "name": "scope",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api.v1.TextTranslator.com/AlternateTranslations": {
            "post": {
                "description": "Gives alternate translations of the input",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Dictionary lookup",
                "parameters": [
                    {
                        "description": "Alternate_Translation Object",
                        "name": "Alternate_Translation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/translator.AlternateTranslationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api.v1.TextTranslator.com/BreakSentence": {
            "post": {
                "description": "Get sentence length during translation",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Sentence boundaries",
                "parameters": [
                    {
                        "description": "Sentence",
                        "name": "Sentence",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/translator.BreakSentenceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gateway.BreakSentenceResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api.v1.TextTranslator.com/Detect": {
            "post": {
                "description": "Detects language of the text",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Detect language",
                "parameters": [
                    {
                        "description": "Detection text",
                        "name": "Detect",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/translator.DetectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gateway.DetectResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api.v1.TextTranslator.com/Translate": {
            "post": {
                "description": "Translate and detect input text",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Translate text",
                "parameters": [
                    {
                        "description": "text translation",
                        "name": "Translate",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/translator.TranslateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api.v1.TextTranslator.com/Transliterate": {
            "post": {
                "description": "Text conversion of one language to another based on phonetic similarity",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "TranslatorAPI"
                ],
                "summary": "Transliterate text",
                "parameters": [
                    {
                        "description": "Transliterate text",
                        "name": "Transliterate",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/translator.TransliterateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "gateway.BreakSentenceResponse": {
            "type": "object",
            "properties": {
                "PrimaryLanguageDetected": {
                    "type": "object"
                },
                "SentenceLength": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gateway.DetectResponse": {
            "type": "object",
            "properties": {
                "PrimaryLanguage": {
                    "type": "string"
                },
                "SecondaryLanguage": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/translator.LanguageScore"
                    }
                },
                "score": {
                    "type": "number"
                }
            }
        },
        "translator.AlternateTranslationRequest": {
            "type": "object",
            "required": [
                "from",
                "text",
                "to"
            ],
            "properties": {
                "from": {
                    "type": "string",
                    "example": "en"
                },
                "text": {
                    "type": "string",
                    "example": "shark"
                },
                "to": {
                    "type": "string",
                    "example": "es"
                }
            }
        },
        "translator.BreakSentenceRequest": {
            "type": "object",
            "required": [
                "text"
            ],
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Hello, how are you? Hope you are doing great! Have a good time"
                }
            }
        },
        "translator.DetectRequest": {
            "type": "object",
            "required": [
                "text"
            ],
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Good to see you"
                }
            }
        },
        "translator.LanguageScore": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                }
            }
        },
        "translator.TranslateRequest": {
            "type": "object",
            "required": [
                "text",
                "to"
            ],
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Flower"
                },
                "to": {
                    "type": "string",
                    "example": "te"
                }
            }
        },
        "translator.TransliterateRequest": {
            "type": "object",
            "required": [
                "fromScript",
                "language",
                "text",
                "toScript"
            ],
            "properties": {
                "fromScript": {
                    "type": "string",
                    "example": "Thai"
                },
                "language": {
                    "type": "string",
                    "example": "th"
                },
                "text": {
                    "type": "string",
                    "example": "สวัสดี"
                },
                "toScript": {
                    "type": "string",
                    "example": "Latn"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Text Translator API",
	Description:      "Text Translator API documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
