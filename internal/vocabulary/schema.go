package vocabulary

// Schema is the JSON Schema for vocabulary override files.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Category Vocabulary",
  "type": "object",
  "required": ["categories"],
  "additionalProperties": false,
  "properties": {
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "skills"],
        "additionalProperties": false,
        "properties": {
          "name": {
            "type": "string",
            "minLength": 1
          },
          "skills": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "string",
              "minLength": 1
            }
          }
        }
      }
    }
  }
}`
