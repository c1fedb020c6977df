package batch

const schemaURL = "mem://schemas/point-batch.json"

const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["operations"],
  "additionalProperties": false,
  "properties": {
    "operations": {
      "type": "array",
      "items": { "$ref": "#/$defs/operation" }
    }
  },
  "$defs": {
    "int32": {
      "type": "integer",
      "minimum": -2147483648,
      "maximum": 2147483647
    },
    "point": {
      "type": "object",
      "required": ["x", "y"],
      "additionalProperties": false,
      "properties": {
        "x": { "$ref": "#/$defs/int32" },
        "y": { "$ref": "#/$defs/int32" }
      }
    },
    "operation": {
      "type": "object",
      "required": ["op", "a"],
      "additionalProperties": false,
      "properties": {
        "op": {
          "enum": ["add", "sub", "scale", "dot", "equals", "neg", "div",
                   "rotate_cw", "rotate_acw", "rotate_180",
                   "dist", "dist_squared", "manhattan", "line"]
        },
        "a": { "$ref": "#/$defs/point" },
        "b": { "$ref": "#/$defs/point" },
        "k": { "$ref": "#/$defs/int32" }
      },
      "allOf": [
        {
          "if": { "properties": { "op": { "enum": ["add", "sub", "dot", "equals", "dist", "dist_squared", "manhattan", "line"] } } },
          "then": { "required": ["b"] }
        },
        {
          "if": { "properties": { "op": { "enum": ["scale", "div"] } } },
          "then": { "required": ["k"] }
        }
      ]
    }
  }
}`
