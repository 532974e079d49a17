package models

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// sceneSchema validates the shape of incoming scene snapshot documents before
// they are decoded, so malformed input fails here with a location instead of
// somewhere deeper in the pipeline.
const sceneSchemaJSON = `{
	"type": "object",
	"required": ["components"],
	"properties": {
		"gridSpacing": {"type": "number", "exclusiveMinimum": 0},
		"components": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type", "position", "terminals"],
				"properties": {
					"type": {"type": "string", "minLength": 1},
					"position": {"$ref": "#/$defs/position"},
					"value": {"type": "string"},
					"terminals": {"type": "array", "items": {"$ref": "#/$defs/position"}}
				}
			}
		},
		"wires": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["start", "end"],
				"properties": {
					"start": {"$ref": "#/$defs/position"},
					"end": {"$ref": "#/$defs/position"}
				}
			}
		},
		"junctions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["position"],
				"properties": {
					"position": {"$ref": "#/$defs/position"}
				}
			}
		}
	},
	"$defs": {
		"position": {
			"type": "object",
			"required": ["x", "y"],
			"properties": {
				"x": {"type": "number"},
				"y": {"type": "number"}
			}
		}
	}
}`

var sceneSchema = jsonschema.MustCompileString("mem://schemas/scene.json", sceneSchemaJSON)

// SceneParser handles parsing of scene snapshots from JSON format
type SceneParser struct{}

// NewSceneParser creates a new scene parser
func NewSceneParser() *SceneParser {
	return &SceneParser{}
}

// ParseScene validates a scene snapshot document against the scene schema and
// decodes it. A missing or non-positive grid spacing falls back to
// DefaultGridSpacing.
func (p *SceneParser) ParseScene(data []byte) (*Scene, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %v", err)
	}
	if err := sceneSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("scene does not match schema: %v", err)
	}

	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %v", err)
	}
	if scene.GridSpacing <= 0 {
		scene.GridSpacing = DefaultGridSpacing
	}
	return &scene, nil
}
