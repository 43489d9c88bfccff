package models

import (
	"encoding/json"
	"fmt"
)

// Feature is a GeoJSON Feature carrying platform-specific fields.
// Properties are opaque: their schema belongs to the feature's model.
type Feature struct {
	Type       string                 `json:"type" binding:"required,eq=Feature"`
	ID         string                 `json:"id" binding:"required"`
	URN        string                 `json:"urn,omitempty"`
	Model      string                 `json:"model" binding:"required"`
	EntityType string                 `json:"entityType" binding:"required,oneof=DATA DATASET COLLECTION"`
	Geometry   *Geometry              `json:"geometry"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Files      []FeatureFile          `json:"files,omitempty" binding:"dive"`
}

// Geometry is a GeoJSON geometry. Coordinates are kept raw.
type Geometry struct {
	Type        string          `json:"type" binding:"required,oneof=Point MultiPoint LineString MultiLineString Polygon MultiPolygon GeometryCollection"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []Geometry      `json:"geometries,omitempty" binding:"dive"`
}

// FeatureFile references one file attached to a feature.
type FeatureFile struct {
	Attributes FeatureFileAttributes `json:"attributes"`
	Locations  []FeatureFileLocation `json:"locations,omitempty" binding:"dive"`
}

type FeatureFileAttributes struct {
	DataType  string `json:"dataType" binding:"required"`
	MimeType  string `json:"mimeType" binding:"required"`
	Filename  string `json:"filename" binding:"required"`
	Filesize  int64  `json:"filesize,omitempty" binding:"gte=0"`
	Checksum  string `json:"checksum,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
}

type FeatureFileLocation struct {
	URL     string `json:"url" binding:"required"`
	Storage string `json:"storage,omitempty"`
}

func (f Feature) String() string {
	geometry := "null"
	if f.Geometry != nil {
		geometry = f.Geometry.Type
	}
	return fmt.Sprintf("%s(model=%s entityType=%s geometry=%s properties=%d files=%d)",
		f.ID, f.Model, f.EntityType, geometry, len(f.Properties), len(f.Files))
}
