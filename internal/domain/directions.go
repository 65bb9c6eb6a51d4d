package domain

// DirectionsRequest is the body sent to the directions provider. Coordinates
// are (lon, lat) pairs ordered [start, end]; elevation asks for a third
// coordinate component.
type DirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
	Elevation   bool        `json:"elevation"`
}

// DirectionsResponse is the GeoJSON-like feature collection returned by the
// provider.
type DirectionsResponse struct {
	Features []DirectionsFeature `json:"features"`
}

type DirectionsFeature struct {
	Properties DirectionsProperties `json:"properties"`
	Geometry   DirectionsGeometry   `json:"geometry"`
}

type DirectionsProperties struct {
	Summary *DirectionsSummary `json:"summary"`
}

// DirectionsSummary carries distance and ascent in meters. Both are optional
// in the provider contract; absent values stay nil downstream.
type DirectionsSummary struct {
	Distance *float64 `json:"distance"`
	Ascent   *float64 `json:"ascent"`
}

// DirectionsGeometry holds an ordered list of [lon, lat, elevation?] triples.
// The provider snaps endpoints to its path network, so the first and last
// coordinates are not necessarily the requested ones.
type DirectionsGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}
