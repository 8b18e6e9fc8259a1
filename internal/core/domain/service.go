package domain

// Criticality is the manifest-assigned importance tier of a service.
type Criticality string

const (
	CriticalityHigh   Criticality = "high"
	CriticalityMedium Criticality = "medium"
	CriticalityLow    Criticality = "low"
)

// Weight returns the readiness-score weight for the tier.
func (c Criticality) Weight() int {
	switch c {
	case CriticalityHigh:
		return 3
	case CriticalityMedium:
		return 2
	case CriticalityLow:
		return 1
	}
	return 0
}

// Valid reports whether c is one of the known tiers.
func (c Criticality) Valid() bool {
	return c == CriticalityHigh || c == CriticalityMedium || c == CriticalityLow
}

// EndpointShape tags how a service's probe response is interpreted.
type EndpointShape string

const (
	// ShapeJSONStatus expects a JSON object with a "status" field.
	ShapeJSONStatus EndpointShape = "json-status"
	// ShapePlainText expects any non-empty body on a 2xx response.
	ShapePlainText EndpointShape = "plain-text"
	// ShapeGRPCHealth expects a gRPC health-checking protocol target.
	ShapeGRPCHealth EndpointShape = "grpc-health"
)

// Valid reports whether s is one of the known shapes.
func (s EndpointShape) Valid() bool {
	return s == ShapeJSONStatus || s == ShapePlainText || s == ShapeGRPCHealth
}

// Service describes one deployment member as declared in the manifest.
// Services are read-only configuration after manifest load.
type Service struct {
	Name        string
	URL         string
	Shape       EndpointShape
	Criticality Criticality
	DependsOn   []string
}
