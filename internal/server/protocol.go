package server

import "encoding/json"

// Envelope wraps every message in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message types. Requests and responses share the envelope; "result" and
// "error" only flow server to client, "reload" is an unsolicited push.
const (
	TypeAssemble = "assemble"
	TypeResult   = "result"
	TypeCatalog  = "catalog"
	TypeReload   = "reload"
	TypeError    = "error"
)

// AssemblePayload is a client's assembly request.
type AssemblePayload struct {
	HullID      string            `json:"hullId"`
	Assignments map[string]string `json:"assignments"`
}

// ResultPayload carries a canonical assembly report.
type ResultPayload struct {
	Report json.RawMessage `json:"report"`
}

// CatalogPayload answers a catalog query with entry counts and the live
// generation.
type CatalogPayload struct {
	Components int    `json:"components"`
	Hulls      int    `json:"hulls"`
	Generation uint64 `json:"generation"`
}

// ReloadPayload announces that a hot reload produced a new catalog
// generation.
type ReloadPayload struct {
	Generation uint64 `json:"generation"`
}

// ErrorPayload reports a malformed or unsupported request.
type ErrorPayload struct {
	Message string `json:"message"`
}

func errorEnvelope(message string) Envelope {
	return Envelope{Type: TypeError, Payload: mustPayload(ErrorPayload{Message: message})}
}

// mustPayload marshals a payload struct. The payload types marshal
// unconditionally; a failure is a programming error.
func mustPayload(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
