package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIType identifies which external Kakao API a usage record belongs to.
type APIType string

const (
	// APITypeDirections is the Kakao Mobility directions API.
	APITypeDirections APIType = "directions"
	// APITypeGeocoding is the Kakao local geocoding API.
	APITypeGeocoding APIType = "geocoding"
	// APITypeAddressSearch is the Kakao local address search API.
	APITypeAddressSearch APIType = "address_search"
)

// APIUsage is one metering record per external API call attempt, success or
// failure. Records are immutable once written; they double as cost
// accounting and as an operational audit trail.
type APIUsage struct {
	ID             uuid.UUID  // The unique identifier for the usage record.
	APIType        APIType    // Which external API was called.
	Endpoint       string     // Endpoint path, e.g. "/v1/directions".
	RequestParams  []byte     // Request parameters as an opaque JSON document.
	ResponseStatus int        // HTTP status of the response, 0 on transport failure.
	ResponseTimeMs int        // Wall-clock latency of the call in milliseconds.
	Success        bool       // Whether the call produced a usable result.
	ErrorMessage   *string    // Provider or transport error, when Success is false.
	ResultCount    *int       // Number of results returned, when applicable.
	RequesterID    *uuid.UUID // Authenticated requester, when known.
	IPAddress      string     // Client IP threaded from the inbound request.
	UserAgent      string     // Client user agent threaded from the inbound request.
	EstimatedCost  int        // Estimated call cost in currency minor units.
	CreatedAt      time.Time  // Timestamp of when this record was created.
}
