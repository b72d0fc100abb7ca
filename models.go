package cif

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tphakala/go-cif/internal/api"
)

// TLP is a traffic-light-protocol sharing marker.
type TLP string

const (
	TLPWhite TLP = "white"
	TLPGreen TLP = "green"
	TLPAmber TLP = "amber"
	TLPRed   TLP = "red"
)

// Observable is a single threat-intelligence record: an indicator plus its
// descriptive metadata. Any JSON-serializable shape the remote accepts can
// be expressed through Extra for fields not modeled here.
type Observable struct {
	Observable  string   `json:"observable"`
	OType       string   `json:"otype,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	TLP         TLP      `json:"tlp,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
	Provider    string   `json:"provider,omitempty"`
	Group       string   `json:"group,omitempty"`
	Description string   `json:"description,omitempty"`
	Portlist    string   `json:"portlist,omitempty"`
	Protocol    string   `json:"protocol,omitempty"`
	FirstTime   string   `json:"firsttime,omitempty"`
	LastTime    string   `json:"lasttime,omitempty"`
	ReportTime  string   `json:"reporttime,omitempty"`

	// Extra holds provider-specific submission fields not modeled above.
	// It is flattened into the record on the wire; modeled fields win on
	// key collisions.
	Extra map[string]any `json:"-"`
}

// MarshalJSON implements json.Marshaler, merging Extra into the record.
func (o *Observable) MarshalJSON() ([]byte, error) {
	type plain Observable

	data, err := json.Marshal((*plain)(o))
	if err != nil {
		return nil, err
	}
	if len(o.Extra) == 0 {
		return data, nil
	}

	merged := make(map[string]any, len(o.Extra)+8)
	for k, v := range o.Extra {
		merged[k] = v
	}
	var modeled map[string]any
	if err := json.Unmarshal(data, &modeled); err != nil {
		return nil, err
	}
	for k, v := range modeled {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// SearchFilter defines read-request criteria. Zero-valued fields are
// omitted from the encoded query string; parameters encode in the field
// order below, after the leading token.
type SearchFilter struct {
	// Query is the indicator or free-text query (wire key "q").
	Query string

	// ID selects a single record by identifier.
	ID string

	// Tags restricts results to records carrying all listed tags.
	Tags []string

	// Confidence is the minimum confidence to return.
	Confidence float64

	// Limit caps the number of returned records.
	Limit int

	// Provider restricts results to a single provider.
	Provider string

	// Group restricts results to a sharing group.
	Group string

	// OType restricts results to an observable type (ipv4, fqdn, url...).
	OType string

	// Token overrides the client's configured token for this request.
	Token string
}

// params renders the filter as ordered query parameters. The token, when
// set, is included here and moved to the front by the transport.
func (f *SearchFilter) params() *api.Params {
	p := api.NewParams()
	if f == nil {
		return p
	}
	p.Set("token", f.Token)
	p.Set("q", f.Query)
	p.Set("id", f.ID)
	p.Set("tags", strings.Join(f.Tags, ","))
	p.Set("confidence", f.Confidence)
	p.Set("limit", f.Limit)
	p.Set("provider", f.Provider)
	p.Set("group", f.Group)
	p.Set("otype", f.OType)
	return p
}

// idParams renders the reduced parameter set used by SearchByID: only the
// record ID and an optional token override survive; every other filter
// field is discarded.
func (f *SearchFilter) idParams() *api.Params {
	p := api.NewParams()
	if f == nil {
		return p
	}
	p.Set("token", f.Token)
	p.Set("id", f.ID)
	return p
}

// SubmitResult is the outcome of a successful write request: the decoded
// response payload plus the raw response metadata for callers that need
// status or headers.
type SubmitResult struct {
	// Payload is the decoded JSON response body, or nil when the remote
	// returned an empty body.
	Payload any

	StatusCode int
	Reason     string
	Headers    http.Header
}
