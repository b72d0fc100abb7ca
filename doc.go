// Package cif provides a native Go client for a CIF-style
// threat-intelligence sharing REST API.
//
// # Features
//
//   - Service-based architecture for expandability
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Injectable leveled logging (no-op by default)
//
// # Quick Start
//
//	client, err := cif.NewClient(
//	    cif.WithRemote("https://cif.example.com"),
//	    cif.WithToken(token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Search observables
//	results, err := client.Observables.Search(ctx, &cif.SearchFilter{
//	    Query:      "93.184.216.34",
//	    Confidence: 65,
//	    Limit:      100,
//	})
//
//	// Submit an indicator
//	_, err = client.Observables.Submit(ctx, &cif.Observable{
//	    Observable: "bad.example.org",
//	    Tags:       []string{"phishing"},
//	    TLP:        cif.TLPGreen,
//	    Confidence: 85,
//	    Provider:   "example.org",
//	})
//
// Clients can also be configured from the environment (CIF_REMOTE,
// CIF_TOKEN, CIF_TIMEOUT, CIF_PROXY, CIF_NO_VERIFY_SSL):
//
//	client, err := cif.NewClientFromEnv()
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As.
// Read failures (any non-200 status) come back as *APIError carrying the
// status code, reason phrase, and raw response body. Write failures
// (status >= 399) are more severe: they are logged at fatal level and
// returned as *SubmissionError.
//
//	results, err := client.Observables.Search(ctx, filter)
//	if err != nil {
//	    var apiErr *cif.APIError
//	    if errors.As(err, &apiErr) {
//	        // Inspect apiErr.StatusCode, apiErr.Body
//	    }
//	}
//
// # Connectivity
//
// Ping measures the round-trip latency to the remote:
//
//	rtt, err := client.Ping(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("round trip: %.3fs\n", rtt.Seconds())
package cif
