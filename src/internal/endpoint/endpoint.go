// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import "time"

// Kind tells which binding model an endpoint belongs to.
type Kind int

const (
	// SSL is the legacy single-certificate endpoint ("ssl-endpoints").
	SSL Kind = iota
	// SNI is the Server Name Indication endpoint ("sni-endpoints").
	SNI
)

// String returns "SSL" or "SNI".
func (k Kind) String() string {
	if k == SNI {
		return "SNI"
	}
	return "SSL"
}

// CertInfo is the certificate summary the platform stores next to an endpoint.
type CertInfo struct {
	Subject     string
	Issuer      string
	CertDomains []string
	StartsAt    time.Time
	ExpiresAt   time.Time
	CASigned    bool
	SelfSigned  bool
}

// Endpoint is one SSL or SNI certificate binding of an app.
type Endpoint struct {
	Name string
	Kind Kind
	// CName is the platform hostname of the endpoint, if it has one.
	CName string
	// Domains lists CName (when set) followed by the certificate domains.
	Domains     []string
	Certificate string
	UpdatedAt   time.Time
	// CertInfo is nil when the platform returned no certificate summary.
	CertInfo *CertInfo
}

// Set is the read-only union of an app's SSL and SNI endpoints.
//
// SSL endpoints always precede SNI endpoints; selection walks the set in
// that order and the first match wins.
type Set struct{ endpoints []Endpoint }

// NewSet builds a Set from the two independently fetched lists.
func NewSet(ssl, sni []Endpoint) Set {
	all := make([]Endpoint, 0, len(ssl)+len(sni))
	all = append(all, ssl...)
	all = append(all, sni...)
	return Set{endpoints: all}
}

// Len returns the number of endpoints in the set.
func (s Set) Len() int { return len(s.endpoints) }

// All returns a copy of the endpoints in selection order.
func (s Set) All() []Endpoint {
	return append([]Endpoint(nil), s.endpoints...)
}
