// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package heroku

import (
	"time"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
)

// wireCert is the ssl_cert object of an endpoint.
type wireCert struct {
	CertDomains []string  `json:"cert_domains"`
	StartsAt    time.Time `json:"starts_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Issuer      string    `json:"issuer"`
	Subject     string    `json:"subject"`
	CASigned    bool      `json:"ca_signed?"`
	SelfSigned  bool      `json:"self_signed?"`
}

// wireEndpoint is the JSON shape shared by ssl-endpoints and sni-endpoints.
type wireEndpoint struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CName            string    `json:"cname"`
	CertificateChain string    `json:"certificate_chain"`
	SSLCert          *wireCert `json:"ssl_cert"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (w wireEndpoint) toEndpoint(kind endpoint.Kind) endpoint.Endpoint {
	e := endpoint.Endpoint{
		Name:        w.Name,
		Kind:        kind,
		CName:       w.CName,
		Certificate: w.CertificateChain,
		UpdatedAt:   w.UpdatedAt,
	}

	if w.CName != "" {
		e.Domains = append(e.Domains, w.CName)
	}

	if w.SSLCert != nil {
		e.Domains = append(e.Domains, w.SSLCert.CertDomains...)
		e.CertInfo = &endpoint.CertInfo{
			Subject:     w.SSLCert.Subject,
			Issuer:      w.SSLCert.Issuer,
			CertDomains: append([]string(nil), w.SSLCert.CertDomains...),
			StartsAt:    w.SSLCert.StartsAt,
			ExpiresAt:   w.SSLCert.ExpiresAt,
			CASigned:    w.SSLCert.CASigned,
			SelfSigned:  w.SSLCert.SelfSigned,
		}
	}

	return e
}
