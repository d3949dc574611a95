// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"strings"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificates indicates that the data held no certificate at all.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// Certificate decodes [X.509] certificates stored on certificate endpoints.
//
// [X.509]: https://grokipedia.com/page/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeMultiple decodes every certificate in data, which is either a PEM
// bundle, concatenated DER or a PKCS7 container.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if !c.IsPEM(data) {
		if certs, err := x509.ParseCertificates(data); err == nil && len(certs) > 0 {
			return certs, nil
		}
		return c.decodePKCS7(data)
	}

	var certs []*x509.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != c.certBlockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}

		certs = append(certs, cert)
		data = rest
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// Decode decodes the first certificate in data.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	certs, err := c.DecodeMultiple(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// decodePKCS7 uses Cloudflare's parser for PKCS7 containers.
func (c *Certificate) decodePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}
	return p.Content.SignedData.Certificates, nil
}

// Details is the display summary of a leaf certificate.
type Details struct {
	Subject    string
	Issuer     string
	Domains    []string
	StartsAt   time.Time
	ExpiresAt  time.Time
	SelfSigned bool
}

// Describe decodes the leaf (first) certificate of a chain and summarizes it
// for display. Names are rendered in the slash-separated form the platform
// uses, for example "/C=US/O=Heroku/CN=example.org".
func (c *Certificate) Describe(data []byte) (*Details, error) {
	leaf, err := c.Decode(data)
	if err != nil {
		return nil, err
	}

	domains := append([]string(nil), leaf.DNSNames...)
	if len(domains) == 0 && leaf.Subject.CommonName != "" {
		domains = []string{leaf.Subject.CommonName}
	}

	return &Details{
		Subject:    FormatName(leaf.Subject),
		Issuer:     FormatName(leaf.Issuer),
		Domains:    domains,
		StartsAt:   leaf.NotBefore.UTC(),
		ExpiresAt:  leaf.NotAfter.UTC(),
		SelfSigned: isSelfSigned(leaf),
	}, nil
}

// isSelfSigned reports whether cert names itself as issuer and its own key
// verifies its signature. CA constraints are not required.
func isSelfSigned(cert *x509.Certificate) bool {
	if !bytes.Equal(cert.RawIssuer, cert.RawSubject) {
		return false
	}
	return cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature) == nil
}

// shortNames maps attribute OIDs to their OpenSSL short names.
var shortNames = map[string]string{
	"2.5.4.3":  "CN",
	"2.5.4.6":  "C",
	"2.5.4.7":  "L",
	"2.5.4.8":  "ST",
	"2.5.4.9":  "street",
	"2.5.4.10": "O",
	"2.5.4.11": "OU",
	"2.5.4.17": "postalCode",
}

// FormatName renders name as "/K=V/K=V" in certificate attribute order.
func FormatName(name pkix.Name) string {
	var b strings.Builder
	for _, attr := range name.Names {
		key, ok := shortNames[attr.Type.String()]
		if !ok {
			key = attr.Type.String()
		}
		value, _ := attr.Value.(string)
		b.WriteString("/" + key + "=" + value)
	}
	return b.String()
}
