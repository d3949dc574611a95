// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	x509certs "github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/x509/certs"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const timeLayout = "2006-01-02 15:04 UTC"

// label names an endpoint in progress lines, e.g.
// "SSL Endpoint tokyo-1050 (tokyo-1050.herokussl.com)".
func label(e endpoint.Endpoint) string {
	s := e.Kind.String() + " Endpoint " + e.Name
	if e.CName != "" {
		s += " (" + e.CName + ")"
	}
	return s
}

// certInfo returns the platform summary of e, decoding the stored chain
// when the platform sent none.
func certInfo(e endpoint.Endpoint) (*endpoint.CertInfo, error) {
	if e.CertInfo != nil {
		return e.CertInfo, nil
	}

	d, err := x509certs.New().Describe([]byte(e.Certificate))
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate of %s: %w", e.Name, err)
	}
	return &endpoint.CertInfo{
		Subject:     d.Subject,
		Issuer:      d.Issuer,
		CertDomains: d.Domains,
		StartsAt:    d.StartsAt,
		ExpiresAt:   d.ExpiresAt,
		SelfSigned:  d.SelfSigned,
	}, nil
}

func trustLine(info *endpoint.CertInfo) string {
	switch {
	case info.SelfSigned:
		return "SSL certificate is self signed."
	case info.CASigned:
		return "SSL certificate is verified by a root authority."
	default:
		return "SSL certificate is not trusted."
	}
}

// writeDetails prints the certificate block of e under heading.
func writeDetails(w io.Writer, heading string, e endpoint.Endpoint) error {
	info, err := certInfo(e)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(heading + "\n")
	fmt.Fprintf(&b, "Common Name(s): %s\n", strings.Join(info.CertDomains, ", "))
	fmt.Fprintf(&b, "Expires At:     %s\n", info.ExpiresAt.UTC().Format(timeLayout))
	fmt.Fprintf(&b, "Issuer:         %s\n", info.Issuer)
	fmt.Fprintf(&b, "Starts At:      %s\n", info.StartsAt.UTC().Format(timeLayout))
	fmt.Fprintf(&b, "Subject:        %s\n", info.Subject)
	b.WriteString(trustLine(info) + "\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// renderEndpoints writes the endpoint listing as a markdown table.
func renderEndpoints(w io.Writer, endpoints []endpoint.Endpoint) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Name", "Endpoint", "Common Name(s)", "Expires", "Trusted"})

	var rows [][]string
	for _, e := range endpoints {
		cname := e.CName
		if e.Kind == endpoint.SNI {
			cname = "(Not applicable for SNI)"
		}

		domains, expires, trusted := "", "", ""
		if e.CertInfo != nil {
			domains = strings.Join(e.CertInfo.CertDomains, ", ")
			expires = e.CertInfo.ExpiresAt.UTC().Format(timeLayout)
			trusted = fmt.Sprintf("%t", e.CertInfo.CASigned)
		}

		rows = append(rows, []string{e.Name, cname, domains, expires, trusted})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
