package ezid

import (
	"net/url"
	"strings"

	"github.com/c360studio/doikit/metadata"
)

// Line keys of the registry protocol.
const (
	successPrefix    = "success:"
	errorPrefix      = "error:"
	dataciteField    = "datacite: "
	targetField      = "_target: "
	noSuchIdentifier = "no such identifier"
)

// errorBody returns the trimmed message of an error response body, and
// whether the body is an error response at all.
func errorBody(body string) (string, bool) {
	if !strings.HasPrefix(body, errorPrefix) {
		return "", false
	}
	return strings.TrimSpace(body[len(errorPrefix):]), true
}

// successSummary returns the trimmed text following the success line's key,
// and whether the body is a success response.
func successSummary(body string) (string, bool) {
	if !strings.HasPrefix(body, successPrefix) {
		return "", false
	}
	return strings.TrimSpace(body[len(successPrefix):]), true
}

// fetchFields pulls the datacite and _target lines out of a fetch response
// body. The datacite payload is percent-decoded.
func fetchFields(body string) (dataciteXML, landingPage string, err error) {
	for _, line := range strings.Split(body, "\n") {
		if v, ok := strings.CutPrefix(line, dataciteField); ok {
			dataciteXML, err = url.PathUnescape(v)
			if err != nil {
				return "", "", &RequestError{Message: "undecodable datacite field: " + err.Error()}
			}
		}
		if v, ok := strings.CutPrefix(line, targetField); ok {
			landingPage = v
		}
	}
	if dataciteXML == "" {
		return "", "", &RequestError{Message: "no datacite field in request response"}
	}
	if landingPage == "" {
		return "", "", &RequestError{Message: "no landing page in request response"}
	}
	return dataciteXML, landingPage, nil
}

// mintedIdentifier scans a mint success summary (pipe-delimited tokens) for
// the doi: token and returns the minted identifier.
func mintedIdentifier(summary string) (string, bool) {
	for _, part := range strings.Split(summary, "|") {
		part = strings.TrimSpace(part)
		if id, ok := strings.CutPrefix(part, "doi:"); ok {
			return id, true
		}
	}
	return "", false
}

// requestBody builds a mint/update request body: the landing page on a
// _target line followed by the rendered, percent-encoded document on a
// datacite line. An empty identifier renders the to-be-assigned sentinel.
func requestBody(landingPage, identifier string, md metadata.Metadata) (string, error) {
	xmlText, err := metadata.Render(identifier, md)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(targetField)
	b.WriteString(landingPage)
	b.WriteString("\n")
	b.WriteString(dataciteField)
	b.WriteString(url.PathEscape(xmlText))
	b.WriteString("\n")
	return b.String(), nil
}
