package ezid

import (
	"context"
	"fmt"
	"strings"

	"github.com/c360studio/doikit/metadata"
)

// Record is a DOI bound to the registry: an identifier, its landing page,
// and its metadata, consistent with the registry's last confirmed state.
// Records are produced by Client.Load and Client.Mint. There is no delete;
// identifiers are permanent once minted.
type Record struct {
	client *Client

	Identifier  string
	LandingPage string
	Metadata    metadata.Metadata
}

// IsTest reports whether the record lives under the registry's designated
// test prefix and is therefore non-persistent.
func (r *Record) IsTest() bool {
	return strings.HasPrefix(r.Identifier, TestPrefix)
}

// CopyMetadata returns a deep copy of the record's metadata, safe for the
// caller to mutate and feed back into UpdateMetadata.
func (r *Record) CopyMetadata() metadata.Metadata {
	return r.Metadata.Copy()
}

// XML renders the record's kernel-3 document.
func (r *Record) XML() (string, error) {
	return metadata.Render(r.Identifier, r.Metadata)
}

// UpdateMetadata validates the new metadata, posts it against the unchanged
// landing page, and replaces the in-memory metadata only after the registry
// confirms success.
func (r *Record) UpdateMetadata(ctx context.Context, raw any) error {
	md, err := metadata.Validate(raw)
	if err != nil {
		return err
	}
	if err := r.post(ctx, r.LandingPage, md); err != nil {
		return err
	}
	r.Metadata = md
	return nil
}

// UpdateLandingPage posts the new landing page against the unchanged
// metadata and replaces the in-memory landing page only after the registry
// confirms success.
func (r *Record) UpdateLandingPage(ctx context.Context, landingPage string) error {
	if err := r.post(ctx, landingPage, r.Metadata); err != nil {
		return err
	}
	r.LandingPage = landingPage
	return nil
}

func (r *Record) post(ctx context.Context, landingPage string, md metadata.Metadata) error {
	body, err := requestBody(landingPage, r.Identifier, md)
	if err != nil {
		return err
	}
	resp, err := r.client.transport.Post(ctx, r.client.identifierURL(r.Identifier), r.client.creds, textPlain, body)
	if err != nil {
		return fmt.Errorf("update identifier %s: %w", r.Identifier, err)
	}
	if msg, ok := errorBody(resp.Body); ok {
		return &RequestError{Message: msg}
	}
	if _, ok := successSummary(resp.Body); !ok {
		return &UpdateError{Message: "bad content returned from registry"}
	}
	return nil
}

// Exists checks the public resolver for the record's identifier.
func (r *Record) Exists(ctx context.Context) (bool, error) {
	return r.client.Exists(ctx, r.Identifier)
}
