package ezid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/doikit/metadata"
)

const (
	// DefaultBaseURL is the production EZID API endpoint.
	DefaultBaseURL = "https://ezid.cdlib.org"

	// DefaultResolverURL is the public DOI resolver used for the
	// record-existence check.
	DefaultResolverURL = "http://dx.doi.org"

	// TestPrefix is the registry's designated test shoulder. Identifiers
	// minted under it behave identically but are non-persistent.
	TestPrefix = "10.5072/FK2"
)

// Resolver locations that signal a nonexistent record.
const (
	invalidDOILocation = "http://datacite.org/invalidDOI"
	testPrefixLocation = "http://www.datacite.org/testprefix"
)

// Client talks to one EZID registry endpoint.
type Client struct {
	baseURL     string
	resolverURL string
	creds       Credentials
	transport   Transport
	logger      *slog.Logger
}

// NewClient creates a registry client. Empty baseURL uses DefaultBaseURL;
// a nil transport uses an HTTPTransport with default settings; a nil logger
// uses slog.Default.
func NewClient(baseURL string, creds Credentials, transport Transport, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	if transport == nil {
		transport = NewHTTPTransport(0, logger)
	}
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		resolverURL: DefaultResolverURL,
		creds:       creds,
		transport:   transport,
		logger:      logger,
	}
}

// SetResolverURL overrides the public resolver endpoint used by Exists.
func (c *Client) SetResolverURL(u string) {
	if u != "" {
		c.resolverURL = strings.TrimSuffix(u, "/")
	}
}

var textPlain = map[string]string{"Content-Type": "text/plain"}

func (c *Client) identifierURL(identifier string) string {
	return c.baseURL + "/id/doi:" + identifier
}

// Load fetches an existing identifier from the registry and returns its
// bound record. A registry error line naming "no such identifier" yields
// NotFoundError; any other protocol violation yields RequestError.
func (c *Client) Load(ctx context.Context, identifier string) (*Record, error) {
	resp, err := c.transport.Get(ctx, c.identifierURL(identifier))
	if err != nil {
		return nil, fmt.Errorf("fetch identifier %s: %w", identifier, err)
	}
	if msg, ok := errorBody(resp.Body); ok {
		if strings.Contains(resp.Body, noSuchIdentifier) {
			return nil, &NotFoundError{Identifier: identifier}
		}
		return nil, &RequestError{Message: msg}
	}
	if _, ok := successSummary(resp.Body); !ok {
		return nil, &RequestError{Message: "no success line in request response"}
	}

	dataciteXML, landingPage, err := fetchFields(resp.Body)
	if err != nil {
		return nil, err
	}
	md, err := metadata.Parse(dataciteXML)
	if err != nil {
		return nil, &RequestError{Message: "bad datacite payload: " + err.Error()}
	}

	c.logger.Debug("identifier loaded", slog.String("identifier", identifier))
	return &Record{
		client:      c,
		Identifier:  identifier,
		LandingPage: landingPage,
		Metadata:    md,
	}, nil
}

// Mint validates the metadata, registers a new identifier under the given
// shoulder prefix, and returns the bound record. Validation failures are
// raised before any request is made.
func (c *Client) Mint(ctx context.Context, landingPage string, raw any, prefix string) (*Record, error) {
	md, err := metadata.Validate(raw)
	if err != nil {
		return nil, err
	}
	body, err := requestBody(landingPage, "", md)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Post(ctx, c.baseURL+"/shoulder/doi:"+prefix, c.creds, textPlain, body)
	if err != nil {
		return nil, fmt.Errorf("mint under %s: %w", prefix, err)
	}
	if msg, ok := errorBody(resp.Body); ok {
		return nil, &RequestError{Message: msg}
	}
	summary, ok := successSummary(resp.Body)
	if !ok {
		return nil, &MintError{Message: "bad content returned from registry"}
	}
	identifier, ok := mintedIdentifier(summary)
	if !ok {
		return nil, &MintError{Message: "no identifier returned from registry"}
	}

	c.logger.Info("identifier minted",
		slog.String("identifier", identifier),
		slog.String("prefix", prefix))
	return &Record{
		client:      c,
		Identifier:  identifier,
		LandingPage: landingPage,
		Metadata:    md,
	}, nil
}

// Exists checks the public resolver for an identifier. A 303 redirecting to
// the resolver's invalid-DOI or test-prefix page means the record does not
// exist; anything else means it does.
func (c *Client) Exists(ctx context.Context, identifier string) (bool, error) {
	resp, err := c.transport.Get(ctx, c.resolverURL+"/"+identifier)
	if err != nil {
		return false, fmt.Errorf("resolve identifier %s: %w", identifier, err)
	}
	if resp.StatusCode != 303 {
		return true, nil
	}
	location := resp.Header.Get("Location")
	if location == invalidDOILocation || location == testPrefixLocation {
		return false, nil
	}
	return true, nil
}
