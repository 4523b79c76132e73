package route53

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Cloud-Foundations/golib/pkg/log/nulllogger"
	"github.com/Cloud-Foundations/route53api/pkg/route53/sigv3"
	"github.com/Cloud-Foundations/route53api/pkg/route53/sigv4"
)

type apiVersion interface {
	// String returns the dashed version, e.g. "2013-04-01".
	String() string
	// namespace returns the XML namespace for request bodies.
	namespace() string
	// sign attaches authentication headers to the outbound request.
	sign(req *http.Request, now time.Time) error
}

type version20130401 struct {
	signer *sigv4.Signer
}

type version20110505 struct {
	signer *sigv3.Signer
}

func (version20130401) String() string { return "2013-04-01" }

func (v version20130401) namespace() string {
	return "https://route53.amazonaws.com/doc/" + v.String() + "/"
}

func (v version20130401) sign(req *http.Request, now time.Time) error {
	return v.signer.Sign(req, now)
}

func (version20110505) String() string { return "2011-05-05" }

func (v version20110505) namespace() string {
	return "https://route53.amazonaws.com/doc/" + v.String() + "/"
}

func (v version20110505) sign(req *http.Request, now time.Time) error {
	return v.signer.Sign(req, now)
}

func newClient(params Params) (*Client, error) {
	if params.AccessKeyId == "" {
		return nil, errors.New("no access key ID specified")
	}
	if params.SecretAccessKey == "" {
		return nil, errors.New("no secret access key specified")
	}
	if params.Endpoint == "" {
		params.Endpoint = DefaultEndpoint
	} else {
		params.Endpoint = strings.TrimSuffix(params.Endpoint, "/")
	}
	if params.HttpClient == nil {
		params.HttpClient = http.DefaultClient
	}
	if params.Logger == nil {
		params.Logger = nulllogger.New()
	}
	version, err := resolveApiVersion(params)
	if err != nil {
		return nil, err
	}
	return &Client{params: params, version: version}, nil
}

func resolveApiVersion(params Params) (apiVersion, error) {
	switch normalizeApiVersion(params.ApiVersion) {
	case "20130401":
		signer, err := sigv4.New(sigv4.Params{
			AccessKeyId:     params.AccessKeyId,
			SecretAccessKey: params.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return version20130401{signer: signer}, nil
	case "20110505":
		signer, err := sigv3.New(sigv3.Params{
			AccessKeyId:     params.AccessKeyId,
			SecretAccessKey: params.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return version20110505{signer: signer}, nil
	default:
		return nil, fmt.Errorf("unsupported API version: %s",
			params.ApiVersion)
	}
}

// normalizeApiVersion reduces any dotted/dashed form to digits only, so
// "2013-04-01", "2013.04.01" and "20130401" are equivalent.
func normalizeApiVersion(version string) string {
	if version == "" {
		version = DefaultApiVersion
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, version)
}

func stripZoneId(zoneId string) string {
	return strings.TrimPrefix(zoneId, "/hostedzone/")
}

func stripChangeId(changeId string) string {
	return strings.TrimPrefix(changeId, "/change/")
}

func normalizeDomainName(name string) string {
	if name == "" || name[len(name)-1] == '.' {
		return name
	}
	return name + "."
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("HTTP %d from Route 53: %s", e.StatusCode,
			e.Message)
	}
	return fmt.Sprintf("%s: %s (type: %s, HTTP %d)", e.Code, e.Message,
		e.Type, e.StatusCode)
}

// doRequest issues one signed request against the versioned API path and
// returns the response body. Non-2xx responses are decoded into an *Error
// which is also retained for LastError.
func (c *Client) doRequest(method, resource string, query url.Values,
	requestBody []byte) ([]byte, error) {
	requestUrl := c.params.Endpoint + "/" + c.version.String() + resource
	if len(query) > 0 {
		requestUrl += "?" + query.Encode()
	}
	var bodyReader io.Reader
	if requestBody != nil {
		bodyReader = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequest(method, requestUrl, bodyReader)
	if err != nil {
		return nil, err
	}
	if requestBody != nil {
		req.Header.Set("Content-Type", "text/xml")
	}
	if err := c.version.sign(req, time.Now()); err != nil {
		return nil, err
	}
	c.params.Logger.Debugf(1, "route53: %s %s\n", method, requestUrl)
	resp, err := c.params.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		webError := extractError(resp.StatusCode, responseBody)
		c.lastError = webError
		c.params.Logger.Debugf(1, "route53: %s %s failed: %s\n", method,
			resource, webError)
		return nil, webError
	}
	return responseBody, nil
}
