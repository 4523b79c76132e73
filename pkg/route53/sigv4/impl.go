package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	algorithm     = "AWS4-HMAC-SHA256"
	requestSuffix = "aws4_request"
	signedHeaders = "host;x-amz-date"

	timeFormat = "20060102T150405Z"
	dateFormat = "20060102"
)

func newSigner(params Params) (*Signer, error) {
	if params.AccessKeyId == "" {
		return nil, errors.New("no access key ID specified")
	}
	if params.SecretAccessKey == "" {
		return nil, errors.New("no secret access key specified")
	}
	if params.Region == "" {
		params.Region = DefaultRegion
	}
	if params.Service == "" {
		params.Service = DefaultService
	}
	return &Signer{params: params}, nil
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSha256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func buildCanonicalRequest(method string, u *url.URL, amzDate string) string {
	canonicalHeaders := "host:" + u.Host + "\nx-amz-date:" + amzDate + "\n"
	var payload string
	if method != http.MethodGet {
		payload = u.RawQuery
	}
	return strings.Join([]string{
		method,
		u.Path,
		u.RawQuery,
		canonicalHeaders,
		signedHeaders,
		hashHex([]byte(payload)),
	}, "\n")
}

func deriveKey(secret, dateStamp, region, service string) []byte {
	// Each step uses the raw binary HMAC output as the next key.
	key := []byte("AWS4" + secret)
	for _, data := range []string{dateStamp, region, service, requestSuffix} {
		key = hmacSha256(key, []byte(data))
	}
	return key
}

func (s *Signer) sign(req *http.Request, now time.Time) error {
	if req.URL == nil || req.URL.Host == "" {
		return errors.New("request has no host")
	}
	now = now.UTC()
	amzDate := now.Format(timeFormat)
	dateStamp := now.Format(dateFormat)
	credentialScope := strings.Join([]string{
		dateStamp, s.params.Region, s.params.Service, requestSuffix}, "/")
	canonicalRequest := buildCanonicalRequest(req.Method, req.URL, amzDate)
	stringToSign := strings.Join([]string{
		algorithm,
		amzDate,
		credentialScope,
		hashHex([]byte(canonicalRequest)),
	}, "\n")
	signingKey := deriveKey(s.params.SecretAccessKey, dateStamp,
		s.params.Region, s.params.Service)
	signature := hex.EncodeToString(hmacSha256(signingKey,
		[]byte(stringToSign)))
	req.Header.Set("x-amz-date", amzDate)
	req.Header.Set("Authorization", fmt.Sprintf(
		"%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, s.params.AccessKeyId, credentialScope, signedHeaders,
		signature))
	return nil
}
