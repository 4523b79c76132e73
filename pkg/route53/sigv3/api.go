/*
Package sigv3 signs HTTP requests using the AWS3-HTTPS scheme.

This is the header-based predecessor of Signature Version 4 which the
2011-05-05 Route 53 API accepts: the value of the Date header is HMAC-SHA256
signed with the secret key and presented, base64-encoded, in the
X-Amzn-Authorization header.
*/
package sigv3

import (
	"net/http"
	"time"
)

type Params struct {
	AccessKeyId     string
	SecretAccessKey string
}

type Signer struct {
	params Params
}

// New will create a Signer. It returns an error if credentials are missing.
func New(params Params) (*Signer, error) {
	return newSigner(params)
}

// Sign will set the Date and X-Amzn-Authorization headers on the request for
// the specified time.
func (s *Signer) Sign(req *http.Request, now time.Time) error {
	return s.sign(req, now)
}
