package sigv3

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"
)

func newSigner(params Params) (*Signer, error) {
	if params.AccessKeyId == "" {
		return nil, errors.New("no access key ID specified")
	}
	if params.SecretAccessKey == "" {
		return nil, errors.New("no secret access key specified")
	}
	return &Signer{params: params}, nil
}

func (s *Signer) sign(req *http.Request, now time.Time) error {
	date := now.UTC().Format(http.TimeFormat)
	mac := hmac.New(sha256.New, []byte(s.params.SecretAccessKey))
	mac.Write([]byte(date))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	req.Header.Set("Date", date)
	req.Header.Set("X-Amzn-Authorization", fmt.Sprintf(
		"AWS3-HTTPS AWSAccessKeyId=%s,Algorithm=HmacSHA256,Signature=%s",
		s.params.AccessKeyId, signature))
	return nil
}
