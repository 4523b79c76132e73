package sigv3

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"
	"time"
)

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(Params{SecretAccessKey: "secret"}); err == nil {
		t.Error("no error with missing access key ID")
	}
	if _, err := New(Params{AccessKeyId: "AKID"}); err == nil {
		t.Error("no error with missing secret access key")
	}
}

func TestSignSetsHeaders(t *testing.T) {
	signer, err := New(Params{
		AccessKeyId:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI",
	})
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest("GET",
		"https://route53.amazonaws.com/2011-05-05/hostedzone", nil)
	if err != nil {
		t.Fatal(err)
	}
	testTime := time.Date(2011, 5, 5, 12, 0, 0, 0, time.UTC)
	if err := signer.Sign(req, testTime); err != nil {
		t.Fatal(err)
	}
	date := req.Header.Get("Date")
	if date != "Thu, 05 May 2011 12:00:00 GMT" {
		t.Errorf("bad Date header: %s", date)
	}
	mac := hmac.New(sha256.New, []byte("wJalrXUtnFEMI"))
	mac.Write([]byte(date))
	want := "AWS3-HTTPS AWSAccessKeyId=AKIDEXAMPLE,Algorithm=HmacSHA256," +
		"Signature=" + base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if got := req.Header.Get("X-Amzn-Authorization"); got != want {
		t.Errorf("expected: %s but got: %s", want, got)
	}
}
