package sigv4

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2015, 8, 30, 12, 36, 0, 0, time.UTC)

func mustParseUrl(t *testing.T, rawUrl string) *url.URL {
	u, err := url.Parse(rawUrl)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestCanonicalRequestGetPayloadHash(t *testing.T) {
	u := mustParseUrl(t,
		"https://route53.amazonaws.com/2013-04-01/hostedzone?maxitems=100")
	lines := strings.Split(CanonicalRequest("GET", u, "20150830T123600Z"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got: %d", len(lines))
	}
	emptyHash := sha256.Sum256(nil)
	if lines[6] != hex.EncodeToString(emptyHash[:]) {
		t.Errorf("GET payload hash is not SHA256(\"\"): %s", lines[6])
	}
	if lines[0] != "GET" || lines[1] != "/2013-04-01/hostedzone" {
		t.Errorf("bad method/path lines: %q %q", lines[0], lines[1])
	}
	if lines[2] != "maxitems=100" {
		t.Errorf("bad query line: %q", lines[2])
	}
	if lines[3] != "host:route53.amazonaws.com" ||
		lines[4] != "x-amz-date:20150830T123600Z" ||
		lines[5] != "" {
		t.Errorf("bad canonical headers: %q", lines[3:6])
	}
}

func TestCanonicalRequestNonGetPayloadHash(t *testing.T) {
	u := mustParseUrl(t,
		"https://route53.amazonaws.com/2013-04-01/hostedzone?marker=Z1")
	lines := strings.Split(CanonicalRequest("POST", u, "20150830T123600Z"), "\n")
	queryHash := sha256.Sum256([]byte("marker=Z1"))
	if lines[len(lines)-2] != signedHeaders {
		t.Errorf("bad signed headers line: %q", lines[len(lines)-2])
	}
	if lines[len(lines)-1] != hex.EncodeToString(queryHash[:]) {
		t.Errorf("non-GET payload hash is not SHA256(query): %s",
			lines[len(lines)-1])
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	key := DeriveKey("secret", "20150830", "us-east-1", "route53")
	if len(key) != sha256.Size {
		t.Fatalf("expected %d-byte key, got: %d", sha256.Size, len(key))
	}
	if !bytes.Equal(key, DeriveKey("secret", "20150830", "us-east-1",
		"route53")) {
		t.Error("identical inputs produced different keys")
	}
	variants := [][4]string{
		{"secret2", "20150830", "us-east-1", "route53"},
		{"secret", "20150831", "us-east-1", "route53"},
		{"secret", "20150830", "us-west-2", "route53"},
		{"secret", "20150830", "us-east-1", "sts"},
	}
	for _, v := range variants {
		if bytes.Equal(key, DeriveKey(v[0], v[1], v[2], v[3])) {
			t.Errorf("changed input %v produced an identical key", v)
		}
	}
}

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
		"https://route53.amazonaws.com/2013-04-01/hostedzone", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := signer.Sign(req, testTime); err != nil {
		t.Fatal(err)
	}
	if req.Header.Get("x-amz-date") != "20150830T123600Z" {
		t.Errorf("bad x-amz-date: %s", req.Header.Get("x-amz-date"))
	}
	authorization := req.Header.Get("Authorization")
	wantPrefix := "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/" +
		"20150830/us-east-1/route53/aws4_request, " +
		"SignedHeaders=host;x-amz-date, Signature="
	if !strings.HasPrefix(authorization, wantPrefix) {
		t.Errorf("bad Authorization header: %s", authorization)
	}
	signature := strings.TrimPrefix(authorization, wantPrefix)
	if len(signature) != 64 {
		t.Errorf("signature is not a 32-byte hex digest: %s", signature)
	}
	if _, err := hex.DecodeString(signature); err != nil {
		t.Errorf("signature is not hex: %s", signature)
	}
}

func TestSignIsStableForFixedTime(t *testing.T) {
	signer, err := New(Params{
		AccessKeyId:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI",
	})
	if err != nil {
		t.Fatal(err)
	}
	var signatures [2]string
	for i := range signatures {
		req, err := http.NewRequest("GET",
			"https://route53.amazonaws.com/2013-04-01/hostedzone", nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := signer.Sign(req, testTime); err != nil {
			t.Fatal(err)
		}
		signatures[i] = req.Header.Get("Authorization")
	}
	if signatures[0] != signatures[1] {
		t.Errorf("signing is not deterministic: %s versus %s",
			signatures[0], signatures[1])
	}
}
