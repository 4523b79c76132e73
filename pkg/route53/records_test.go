package route53

import (
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const listRecordsResponse = `<?xml version="1.0" encoding="UTF-8"?>
<ListResourceRecordSetsResponse xmlns="https://route53.amazonaws.com/doc/2013-04-01/">
  <ResourceRecordSets>
    <ResourceRecordSet>
      <Name>example.com.</Name>
      <Type>NS</Type>
      <TTL>172800</TTL>
      <ResourceRecords>
        <ResourceRecord>
          <Value>ns-2048.awsdns-64.com.</Value>
        </ResourceRecord>
        <ResourceRecord>
          <Value>ns-2049.awsdns-65.net.</Value>
        </ResourceRecord>
      </ResourceRecords>
    </ResourceRecordSet>
    <ResourceRecordSet>
      <Name>www.example.com.</Name>
      <Type>A</Type>
      <SetIdentifier>primary</SetIdentifier>
      <Weight>10</Weight>
      <TTL>60</TTL>
      <ResourceRecords>
        <ResourceRecord>
          <Value>10.0.0.1</Value>
        </ResourceRecord>
      </ResourceRecords>
      <HealthCheckId>hc-1234</HealthCheckId>
    </ResourceRecordSet>
    <ResourceRecordSet>
      <Name>cdn.example.com.</Name>
      <Type>A</Type>
      <AliasTarget>
        <HostedZoneId>Z2FDTNDATAQYW2</HostedZoneId>
        <DNSName>d123.cloudfront.net.</DNSName>
        <EvaluateTargetHealth>true</EvaluateTargetHealth>
      </AliasTarget>
    </ResourceRecordSet>
  </ResourceRecordSets>
  <IsTruncated>true</IsTruncated>
  <NextRecordName>zzz.example.com.</NextRecordName>
  <NextRecordType>CNAME</NextRecordType>
  <NextRecordIdentifier>secondary</NextRecordIdentifier>
  <MaxItems>3</MaxItems>
</ListResourceRecordSetsResponse>
`

const changeRecordsResponse = `<?xml version="1.0" encoding="UTF-8"?>
<ChangeResourceRecordSetsResponse xmlns="https://route53.amazonaws.com/doc/2013-04-01/">
  <ChangeInfo>
    <Id>/change/C2682N5HXP0BZ4</Id>
    <Status>PENDING</Status>
    <SubmittedAt>2023-01-01T01:02:03.004Z</SubmittedAt>
  </ChangeInfo>
</ChangeResourceRecordSetsResponse>
`

const getChangeInSyncResponse = `<?xml version="1.0" encoding="UTF-8"?>
<GetChangeResponse xmlns="https://route53.amazonaws.com/doc/2013-04-01/">
  <ChangeInfo>
    <Id>/change/C2682N5HXP0BZ4</Id>
    <Status>INSYNC</Status>
    <SubmittedAt>2023-01-01T01:02:03.004Z</SubmittedAt>
  </ChangeInfo>
</GetChangeResponse>
`

func TestListResourceRecordSets(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		if r.URL.Path != "/2013-04-01/hostedzone/Z1PA6795UKMFR9/rrset" {
			t.Errorf("bad path: %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("name") != "example.com." ||
			query.Get("type") != "NS" ||
			query.Get("maxitems") != "3" {
			t.Errorf("bad query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(listRecordsResponse))
	}))
	list, err := client.ListResourceRecordSets("Z1PA6795UKMFR9",
		&ListRecordSetsOptions{Name: "example.com.", Type: "NS", MaxItems: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.RecordSets) != 3 {
		t.Fatalf("expected 3 record sets, got: %d", len(list.RecordSets))
	}
	ns := list.RecordSets[0]
	assert.Equal(t, "example.com.", ns.Name)
	assert.Equal(t, "NS", ns.Type)
	assert.Equal(t, int64(172800), ns.TTL)
	assert.Equal(t, []string{"ns-2048.awsdns-64.com.",
		"ns-2049.awsdns-65.net."}, ns.Records)
	weighted := list.RecordSets[1]
	assert.Equal(t, "primary", weighted.SetIdentifier)
	if assert.NotNil(t, weighted.Weight) {
		assert.Equal(t, int64(10), *weighted.Weight)
	}
	assert.Equal(t, "hc-1234", weighted.HealthCheckId)
	alias := list.RecordSets[2]
	if assert.NotNil(t, alias.AliasTarget) {
		assert.Equal(t, "Z2FDTNDATAQYW2", alias.AliasTarget.HostedZoneId)
		assert.Equal(t, "d123.cloudfront.net.", alias.AliasTarget.DnsName)
		assert.True(t, alias.AliasTarget.EvaluateTargetHealth)
	}
	assert.Empty(t, alias.Records)
	if !list.IsTruncated {
		t.Fatal("truncation not surfaced")
	}
	assert.Equal(t, "zzz.example.com.", list.NextRecordName)
	assert.Equal(t, "CNAME", list.NextRecordType)
	assert.Equal(t, "secondary", list.NextRecordIdentifier)
}

func TestListResourceRecordSetsSingletonIsStillAList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		w.Write([]byte(`<ListResourceRecordSetsResponse>` +
			`<ResourceRecordSets><ResourceRecordSet>` +
			`<Name>only.example.com.</Name><Type>A</Type><TTL>300</TTL>` +
			`<ResourceRecords><ResourceRecord><Value>10.0.0.9</Value>` +
			`</ResourceRecord></ResourceRecords>` +
			`</ResourceRecordSet></ResourceRecordSets>` +
			`<IsTruncated>false</IsTruncated>` +
			`</ListResourceRecordSetsResponse>`))
	}))
	list, err := client.ListResourceRecordSets("Z1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.RecordSets) != 1 {
		t.Fatalf("expected 1 record set, got: %d", len(list.RecordSets))
	}
	if len(list.RecordSets[0].Records) != 1 ||
		list.RecordSets[0].Records[0] != "10.0.0.9" {
		t.Errorf("bad records: %v", list.RecordSets[0].Records)
	}
	if list.NextRecordName != "" {
		t.Errorf("cursor set on final page: %s", list.NextRecordName)
	}
}

func TestChangeResourceRecordSets(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		if r.Method != http.MethodPost ||
			r.URL.Path != "/2013-04-01/hostedzone/Z1PA6795UKMFR9/rrset" {
			t.Errorf("bad request: %s %s", r.Method, r.URL.Path)
		}
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		gotBody = string(body)
		w.Write([]byte(changeRecordsResponse))
	}))
	changeInfo, err := client.ChangeResourceRecordSets(
		"/hostedzone/Z1PA6795UKMFR9", ChangeBatch{
			Comment: "rotate web servers",
			Changes: []Change{
				{
					Action: ActionDelete,
					RecordSet: ResourceRecordSet{
						Name:  "www.example.com.",
						Type:  "A",
						TTL:   300,
						Value: "10.0.0.1",
					},
				},
				{
					Action: ActionCreate,
					RecordSet: ResourceRecordSet{
						Name:    "www.example.com.",
						Type:    "A",
						TTL:     300,
						Records: []string{"10.0.0.2", "10.0.0.3"},
					},
				},
			},
		})
	if err != nil {
		t.Fatal(err)
	}
	if changeInfo.Id != "/change/C2682N5HXP0BZ4" ||
		changeInfo.Status != StatusPending {
		t.Errorf("bad change info: %+v", changeInfo)
	}
	deleteIndex := strings.Index(gotBody, "<Action>DELETE</Action>")
	createIndex := strings.Index(gotBody, "<Action>CREATE</Action>")
	if deleteIndex < 0 || createIndex < 0 || deleteIndex > createIndex {
		t.Errorf("change order not preserved:\n%s", gotBody)
	}
	if !strings.Contains(gotBody,
		"<Comment>rotate web servers</Comment>") {
		t.Errorf("missing comment:\n%s", gotBody)
	}
}

func TestChangeResourceRecordSetShorthand(t *testing.T) {
	bodies := make([]string, 0, 2)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		bodies = append(bodies, string(body))
		w.Write([]byte(changeRecordsResponse))
	}))
	_, err := client.ChangeResourceRecordSet("Z1", Change{
		Action: "create",
		RecordSet: ResourceRecordSet{
			Name:  "www.example.com.",
			Type:  "A",
			TTL:   86400,
			Value: "12.34.56.78",
		},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.ChangeResourceRecordSets("Z1", ChangeBatch{
		Changes: []Change{{
			Action: "create",
			RecordSet: ResourceRecordSet{
				Name:    "www.example.com.",
				Type:    "A",
				TTL:     86400,
				Records: []string{"12.34.56.78"},
			},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(bodies) != 2 || bodies[0] != bodies[1] {
		t.Errorf("shorthand and batch bodies differ:\n%s\nversus:\n%s",
			bodies[0], bodies[1])
	}
}

func TestChangeResourceRecordSetsValidation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		t.Error("invalid batch was sent")
	}))
	if _, err := client.ChangeResourceRecordSets("Z1",
		ChangeBatch{}); err == nil {
		t.Error("no error with empty batch")
	}
	if _, err := client.ChangeResourceRecordSets("",
		ChangeBatch{Changes: []Change{{}}}); err == nil {
		t.Error("no error with missing zone ID")
	}
}

func TestGetChange(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		if r.URL.Path != "/2013-04-01/change/C2682N5HXP0BZ4" {
			t.Errorf("bad path: %s", r.URL.Path)
		}
		w.Write([]byte(getChangeInSyncResponse))
	}))
	changeInfo, err := client.GetChange("/change/C2682N5HXP0BZ4")
	if err != nil {
		t.Fatal(err)
	}
	if changeInfo.Status != StatusInSync {
		t.Errorf("bad status: %s", changeInfo.Status)
	}
}

func TestGetChangeRequiresId(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter,
		r *http.Request) {
		t.Error("request issued with no change ID")
	}))
	if _, err := client.GetChange(""); err == nil {
		t.Error("no error with missing change ID")
	}
}
