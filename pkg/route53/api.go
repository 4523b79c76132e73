/*
Package route53 implements a client for the Amazon Route 53 HTTP/XML API.

The client signs each request (Signature Version 4 for the 2013-04-01 API,
AWS3-HTTPS for the older 2011-05-05 API), serializes request bodies into XML
with the element order Route 53 requires, and decodes XML responses into plain
data structures. A Client is not safe for concurrent use by multiple
goroutines: it holds last-error state which would race. Use one Client per
logical caller or synchronize externally.
*/
package route53

import (
	"net/http"

	"github.com/Cloud-Foundations/golib/pkg/log"
)

const (
	DefaultApiVersion = "2013-04-01"
	DefaultEndpoint   = "https://route53.amazonaws.com"
)

// Change actions.
const (
	ActionCreate = "CREATE"
	ActionDelete = "DELETE"
	ActionUpsert = "UPSERT"
)

// ChangeInfo propagation statuses.
const (
	StatusInSync  = "INSYNC"
	StatusPending = "PENDING"
)

type Params struct {
	AccessKeyId     string
	SecretAccessKey string
	// Optional parameters.
	ApiVersion string // "2013-04-01" (default) or "2011-05-05", any form.
	Endpoint   string
	HttpClient *http.Client
	Logger     log.DebugLogger
}

// HostedZone is a container for the DNS records of a domain. The Id is
// returned by the API in its prefixed form (/hostedzone/...).
type HostedZone struct {
	Id                     string
	Name                   string
	CallerReference        string
	Config                 HostedZoneConfig
	ResourceRecordSetCount int64
}

type HostedZoneConfig struct {
	Comment string
}

// ChangeInfo describes the propagation state of a mutation: StatusPending
// until the change has reached all Route 53 name servers, then StatusInSync.
type ChangeInfo struct {
	Id          string
	Status      string
	SubmittedAt string
}

// AliasTarget redirects a record set to another AWS resource instead of
// holding literal values.
type AliasTarget struct {
	HostedZoneId         string
	DnsName              string
	EvaluateTargetHealth bool
}

// ResourceRecordSet is one name+type entry within a hosted zone. Exactly one
// of Records/Value or AliasTarget should be set; SetIdentifier+Weight, Region
// and Failover select the weighted, latency and failover routing flavors.
// Mutual exclusivity of the flavors is not enforced here: Route 53 itself
// validates it.
type ResourceRecordSet struct {
	Name          string
	Type          string
	SetIdentifier string
	Weight        *int64
	Region        string
	Failover      string // PRIMARY or SECONDARY.
	TTL           int64
	Records       []string
	Value         string // Shorthand for a single-entry Records.
	AliasTarget   *AliasTarget
	HealthCheckId string
}

type Change struct {
	Action    string
	RecordSet ResourceRecordSet
}

// ChangeBatch is an atomic, ordered group of changes. The order of Changes is
// preserved on the wire.
type ChangeBatch struct {
	Comment string
	Changes []Change
}

type HostedZoneList struct {
	Zones       []HostedZone
	IsTruncated bool
	NextMarker  string // Only set when IsTruncated.
	MaxItems    string
}

type HostedZoneDetail struct {
	Zone        HostedZone
	NameServers []string
}

type CreatedHostedZone struct {
	Zone        HostedZone
	ChangeInfo  ChangeInfo
	NameServers []string
}

type ListRecordSetsOptions struct {
	Name       string
	Type       string
	Identifier string
	MaxItems   uint
}

type RecordSetList struct {
	RecordSets           []ResourceRecordSet
	IsTruncated          bool
	NextRecordName       string // Only set when IsTruncated.
	NextRecordType       string
	NextRecordIdentifier string
	MaxItems             string
}

// Error is a decoded Route 53 error response.
type Error struct {
	Type       string
	Code       string
	Message    string
	StatusCode int
}

type Client struct {
	params    Params
	version   apiVersion
	lastError *Error
}

// New will create a Client for the configured API version. It returns an
// error if credentials are missing or the API version is unknown.
func New(params Params) (*Client, error) {
	return newClient(params)
}

// LastError returns the error response from the most recent failing API call,
// or nil if no call has failed yet.
func (c *Client) LastError() *Error {
	return c.lastError
}

// ApiVersion returns the resolved API version, e.g. "2013-04-01".
func (c *Client) ApiVersion() string {
	return c.version.String()
}

// ListHostedZones returns one page of hosted zones. An empty marker starts
// from the beginning; maxItems of zero uses the server default page size.
func (c *Client) ListHostedZones(marker string, maxItems uint) (
	*HostedZoneList, error) {
	return c.listHostedZones(marker, maxItems)
}

// GetHostedZone returns the specified zone and its delegation set.
func (c *Client) GetHostedZone(zoneId string) (*HostedZoneDetail, error) {
	return c.getHostedZone(zoneId)
}

// FindHostedZone pages through all hosted zones looking for one whose name
// exactly matches the specified name (normalized to end with a dot). It
// returns (nil, nil) if no zone matches.
func (c *Client) FindHostedZone(name string) (*HostedZone, error) {
	return c.findHostedZone(name)
}

// CreateHostedZone creates a zone. The name is normalized to end with a dot;
// the caller reference must be unique per creation attempt. The comment may
// be empty.
func (c *Client) CreateHostedZone(name, callerReference, comment string) (
	*CreatedHostedZone, error) {
	return c.createHostedZone(name, callerReference, comment)
}

// DeleteHostedZone deletes a zone and returns the change information.
func (c *Client) DeleteHostedZone(zoneId string) (*ChangeInfo, error) {
	return c.deleteHostedZone(zoneId)
}

// ListResourceRecordSets returns one page of record sets in the specified
// zone. The options advance the four-way pagination cursor; nil options start
// from the beginning.
func (c *Client) ListResourceRecordSets(zoneId string,
	options *ListRecordSetsOptions) (*RecordSetList, error) {
	return c.listResourceRecordSets(zoneId, options)
}

// ChangeResourceRecordSets submits a change batch. The order of changes in
// the batch is preserved.
func (c *Client) ChangeResourceRecordSets(zoneId string, batch ChangeBatch) (
	*ChangeInfo, error) {
	return c.changeResourceRecordSets(zoneId, batch)
}

// ChangeResourceRecordSet is the single-change shorthand: it wraps the change
// into a one-element batch and submits it.
func (c *Client) ChangeResourceRecordSet(zoneId string, change Change,
	comment string) (*ChangeInfo, error) {
	return c.changeResourceRecordSets(zoneId,
		ChangeBatch{Comment: comment, Changes: []Change{change}})
}

// GetChange returns the propagation status of a prior mutation.
func (c *Client) GetChange(changeId string) (*ChangeInfo, error) {
	return c.getChange(changeId)
}
