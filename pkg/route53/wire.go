package route53

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Request documents. Struct field order is the element order Route 53
// requires; optional elements are pointers or omitempty strings so they
// vanish entirely when unset.

type hostedZoneConfigXml struct {
	Comment string `xml:"Comment,omitempty"`
}

type createHostedZoneRequest struct {
	XMLName          xml.Name             `xml:"CreateHostedZoneRequest"`
	Xmlns            string               `xml:"xmlns,attr"`
	Name             string               `xml:"Name"`
	CallerReference  string               `xml:"CallerReference"`
	HostedZoneConfig *hostedZoneConfigXml `xml:"HostedZoneConfig,omitempty"`
}

type changeRecordSetsRequest struct {
	XMLName     xml.Name       `xml:"ChangeResourceRecordSetsRequest"`
	Xmlns       string         `xml:"xmlns,attr"`
	ChangeBatch changeBatchXml `xml:"ChangeBatch"`
}

type changeBatchXml struct {
	Comment string      `xml:"Comment,omitempty"`
	Changes []changeXml `xml:"Changes>Change"`
}

type changeXml struct {
	Action    string       `xml:"Action"`
	RecordSet recordSetXml `xml:"ResourceRecordSet"`
}

type recordSetXml struct {
	Name          string          `xml:"Name"`
	Type          string          `xml:"Type"`
	SetIdentifier string          `xml:"SetIdentifier,omitempty"`
	Weight        *int64          `xml:"Weight,omitempty"`
	Region        string          `xml:"Region,omitempty"`
	Failover      string          `xml:"Failover,omitempty"`
	TTL           *int64          `xml:"TTL,omitempty"`
	Records       []recordXml     `xml:"ResourceRecords>ResourceRecord"`
	AliasTarget   *aliasTargetXml `xml:"AliasTarget,omitempty"`
	HealthCheckId string          `xml:"HealthCheckId,omitempty"`
}

type recordXml struct {
	Value string `xml:"Value"`
}

type aliasTargetXml struct {
	HostedZoneId         string `xml:"HostedZoneId"`
	DNSName              string `xml:"DNSName"`
	EvaluateTargetHealth bool   `xml:"EvaluateTargetHealth"`
}

// Response documents. Repeatable elements are slice fields, so a response
// holding exactly one never collapses to a scalar.

type hostedZoneXml struct {
	Id                     string              `xml:"Id"`
	Name                   string              `xml:"Name"`
	CallerReference        string              `xml:"CallerReference"`
	Config                 hostedZoneConfigXml `xml:"Config"`
	ResourceRecordSetCount int64               `xml:"ResourceRecordSetCount"`
}

type changeInfoXml struct {
	Id          string `xml:"Id"`
	Status      string `xml:"Status"`
	SubmittedAt string `xml:"SubmittedAt"`
}

type delegationSetXml struct {
	NameServers []string `xml:"NameServers>NameServer"`
}

type listHostedZonesResponse struct {
	XMLName     xml.Name        `xml:"ListHostedZonesResponse"`
	HostedZones []hostedZoneXml `xml:"HostedZones>HostedZone"`
	Marker      string          `xml:"Marker"`
	IsTruncated bool            `xml:"IsTruncated"`
	NextMarker  string          `xml:"NextMarker"`
	MaxItems    string          `xml:"MaxItems"`
}

type getHostedZoneResponse struct {
	XMLName       xml.Name         `xml:"GetHostedZoneResponse"`
	HostedZone    hostedZoneXml    `xml:"HostedZone"`
	DelegationSet delegationSetXml `xml:"DelegationSet"`
}

type createHostedZoneResponse struct {
	XMLName       xml.Name         `xml:"CreateHostedZoneResponse"`
	HostedZone    hostedZoneXml    `xml:"HostedZone"`
	ChangeInfo    changeInfoXml    `xml:"ChangeInfo"`
	DelegationSet delegationSetXml `xml:"DelegationSet"`
}

type deleteHostedZoneResponse struct {
	XMLName    xml.Name      `xml:"DeleteHostedZoneResponse"`
	ChangeInfo changeInfoXml `xml:"ChangeInfo"`
}

type changeRecordSetsResponse struct {
	XMLName    xml.Name      `xml:"ChangeResourceRecordSetsResponse"`
	ChangeInfo changeInfoXml `xml:"ChangeInfo"`
}

type getChangeResponse struct {
	XMLName    xml.Name      `xml:"GetChangeResponse"`
	ChangeInfo changeInfoXml `xml:"ChangeInfo"`
}

type listRecordSetsResponse struct {
	XMLName              xml.Name       `xml:"ListResourceRecordSetsResponse"`
	RecordSets           []recordSetXml `xml:"ResourceRecordSets>ResourceRecordSet"`
	IsTruncated          bool           `xml:"IsTruncated"`
	NextRecordName       string         `xml:"NextRecordName"`
	NextRecordType       string         `xml:"NextRecordType"`
	NextRecordIdentifier string         `xml:"NextRecordIdentifier"`
	MaxItems             string         `xml:"MaxItems"`
}

type errorResponse struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Err     struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
}

func marshalRequestBody(document interface{}) ([]byte, error) {
	body, err := xml.Marshal(document)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func buildCreateHostedZoneBody(xmlns, name, callerReference,
	comment string) ([]byte, error) {
	request := createHostedZoneRequest{
		Xmlns:           xmlns,
		Name:            name,
		CallerReference: callerReference,
	}
	if comment != "" {
		request.HostedZoneConfig = &hostedZoneConfigXml{Comment: comment}
	}
	return marshalRequestBody(request)
}

func buildChangeBatchBody(xmlns string, batch ChangeBatch) ([]byte, error) {
	request := changeRecordSetsRequest{
		Xmlns:       xmlns,
		ChangeBatch: changeBatchXml{Comment: batch.Comment},
	}
	for index, change := range batch.Changes {
		wireChange, err := change.toWire()
		if err != nil {
			return nil, fmt.Errorf("change %d: %s", index, err)
		}
		request.ChangeBatch.Changes = append(request.ChangeBatch.Changes,
			wireChange)
	}
	return marshalRequestBody(request)
}

func (change Change) toWire() (changeXml, error) {
	action := strings.ToUpper(change.Action)
	switch action {
	case ActionCreate, ActionDelete, ActionUpsert:
	default:
		return changeXml{}, fmt.Errorf("invalid action: %s", change.Action)
	}
	recordSet, err := change.RecordSet.toWire()
	if err != nil {
		return changeXml{}, err
	}
	return changeXml{Action: action, RecordSet: recordSet}, nil
}

func (rrs ResourceRecordSet) toWire() (recordSetXml, error) {
	if rrs.Name == "" {
		return recordSetXml{}, errors.New("no record name specified")
	}
	if rrs.Type == "" {
		return recordSetXml{}, errors.New("no record type specified")
	}
	wire := recordSetXml{
		Name:          normalizeDomainName(rrs.Name),
		Type:          rrs.Type,
		SetIdentifier: rrs.SetIdentifier,
		Weight:        rrs.Weight,
		Region:        rrs.Region,
		Failover:      rrs.Failover,
		HealthCheckId: rrs.HealthCheckId,
	}
	records := rrs.Records
	if len(records) < 1 && rrs.Value != "" {
		records = []string{rrs.Value}
	}
	if rrs.AliasTarget != nil {
		wire.AliasTarget = &aliasTargetXml{
			HostedZoneId:         stripZoneId(rrs.AliasTarget.HostedZoneId),
			DNSName:              rrs.AliasTarget.DnsName,
			EvaluateTargetHealth: rrs.AliasTarget.EvaluateTargetHealth,
		}
		return wire, nil
	}
	if len(records) < 1 {
		return recordSetXml{},
			errors.New("no records, value or alias target specified")
	}
	ttl := rrs.TTL
	wire.TTL = &ttl
	for _, record := range records {
		wire.Records = append(wire.Records, recordXml{Value: record})
	}
	return wire, nil
}

func (zone hostedZoneXml) toHostedZone() HostedZone {
	return HostedZone{
		Id:                     zone.Id,
		Name:                   zone.Name,
		CallerReference:        zone.CallerReference,
		Config:                 HostedZoneConfig{Comment: zone.Config.Comment},
		ResourceRecordSetCount: zone.ResourceRecordSetCount,
	}
}

func (info changeInfoXml) toChangeInfo() ChangeInfo {
	return ChangeInfo{
		Id:          info.Id,
		Status:      info.Status,
		SubmittedAt: info.SubmittedAt,
	}
}

func (wire recordSetXml) toRecordSet() ResourceRecordSet {
	rrs := ResourceRecordSet{
		Name:          wire.Name,
		Type:          wire.Type,
		SetIdentifier: wire.SetIdentifier,
		Weight:        wire.Weight,
		Region:        wire.Region,
		Failover:      wire.Failover,
		HealthCheckId: wire.HealthCheckId,
	}
	if wire.TTL != nil {
		rrs.TTL = *wire.TTL
	}
	for _, record := range wire.Records {
		rrs.Records = append(rrs.Records, record.Value)
	}
	if wire.AliasTarget != nil {
		rrs.AliasTarget = &AliasTarget{
			HostedZoneId:         wire.AliasTarget.HostedZoneId,
			DnsName:              wire.AliasTarget.DNSName,
			EvaluateTargetHealth: wire.AliasTarget.EvaluateTargetHealth,
		}
	}
	return rrs
}

// extractError decodes a Route 53 error envelope. Bodies which are not the
// expected XML still produce an *Error carrying the status code and raw body.
func extractError(statusCode int, body []byte) *Error {
	var response errorResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return &Error{
			StatusCode: statusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return &Error{
		Type:       response.Err.Type,
		Code:       response.Err.Code,
		Message:    response.Err.Message,
		StatusCode: statusCode,
	}
}
