package route53

import (
	"encoding/xml"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) listResourceRecordSets(zoneId string,
	options *ListRecordSetsOptions) (*RecordSetList, error) {
	zoneId = stripZoneId(zoneId)
	if zoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	query := make(url.Values)
	if options != nil {
		if options.Name != "" {
			query.Set("name", options.Name)
		}
		if options.Type != "" {
			query.Set("type", options.Type)
		}
		if options.Identifier != "" {
			query.Set("identifier", options.Identifier)
		}
		if options.MaxItems > 0 {
			query.Set("maxitems",
				strconv.FormatUint(uint64(options.MaxItems), 10))
		}
	}
	body, err := c.doRequest(http.MethodGet, "/hostedzone/"+zoneId+"/rrset",
		query, nil)
	if err != nil {
		return nil, err
	}
	var response listRecordSetsResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	list := &RecordSetList{
		IsTruncated: response.IsTruncated,
		MaxItems:    response.MaxItems,
	}
	if response.IsTruncated {
		list.NextRecordName = response.NextRecordName
		list.NextRecordType = response.NextRecordType
		list.NextRecordIdentifier = response.NextRecordIdentifier
	}
	for _, recordSet := range response.RecordSets {
		list.RecordSets = append(list.RecordSets, recordSet.toRecordSet())
	}
	return list, nil
}

func (c *Client) changeResourceRecordSets(zoneId string, batch ChangeBatch) (
	*ChangeInfo, error) {
	zoneId = stripZoneId(zoneId)
	if zoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	if len(batch.Changes) < 1 {
		return nil, errors.New("no changes specified")
	}
	requestBody, err := buildChangeBatchBody(c.version.namespace(), batch)
	if err != nil {
		return nil, err
	}
	body, err := c.doRequest(http.MethodPost, "/hostedzone/"+zoneId+"/rrset",
		nil, requestBody)
	if err != nil {
		return nil, err
	}
	var response changeRecordSetsResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	changeInfo := response.ChangeInfo.toChangeInfo()
	return &changeInfo, nil
}

func (c *Client) getChange(changeId string) (*ChangeInfo, error) {
	changeId = stripChangeId(changeId)
	if changeId == "" {
		return nil, errors.New("no change ID specified")
	}
	body, err := c.doRequest(http.MethodGet, "/change/"+changeId, nil, nil)
	if err != nil {
		return nil, err
	}
	var response getChangeResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	changeInfo := response.ChangeInfo.toChangeInfo()
	return &changeInfo, nil
}
