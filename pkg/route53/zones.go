package route53

import (
	"encoding/xml"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// findPageSize is the page size FindHostedZone requests; a page shorter than
// this is treated as the final page.
const findPageSize = 100

func (c *Client) listHostedZones(marker string, maxItems uint) (
	*HostedZoneList, error) {
	query := make(url.Values)
	if marker != "" {
		query.Set("marker", stripZoneId(marker))
	}
	if maxItems > 0 {
		query.Set("maxitems", strconv.FormatUint(uint64(maxItems), 10))
	}
	body, err := c.doRequest(http.MethodGet, "/hostedzone", query, nil)
	if err != nil {
		return nil, err
	}
	var response listHostedZonesResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	list := &HostedZoneList{
		IsTruncated: response.IsTruncated,
		MaxItems:    response.MaxItems,
	}
	if response.IsTruncated {
		list.NextMarker = response.NextMarker
	}
	for _, zone := range response.HostedZones {
		list.Zones = append(list.Zones, zone.toHostedZone())
	}
	return list, nil
}

func (c *Client) getHostedZone(zoneId string) (*HostedZoneDetail, error) {
	zoneId = stripZoneId(zoneId)
	if zoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	body, err := c.doRequest(http.MethodGet, "/hostedzone/"+zoneId, nil, nil)
	if err != nil {
		return nil, err
	}
	var response getHostedZoneResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &HostedZoneDetail{
		Zone:        response.HostedZone.toHostedZone(),
		NameServers: response.DelegationSet.NameServers,
	}, nil
}

func (c *Client) findHostedZone(name string) (*HostedZone, error) {
	name = normalizeDomainName(name)
	if name == "" {
		return nil, errors.New("no zone name specified")
	}
	var marker string
	for {
		list, err := c.listHostedZones(marker, findPageSize)
		if err != nil {
			return nil, err
		}
		for _, zone := range list.Zones {
			if zone.Name == name {
				found := zone
				return &found, nil
			}
		}
		if len(list.Zones) < findPageSize {
			return nil, nil
		}
		marker = stripZoneId(list.Zones[len(list.Zones)-1].Id)
		c.params.Logger.Debugf(1,
			"route53: no match for %s yet, next marker: %s\n", name, marker)
	}
}

func (c *Client) createHostedZone(name, callerReference, comment string) (
	*CreatedHostedZone, error) {
	if name == "" {
		return nil, errors.New("no zone name specified")
	}
	if callerReference == "" {
		return nil, errors.New("no caller reference specified")
	}
	requestBody, err := buildCreateHostedZoneBody(c.version.namespace(),
		normalizeDomainName(name), callerReference, comment)
	if err != nil {
		return nil, err
	}
	body, err := c.doRequest(http.MethodPost, "/hostedzone", nil, requestBody)
	if err != nil {
		return nil, err
	}
	var response createHostedZoneResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &CreatedHostedZone{
		Zone:        response.HostedZone.toHostedZone(),
		ChangeInfo:  response.ChangeInfo.toChangeInfo(),
		NameServers: response.DelegationSet.NameServers,
	}, nil
}

func (c *Client) deleteHostedZone(zoneId string) (*ChangeInfo, error) {
	zoneId = stripZoneId(zoneId)
	if zoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	body, err := c.doRequest(http.MethodDelete, "/hostedzone/"+zoneId, nil,
		nil)
	if err != nil {
		return nil, err
	}
	var response deleteHostedZoneResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	changeInfo := response.ChangeInfo.toChangeInfo()
	return &changeInfo, nil
}
