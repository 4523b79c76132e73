package route53

import (
	"errors"
	"time"

	"github.com/Cloud-Foundations/golib/pkg/log"
	"github.com/Cloud-Foundations/route53api/pkg/dns"
	r53 "github.com/Cloud-Foundations/route53api/pkg/route53"
)

const (
	changePollInterval = time.Second * 10
	changeWaitTimeout  = time.Minute * 2
)

var _ dns.RecordManager = (*RecordReadWriter)(nil)

func newRecordReadWriter(client *r53.Client, hostedZoneId string,
	logger log.DebugLogger) (*RecordReadWriter, error) {
	if client == nil {
		return nil, errors.New("no client specified")
	}
	if hostedZoneId == "" {
		return nil, errors.New("no hosted zone ID specified")
	}
	return &RecordReadWriter{
		client:       client,
		hostedZoneId: hostedZoneId,
		logger:       logger,
	}, nil
}

// Insert double quotes if missing.
func insertQuotes(value string) string {
	if value[0] == '"' && value[len(value)-1] == '"' {
		return value
	}
	return "\"" + value + "\""
}

// Strip double quotes if present.
func stripQuotes(value string) string {
	if value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return value
}

func (rrw *RecordReadWriter) deleteRecords(fqdn, recType string) error {
	recordSets, err := rrw.matchingRecordSets(fqdn, recType)
	if err != nil {
		return err
	}
	if len(recordSets) < 1 {
		return nil
	}
	var changes []r53.Change
	for _, recordSet := range recordSets {
		changes = append(changes,
			r53.Change{Action: r53.ActionDelete, RecordSet: recordSet})
	}
	_, err = rrw.client.ChangeResourceRecordSets(rrw.hostedZoneId,
		r53.ChangeBatch{Changes: changes})
	return err
}

// matchingRecordSets returns the record sets which exactly match the specified
// FQDN (normalized to end with a dot) and record type.
func (rrw *RecordReadWriter) matchingRecordSets(fqdn, recType string) (
	[]r53.ResourceRecordSet, error) {
	if fqdn[len(fqdn)-1] != '.' {
		fqdn += "."
	}
	list, err := rrw.client.ListResourceRecordSets(rrw.hostedZoneId,
		&r53.ListRecordSetsOptions{Name: fqdn, Type: recType})
	if err != nil {
		return nil, err
	}
	var matches []r53.ResourceRecordSet
	for _, recordSet := range list.RecordSets {
		if recordSet.Name != fqdn || recordSet.Type != recType {
			continue
		}
		matches = append(matches, recordSet)
	}
	return matches, nil
}

func (rrw *RecordReadWriter) readRecords(fqdn string, recType string) (
	[]string, time.Duration, error) {
	recordSets, err := rrw.matchingRecordSets(fqdn, recType)
	if err != nil {
		return nil, 0, err
	}
	var ttl time.Duration
	var records []string
	for _, recordSet := range recordSets {
		if _ttl := time.Duration(recordSet.TTL) * time.Second; _ttl > ttl {
			ttl = _ttl
		}
		for _, record := range recordSet.Records {
			records = append(records, stripQuotes(record))
		}
	}
	return records, ttl, nil
}

func (rrw *RecordReadWriter) waitForChange(changeId string) error {
	stopTime := time.Now().Add(changeWaitTimeout)
	for {
		changeInfo, err := rrw.client.GetChange(changeId)
		if err != nil {
			rrw.logger.Printf(
				"error waiting for change: %s, hoping for the best, error: %s\n",
				changeId, err)
			return nil
		}
		if changeInfo.Status == r53.StatusInSync {
			return nil
		}
		if time.Now().After(stopTime) {
			rrw.logger.Printf(
				"timed out waiting for change: %s, hoping for the best, status: %s\n",
				changeId, changeInfo.Status)
			return nil
		}
		time.Sleep(changePollInterval)
	}
}

func (rrw *RecordReadWriter) writeRecords(fqdn, recType string,
	records []string, ttl time.Duration, wait bool) error {
	if fqdn[len(fqdn)-1] != '.' {
		fqdn += "."
	}
	var values []string
	for _, record := range records {
		if recType == "TXT" {
			record = insertQuotes(record)
		}
		values = append(values, record)
	}
	changeInfo, err := rrw.client.ChangeResourceRecordSet(rrw.hostedZoneId,
		r53.Change{
			Action: r53.ActionUpsert,
			RecordSet: r53.ResourceRecordSet{
				Name:    fqdn,
				Type:    recType,
				TTL:     int64(ttl.Seconds()),
				Records: values,
			},
		}, "")
	if err != nil {
		return err
	}
	if wait {
		rrw.logger.Debugf(1, "waiting for change: %s to complete\n",
			changeInfo.Id)
		if err := rrw.waitForChange(changeInfo.Id); err != nil {
			return err
		}
		rrw.logger.Debugf(1, "change: %s completed\n", changeInfo.Id)
	}
	return nil
}
