/*
Package route53 implements a simple DNS record reader and writer on top of the
Route 53 API client.
*/
package route53

import (
	"time"

	"github.com/Cloud-Foundations/golib/pkg/log"
	r53 "github.com/Cloud-Foundations/route53api/pkg/route53"
)

type RecordReadWriter struct {
	client       *r53.Client
	hostedZoneId string
	logger       log.DebugLogger
}

// New creates a *RecordReadWriter for the specified hosted zone.
// The logger is used for logging messages.
func New(client *r53.Client, hostedZoneId string,
	logger log.DebugLogger) (*RecordReadWriter, error) {
	return newRecordReadWriter(client, hostedZoneId, logger)
}

func (rrw *RecordReadWriter) DeleteRecords(fqdn, recType string) error {
	return rrw.deleteRecords(fqdn, recType)
}

func (rrw *RecordReadWriter) ReadRecords(fqdn, recType string) (
	[]string, time.Duration, error) {
	return rrw.readRecords(fqdn, recType)
}

func (rrw *RecordReadWriter) WriteRecords(fqdn, recType string,
	records []string, ttl time.Duration, wait bool) error {
	return rrw.writeRecords(fqdn, recType, records, ttl, wait)
}
