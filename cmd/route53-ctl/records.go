package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Cloud-Foundations/Dominator/lib/log"
	"github.com/Cloud-Foundations/route53api/pkg/route53"
)

func listRecordsSubcommand(args []string, logger log.DebugLogger) error {
	if err := listRecords(os.Stdout, args[0]); err != nil {
		return fmt.Errorf("Error listing records: %s: %s", args[0], err)
	}
	return nil
}

func listRecords(writer io.Writer, zoneId string) error {
	var options route53.ListRecordSetsOptions
	for {
		list, err := client.ListResourceRecordSets(zoneId, &options)
		if err != nil {
			return err
		}
		for _, recordSet := range list.RecordSets {
			if recordSet.AliasTarget != nil {
				fmt.Fprintf(writer, "%s\t%s\tALIAS %s\n",
					recordSet.Name, recordSet.Type,
					recordSet.AliasTarget.DnsName)
				continue
			}
			fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n",
				recordSet.Name, recordSet.Type, recordSet.TTL,
				strings.Join(recordSet.Records, " "))
		}
		if !list.IsTruncated {
			return nil
		}
		options.Name = list.NextRecordName
		options.Type = list.NextRecordType
		options.Identifier = list.NextRecordIdentifier
	}
}

func changeRecordSubcommand(args []string, logger log.DebugLogger) error {
	zoneId, action, name, recordType := args[0], args[1], args[2], args[3]
	ttl, err := strconv.ParseInt(args[4], 10, 64)
	if err != nil {
		return fmt.Errorf("Error parsing TTL: %s: %s", args[4], err)
	}
	err = changeRecord(os.Stdout, zoneId, action, name, recordType, ttl,
		args[5:])
	if err != nil {
		return fmt.Errorf("Error changing record: %s: %s", name, err)
	}
	return nil
}

func changeRecord(writer io.Writer, zoneId, action, name, recordType string,
	ttl int64, values []string) error {
	changeInfo, err := client.ChangeResourceRecordSet(zoneId, route53.Change{
		Action: action,
		RecordSet: route53.ResourceRecordSet{
			Name:    name,
			Type:    recordType,
			TTL:     ttl,
			Records: values,
		},
	}, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "Change: %s %s\n", changeInfo.Id, changeInfo.Status)
	return nil
}

func getChangeSubcommand(args []string, logger log.DebugLogger) error {
	if err := getChange(os.Stdout, args[0]); err != nil {
		return fmt.Errorf("Error getting change: %s: %s", args[0], err)
	}
	return nil
}

func getChange(writer io.Writer, changeId string) error {
	changeInfo, err := client.GetChange(changeId)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "%s\t%s\t%s\n",
		changeInfo.Id, changeInfo.Status, changeInfo.SubmittedAt)
	return nil
}
