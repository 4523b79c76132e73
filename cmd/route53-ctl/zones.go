package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/log"
)

func listZonesSubcommand(args []string, logger log.DebugLogger) error {
	if err := listZones(os.Stdout); err != nil {
		return fmt.Errorf("Error listing zones: %s", err)
	}
	return nil
}

func listZones(writer io.Writer) error {
	var marker string
	for {
		list, err := client.ListHostedZones(marker, 0)
		if err != nil {
			return err
		}
		for _, zone := range list.Zones {
			fmt.Fprintf(writer, "%s\t%s\t%d\n",
				zone.Id, zone.Name, zone.ResourceRecordSetCount)
		}
		if !list.IsTruncated {
			return nil
		}
		marker = list.NextMarker
	}
}

func getZoneSubcommand(args []string, logger log.DebugLogger) error {
	if err := getZone(os.Stdout, args[0]); err != nil {
		return fmt.Errorf("Error getting zone: %s: %s", args[0], err)
	}
	return nil
}

func getZone(writer io.Writer, zoneId string) error {
	detail, err := client.GetHostedZone(zoneId)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "Id: %s\n", detail.Zone.Id)
	fmt.Fprintf(writer, "Name: %s\n", detail.Zone.Name)
	fmt.Fprintf(writer, "CallerReference: %s\n", detail.Zone.CallerReference)
	if detail.Zone.Config.Comment != "" {
		fmt.Fprintf(writer, "Comment: %s\n", detail.Zone.Config.Comment)
	}
	fmt.Fprintf(writer, "RecordSets: %d\n",
		detail.Zone.ResourceRecordSetCount)
	for _, nameServer := range detail.NameServers {
		fmt.Fprintf(writer, "NameServer: %s\n", nameServer)
	}
	return nil
}

func findZoneSubcommand(args []string, logger log.DebugLogger) error {
	if err := findZone(os.Stdout, args[0]); err != nil {
		return fmt.Errorf("Error finding zone: %s: %s", args[0], err)
	}
	return nil
}

func findZone(writer io.Writer, name string) error {
	zone, err := client.FindHostedZone(name)
	if err != nil {
		return err
	}
	if zone == nil {
		return fmt.Errorf("no zone found for: %s", name)
	}
	fmt.Fprintf(writer, "%s\t%s\n", zone.Id, zone.Name)
	return nil
}

func createZoneSubcommand(args []string, logger log.DebugLogger) error {
	var comment string
	if len(args) > 2 {
		comment = args[2]
	}
	if err := createZone(os.Stdout, args[0], args[1], comment); err != nil {
		return fmt.Errorf("Error creating zone: %s: %s", args[0], err)
	}
	return nil
}

func createZone(writer io.Writer, name, callerReference,
	comment string) error {
	created, err := client.CreateHostedZone(name, callerReference, comment)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "Id: %s\n", created.Zone.Id)
	fmt.Fprintf(writer, "Change: %s %s\n",
		created.ChangeInfo.Id, created.ChangeInfo.Status)
	for _, nameServer := range created.NameServers {
		fmt.Fprintf(writer, "NameServer: %s\n", nameServer)
	}
	return nil
}

func deleteZoneSubcommand(args []string, logger log.DebugLogger) error {
	if err := deleteZone(os.Stdout, args[0]); err != nil {
		return fmt.Errorf("Error deleting zone: %s: %s", args[0], err)
	}
	return nil
}

func deleteZone(writer io.Writer, zoneId string) error {
	changeInfo, err := client.DeleteHostedZone(zoneId)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "Change: %s %s\n", changeInfo.Id, changeInfo.Status)
	return nil
}
