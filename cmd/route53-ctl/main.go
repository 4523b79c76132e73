package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Cloud-Foundations/Dominator/lib/flags/commands"
	"github.com/Cloud-Foundations/Dominator/lib/flags/loadflags"
	"github.com/Cloud-Foundations/Dominator/lib/log/cmdlogger"
	"github.com/Cloud-Foundations/route53api/pkg/route53"
	"github.com/Cloud-Foundations/route53api/pkg/route53/config"
)

var (
	configFile = flag.String("configFile", "",
		"Name of file containing credentials configuration")

	client *route53.Client
)

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: route53-ctl [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	commands.PrintCommands(w, subcommands)
}

var subcommands = []commands.Command{
	{Command: "change-record", Args: "zone-id action name type ttl value...",
		MinArgs: 6, MaxArgs: -1, CmdFunc: changeRecordSubcommand},
	{Command: "create-zone", Args: "name caller-reference [comment]",
		MinArgs: 2, MaxArgs: 3, CmdFunc: createZoneSubcommand},
	{Command: "delete-zone", Args: "zone-id", MinArgs: 1, MaxArgs: 1,
		CmdFunc: deleteZoneSubcommand},
	{Command: "find-zone", Args: "name", MinArgs: 1, MaxArgs: 1,
		CmdFunc: findZoneSubcommand},
	{Command: "get-change", Args: "change-id", MinArgs: 1, MaxArgs: 1,
		CmdFunc: getChangeSubcommand},
	{Command: "get-zone", Args: "zone-id", MinArgs: 1, MaxArgs: 1,
		CmdFunc: getZoneSubcommand},
	{Command: "list-records", Args: "zone-id", MinArgs: 1, MaxArgs: 1,
		CmdFunc: listRecordsSubcommand},
	{Command: "list-zones", Args: "", MinArgs: 0, MaxArgs: 0,
		CmdFunc: listZonesSubcommand},
}

func doMain() int {
	if err := loadflags.LoadForCli("route53-ctl"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	flag.Usage = printUsage
	flag.Parse()
	logger := cmdlogger.New()
	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "no configuration file specified")
		return 1
	}
	var err error
	client, err = config.NewFromFile(*configFile, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return commands.RunCommands(subcommands, printUsage, logger)
}

func main() {
	os.Exit(doMain())
}
