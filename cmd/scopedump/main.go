package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/clientscope"
	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
	"github.com/suparena/clientscope/properties"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Client configuration file (defaults to $CLIENTSCOPE_CONFIG or clientscope.yaml)")
	clientsFlag = flag.String("clients", "", "Comma-separated extra client names to dump (defaults to $CLIENTSCOPE_CLIENTS)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := clientscope.GetVersionInfo()
		fmt.Printf("ClientScope scopedump version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scopedump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; flags and real env vars win over it.
	_ = godotenv.Load()

	path := *configFlag
	if path == "" {
		path = os.Getenv("CLIENTSCOPE_CONFIG")
	}
	if path == "" {
		path = "clientscope.yaml"
	}

	props, err := properties.Load(path)
	if err != nil {
		return err
	}

	reg := clientscope.New(catalog.Builtin())
	if err := props.Apply(reg); err != nil {
		return err
	}

	for _, name := range clientNames(props) {
		if err := dumpClient(reg, name); err != nil {
			return err
		}
	}
	return nil
}

// clientNames collects the clients to dump: every named section in the
// configuration plus anything requested explicitly, sorted and deduplicated.
func clientNames(props *properties.Properties) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for name := range props.Clients {
		add(name)
	}
	extra := *clientsFlag
	if extra == "" {
		extra = os.Getenv("CLIENTSCOPE_CLIENTS")
	}
	for _, name := range strings.Split(extra, ",") {
		add(name)
	}

	sort.Strings(names)
	return names
}

func dumpClient(reg *clientscope.Registry, name string) error {
	fmt.Printf("client %q:\n", name)

	lvl, ok, err := clientscope.Single[components.LogLevel](reg, name, catalog.KindLogLevel)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("  log-level:       %s\n", lvl)
	} else {
		fmt.Printf("  log-level:       <absent>\n")
	}

	opts, ok, err := clientscope.Single[components.Options](reg, name, catalog.KindRequestOptions)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("  connect-timeout: %s\n", opts.ConnectTimeout)
		fmt.Printf("  read-timeout:    %s\n", opts.ReadTimeout)
		fmt.Printf("  redirects:       %t\n", opts.FollowRedirects)
	} else {
		fmt.Printf("  request-options: <absent>\n")
	}

	policy, ok, err := clientscope.Single[components.RetryPolicy](reg, name, catalog.KindRetryPolicy)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("  retry:           %d attempts, %s backoff\n", policy.MaxAttempts, policy.Backoff)
	} else {
		fmt.Printf("  retry:           <absent>\n")
	}

	return nil
}
