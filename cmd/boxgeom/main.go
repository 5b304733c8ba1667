// Package main runs the boxgeom CLI.
package main

import "flag"

// main is the entrypoint for the boxgeom CLI.
func main() {
	var opts options
	flag.StringVar(&opts.layoutPath, "layout", "", "Layout YAML to evaluate (default $LAYOUT_PATH)")
	flag.StringVar(&opts.url, "url", "", "Snapshot a live page instead of reading a layout (default $PAGE_URL)")
	flag.StringVar(&opts.selectors, "select", "", "Comma-separated CSS selectors to measure with -url")
	flag.StringVar(&opts.savePath, "save", "", "Write the evaluated layout to this YAML path")
	flag.BoolVar(&opts.desktop, "desktop", false, "Report the OS cursor against monitor $MONITOR_INDEX")
	flag.BoolVar(&opts.debug, "debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		logFatal(err)
	}
}
