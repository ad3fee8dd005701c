// Package config loads plastic-ctl host configuration.
//
// Configuration is a TOML file, by default /etc/plastic-ctl/config.toml:
//
//	cm_path = "/opt/plasticscm/bin/cm"
//	extra_args = "--machinereadable"
//	default_selector = "rep:default br:/main"
//	timeout_seconds = 600
//
// A missing file is not an error; every field has a usable default.
// extra_args is parsed with shell quoting rules and prepended to every
// cm invocation.
package config
