package config

// Version is the current Avail execution core version.
// Set at build time by prepare_release.sh via -ldflags or by writing to this file.
var Version = "0.6.5"
