package version

// AppVersion is the launcher version, overridden at build time via
// -ldflags "-X audiocel/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
