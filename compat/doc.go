// Package compat bridges values to and from JSON and YAML.
//
// Both directions go through the plain-Go mapping in package convert:
// timespans and uris flatten to strings on the way out and come back as
// strings, and dictionary insertion order is not preserved. The bridges
// exist for interop with external tooling; the native text form remains
// the canonical one.
package compat
