// SPDX-License-Identifier: MIT

// Package cli implements the lvmath command line: encode and decode codec
// payloads (raw or framed), multiply matrices read from YAML and rotate
// vectors by quaternions. Run is the whole program; cmd/lvmath only wires
// it to the process.
//
// Commands log to stderr through logrus. Level and format come from
// --log-level/--log-format or the LVMATH_LOG_LEVEL/LVMATH_LOG_FORMAT
// environment variables. Results go to stdout.
package cli
