// Package config loads runtime settings for the BidCars CLI.
//
// Values are resolved in three layers, later layers overriding earlier
// ones:
//
//  1. Built-in defaults (LoadDefaults).
//  2. A JSON file, when one is named via -c or -config.
//  3. Command-line flags (-a, -t, -f).
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "10s" or integer nanoseconds.
package config
