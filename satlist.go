// Package satlist extracts satellite and transponder records from
// public satellite-tracking websites that publish their data as HTML
// tables. It turns semi-formatted table markup into canonical,
// validated domain entities ready to feed a channel-list editor.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g. http/, htmltable/, flysat/, lyngsat/).
package satlist
