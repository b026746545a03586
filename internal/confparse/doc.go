// Package confparse reads the restricted YAML subset used by the ColdFront
// deployment config and turns it into prefixed key-value assignments.
//
// # Input Format
//
// A config file is a sequence of lines in a two-level subset of YAML:
//
//	plugin_version: v0.2
//	app_dir: "/srv/coldfront"
//	service:
//	  user: ec2-user
//	  group: nginx
//
// Top-level scalars become <prefix><key>. A bare top-level "key:" opens a
// section; its indented "key: value" lines become <prefix><section>_<key>.
// Sections do not nest. Any other top-level line ends the current section.
// Keys match [A-Za-z_][A-Za-z0-9_]*. Values lose trailing whitespace and one
// surrounding pair of single or double quotes; empty values are dropped.
//
// Blank lines and comment lines (first non-whitespace character '#') are
// ignored everywhere and never end a section. Lines the parser cannot
// interpret are skipped without error; strict mode upgrades them, and
// duplicate generated names, to a config error.
//
// # Output Order
//
// Assignments keep the order consumers of the generated environment have
// always seen: every top-level assignment in file order, then every section
// assignment in file order. Parsing is a single pass over the file with a
// two-state section tracker; the two output buckets preserve the ordering.
//
// # Loading
//
// Load binds a file into a Namespace under the CFG_ prefix. Values are plain
// data in an ordered map; nothing is ever evaluated. When the same name is
// generated twice the last value wins while the first position is kept, so
// output order stays stable under overrides.
package confparse
