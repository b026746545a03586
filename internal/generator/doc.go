// Package generator resolves deployment settings and writes deployment.conf.
//
// This package turns the parsed operator config into the flat settings file
// the ColdFront deployment scripts source. Every setting has a documented
// default, so an empty or missing config still produces a complete file.
//
// # Resolution
//
// Resolve maps namespace names to the seven deployment settings and reports
// where each value came from:
//
//	ns, _ := confparse.Load("config.yml")
//	settings, fields := generator.Resolve(ns)
//	for _, f := range fields {
//	    fmt.Printf("%s=%s (%s)\n", f.Key, f.Value, f.Source)
//	}
//
// # Materialization
//
// Materialize creates the output directory, renders the settings through a
// fixed template, and writes deployment.conf in one step:
//
//	path, err := generator.Materialize("/tmp/deploy", settings)
//
// Values are double-quoted with shell escaping, so the file can be sourced
// from sh no matter what the operator config contained. Output is
// deterministic: the same settings always produce byte-identical files.
package generator
