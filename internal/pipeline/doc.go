// Package pipeline runs one seed-to-constraint conversion: read the FASTA
// and CT inputs, drop non-canonical pairs, enforce the seed length, shift
// positions into the full sequence and render the requested grammar.
//
// Run never writes output and never logs. Diagnostics come back in Result;
// fatal conditions come back as typed errors for the caller to classify.
package pipeline
