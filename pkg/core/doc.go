// Package core wires the compiler stages into the pipeline used by the CLI:
//
//	read file -> charset.Decode -> parser.Parse -> emitter.Emit -> write file
//
// Any failure aborts the run before the output file is written, so a failed
// compile never leaves a partial document behind.
package core
