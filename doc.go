// Package figmatranspiler converts Figma design documents into JSX screen
// files composed from a fixed React Native component library. Semantic
// meaning is recovered from the Name_TYPE naming convention rather than
// visual heuristics, and the conversion is deterministic: identical input
// JSON always produces identical output source.
//
// The CLI lives in cmd/figma-transpiler; this root package exposes the same
// pipeline as a Go API so that callers can embed transpilation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatranspiler:
//
//	import "github.com/hellenic-development/figma-transpiler" // package figmatranspiler
//
// # Quick start
//
//	result, err := figmatranspiler.Run(figmatranspiler.Options{
//	    InputPath: "input.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.json", result.TreeJSON, 0644)
//	os.WriteFile("output.tsx", []byte(result.Source), 0644)
//
// # Pipeline
//
// The pipeline has two pure stages. The parser walks the raw Figma tree
// and produces a normalized semantic tree in which each node is a typed
// component with extracted props, layout, and visual styles. The generator
// walks that tree and produces a formatted JSX module, resolving component
// mappings, injecting spacer elements, and computing the minimal import
// set. Both stages keep all state on the call stack, so the pipeline is
// re-entrant and safe to invoke concurrently with distinct inputs.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Error handling
//
// The only terminal parse error is [parser.ErrNoRootComponent], returned
// when no frame under the document follows the Name_TYPE convention. Every
// other malformed node degrades to an annotated placeholder in the emitted
// source so designers can see exactly which nodes were not recognized.
package figmatranspiler
