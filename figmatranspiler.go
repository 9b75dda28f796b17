package figmatranspiler

import (
	"fmt"
	"os"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
	"github.com/hellenic-development/figma-transpiler/pkg/generator"
	"github.com/hellenic-development/figma-transpiler/pkg/parser"
)

// Version is the release version of the transpiler.
const Version = "0.1.0"

// Options configures one transpilation.
type Options struct {
	Document  *figma.FileResponse // pre-parsed document; takes precedence over InputPath
	InputPath string              // path to a Figma document JSON file, default "input.json"
	Logger    Logger              // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the transpilation output.
type Result struct {
	Tree     *parser.UITreeNode // the intermediate semantic tree
	TreeJSON []byte             // the tree pretty-printed with two-space indent
	Source   string             // the emitted JSX screen module
	FileName string             // Figma file name, when present in the document
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the transpilation pipeline: decode the document, build the
// semantic tree, and emit the JSX source. The pipeline itself is pure; all
// I/O happens here at the boundary.
func Run(opts Options) (*Result, error) {
	doc := opts.Document
	if doc == nil {
		if opts.InputPath == "" {
			opts.InputPath = "input.json"
		}
		opts.logInfo("Reading %s...", opts.InputPath)
		data, err := os.ReadFile(opts.InputPath)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		doc, err = figma.ParseFile(data)
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}

	opts.logInfo("Building semantic tree...")
	tree, err := parser.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("build semantic tree: %w", err)
	}

	opts.logInfo("Generating JSX...")
	source := generator.Generate(tree)

	treeJSON, err := tree.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("serialize tree: %w", err)
	}

	return &Result{
		Tree:     tree,
		TreeJSON: treeJSON,
		Source:   source,
		FileName: doc.Name,
	}, nil
}
