package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	figmatranspiler "github.com/hellenic-development/figma-transpiler"
	"github.com/hellenic-development/figma-transpiler/pkg/figma"
	"github.com/hellenic-development/figma-transpiler/pkg/parser"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = figmatranspiler.Version

var (
	inputFile    string
	outputTree   string
	outputSource string

	fetchURL    string
	fetchKey    string
	fetchToken  string
	fetchOutput string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-transpiler",
		Short: "Transpile Figma design documents into React Native JSX screens",
		Long:  "A deterministic transpiler that converts a Figma design document into a JSX screen file composed from a fixed React Native component library, driven by the Name_TYPE naming convention",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "input.json", "Input Figma document JSON file")
	rootCmd.Flags().StringVar(&outputTree, "output-tree", "output.json", "Output file for the intermediate semantic tree")
	rootCmd.Flags().StringVarP(&outputSource, "output", "o", "output.tsx", "Output file for the emitted JSX source")

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a Figma document for later transpilation",
		Run:   runFetch,
	}

	fetchCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "Figma file URL (alternative to --key)")
	fetchCmd.Flags().StringVarP(&fetchKey, "key", "k", "", "Figma file key (defaults to FIGMA_FILE_KEY)")
	fetchCmd.Flags().StringVarP(&fetchToken, "token", "t", "", "Figma personal access token (defaults to FIGMA_ACCESS_TOKEN)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "input.json", "Output file for the downloaded document")

	viper.BindPFlag("file_key", fetchCmd.Flags().Lookup("key"))
	viper.BindPFlag("access_token", fetchCmd.Flags().Lookup("token"))
	viper.BindEnv("file_key", "FIGMA_FILE_KEY")
	viper.BindEnv("access_token", "FIGMA_ACCESS_TOKEN")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-transpiler version %s\n", version)
		},
	}

	rootCmd.AddCommand(fetchCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Transpiler")
	cyan.Println("===================")
	cyan.Println()

	result, err := figmatranspiler.Run(figmatranspiler.Options{
		InputPath: inputFile,
		Logger:    &cliLogger{},
	})
	if err != nil {
		fail(err)
	}

	if result.FileName != "" {
		fmt.Printf("  • File: %s\n", result.FileName)
	}

	// Component summary.
	counts := parser.CountTypes(result.Tree)
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	cyan.Println("\n📊 Transpilation Summary:")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Component", "Count"})
	for _, ct := range types {
		t.AppendRow(table.Row{ct, counts[parser.ComponentType(ct)]})
	}
	t.Render()

	green.Printf("\n💾 Writing %s... ", outputTree)
	if err := os.WriteFile(outputTree, append(result.TreeJSON, '\n'), 0644); err != nil {
		fail(err)
	}
	green.Println("✓")

	green.Printf("💾 Writing %s... ", outputSource)
	if err := os.WriteFile(outputSource, []byte(result.Source), 0644); err != nil {
		fail(err)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully transpiled %s\n\n", inputFile)
}

func runFetch(cmd *cobra.Command, args []string) {
	token := viper.GetString("access_token")
	if token == "" {
		fail(fmt.Errorf("no access token: pass --token or set FIGMA_ACCESS_TOKEN"))
	}

	key := viper.GetString("file_key")
	if fetchURL != "" {
		extracted, err := figma.ExtractFileKey(fetchURL)
		if err != nil {
			fail(err)
		}
		key = extracted
	}
	if key == "" {
		fail(fmt.Errorf("no file key: pass --key, --url, or set FIGMA_FILE_KEY"))
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cyan.Printf("Fetching file %s from Figma...\n", key)
	client := figma.NewClient(token)
	file, err := client.GetFile(key)
	if err != nil {
		fail(err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		fail(err)
	}

	if err := os.WriteFile(fetchOutput, append(data, '\n'), 0644); err != nil {
		fail(err)
	}
	green.Printf("✨ Saved %s (%s)\n", fetchOutput, file.Name)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// cliLogger implements figmatranspiler.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
