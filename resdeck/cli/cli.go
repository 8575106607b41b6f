package cli

import (
	"fmt"
	"io/ioutil"

	"github.com/npillmayer/resdeck"
	"github.com/npillmayer/resdeck/grammar"
	"github.com/npillmayer/resdeck/grid"
	"github.com/npillmayer/resdeck/props"
	"github.com/npillmayer/resdeck/tables"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resdeck <deckfile>",
	Short: "Inspect grid properties derived from a reservoir deck",
	Long: `Welcome to resdeck V0.1 (experimental)

resdeck parses a reservoir simulation deck in the free-format keyword
language and derives the per-cell grid properties the deck describes.
Without further flags it lists every property the deck touches; with
--kw it dumps a summary of one property, including its distinct region
values for region partitions.

`,
	Args: cobra.ExactArgs(1),
	RunE: runDeckCmd,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called exactly once by resdeck.main().
func Execute() {
	if rootCmd.Execute() != nil {
		resdeck.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().Bool("strict", false, "Abort on any schema mismatch")
	rootCmd.PersistentFlags().String("kw", "", "Dump a single property keyword")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runDeckCmd(cmd *cobra.Command, args []string) error {
	tracing.Infof("resdeck inspector called")
	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}
	ctx := grammar.NewParseContext()
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		ctx.Strictness = grammar.Strict
	}
	deck, err := grammar.BuildDeck(string(data), ctx)
	if err != nil {
		return err
	}
	for _, w := range ctx.Warnings() {
		fmt.Printf("warning: line %d: %s\n", w.Line, w.Message)
	}
	g, err := grid.FromDeck(deck)
	if err != nil {
		return err
	}
	properties := props.New(deck, g, tables.NewManager(deck))
	nx, ny, nz := g.Dims()
	fmt.Printf("grid %d x %d x %d, %d of %d cells active, %s units\n",
		nx, ny, nz, g.ActiveCount(), g.CellCount(), properties.UnitFamily())
	if kw, _ := cmd.Flags().GetString("kw"); kw != "" {
		return dumpKeyword(properties, kw)
	}
	return listProperties(properties)
}

func listProperties(p *props.Properties) error {
	ints, err := p.IntProperties()
	if err != nil {
		return err
	}
	for _, prop := range ints {
		regions, _ := p.Regions(prop.KeywordName())
		fmt.Printf("%-10s int     %d cells, %d distinct values\n",
			prop.KeywordName(), len(prop.Data()), len(regions))
	}
	doubles, err := p.DoubleProperties()
	if err != nil {
		return err
	}
	for _, prop := range doubles {
		lo, hi := bounds(prop.Data())
		fmt.Printf("%-10s double  %d cells, range [%g, %g]\n",
			prop.KeywordName(), len(prop.Data()), lo, hi)
	}
	return nil
}

func dumpKeyword(p *props.Properties, kw string) error {
	if !p.SupportsGridProperty(kw) {
		return fmt.Errorf("keyword %q is not a supported grid property", kw)
	}
	if touched, err := p.HasDeckIntGridProperty(kw); err == nil {
		prop, err := p.IntGridProperty(kw)
		if err != nil {
			return err
		}
		regions, err := p.Regions(kw)
		if err != nil {
			return err
		}
		fmt.Printf("%s: int property, touched by deck: %v\n", prop.KeywordName(), touched)
		fmt.Printf("distinct values: %v\n", regions)
		return nil
	}
	touched, err := p.HasDeckDoubleGridProperty(kw)
	if err != nil {
		return err
	}
	prop, err := p.DoubleGridProperty(kw)
	if err != nil {
		return err
	}
	lo, hi := bounds(prop.Data())
	fmt.Printf("%s: double property, touched by deck: %v\n", prop.KeywordName(), touched)
	fmt.Printf("value range (SI): [%g, %g]\n", lo, hi)
	return nil
}

func bounds(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi = data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
