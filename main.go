package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"dish-wheel.klederson.com/internal/app"
	"dish-wheel.klederson.com/internal/carousel"
	"dish-wheel.klederson.com/internal/config"
	"dish-wheel.klederson.com/internal/menu"
	"dish-wheel.klederson.com/internal/wheel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagMenu     string
	flagStart    int
	flagLogFile  string
	flagLogLevel string

	flagYAML   bool
	flagWidth  int
	flagHeight int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dish-wheel",
		Short:   "Dish Wheel - spin a menu of dishes in the terminal",
		Version: config.AppVersion,
		Long: `Dish Wheel places a menu of dishes around a circular wheel.
Spin it with the mouse, step it with the scroll wheel, or use the
arrow keys. The dish at the top of the wheel is shown on the plate.

The menu defaults to a built-in list of ten dishes. Use --menu to load
your own from a YAML file.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagMenu, "menu", "", "YAML menu file (default: built-in menu)")
	rootCmd.Flags().IntVar(&flagStart, "start", 0, "Index of the dish shown first")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", config.DefaultLog, "Log file path (empty disables logging)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: error, warn, info or debug")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where every dish sits on the wheel",
		RunE:  runLayout,
	}
	layoutCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print placements as YAML")
	layoutCmd.Flags().IntVar(&flagWidth, "width", 60, "Wheel width in cells")
	layoutCmd.Flags().IntVar(&flagHeight, "height", 24, "Wheel height in cells")
	rootCmd.AddCommand(layoutCmd)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	level, err := config.ParseLogLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := config.OpenLogger(flagLogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := menu.LoadMenu(flagMenu)
	if err != nil {
		return err
	}
	logger.Info("starting", "app", config.AppName, "version", config.AppVersion,
		"dishes", len(m.Dishes), "start", flagStart)

	ctl := carousel.New(m.Dishes, carousel.Options{Logger: logger, Start: flagStart})
	model := app.New(ctl, logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	ctl.Detach()
	if err != nil {
		logger.Error("program exited", "err", err)
	}
	return err
}

// layoutRow is one line of the layout report.
type layoutRow struct {
	Index    int     `yaml:"index"`
	Name     string  `yaml:"name"`
	Color    string  `yaml:"color"`
	Angle    float64 `yaml:"angle"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	Col      int     `yaml:"col"`
	Row      int     `yaml:"row"`
}

func runLayout(cmd *cobra.Command, args []string) error {
	m, err := menu.LoadMenu(flagMenu)
	if err != nil {
		return err
	}

	g := wheel.NewGeometry(flagWidth, flagHeight)
	placements := carousel.Positions(m.Dishes, g.Path(), carousel.LayoutOptions{
		Start:      config.PathStart,
		AutoRotate: true,
	})

	rows := make([]layoutRow, 0, len(placements))
	for _, p := range placements {
		it := m.Dishes[p.Index]
		col, row := g.Cell(p.Angle)
		rows = append(rows, layoutRow{
			Index:    p.Index,
			Name:     it.DisplayName(),
			Color:    it.Color,
			Angle:    p.Angle,
			X:        p.X,
			Y:        p.Y,
			Rotation: p.Rotation,
			Col:      col,
			Row:      row,
		})
	}

	out := cmd.OutOrStdout()
	if flagYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]layoutRow{"placements": rows}); err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDISH\tCOLOR\tANGLE\tX\tY\tROT\tCELL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%.2f\t%.2f\t%.1f\t%d,%d\n",
			r.Index, r.Name, r.Color, r.Angle, r.X, r.Y, r.Rotation, r.Col, r.Row)
	}
	return tw.Flush()
}
