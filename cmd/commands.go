package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"integral"
	"integral/cli"
	"integral/config"
	"integral/quad"
	"integral/report"
)

var (
	configPath string
	outDir     string
	verbose    bool

	nFlag      int
	modeFlag   string
	methodFlag string
	serveAddr  string
	force      bool

	wb *integral.Workbench
)

var (
	rootCmd = &cobra.Command{
		Use:   "integral",
		Short: "Numerical integration of the LLM energy curve E(N)",
		Long: `integral computes the definite integral of the quartic energy curve E(N)
with rectangle, trapezoidal and Simpson rules, compares them against the
exact antiderivative and renders convergence charts and tables.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return runMenu(cmd, args)
			}
			return cmd.Help()
		},
	}
	exactCmd = &cobra.Command{
		Use:   "exact",
		Short: "Exact integral via the antiderivative, validated numerically",
		RunE:  func(*cobra.Command, []string) error { return wb.ExactReport() },
	}
	rectCmd = &cobra.Command{
		Use:   "rect",
		Short: "Rectangle (Riemann sum) method",
		RunE:  runRect,
	}
	trapezoidCmd = &cobra.Command{
		Use:     "trapezoid",
		Aliases: []string{"trap"},
		Short:   "Trapezoidal rule",
		RunE:    runMethod(quad.TrapezoidRule),
	}
	simpsonCmd = &cobra.Command{
		Use:     "simpson",
		Aliases: []string{"simp"},
		Short:   "Simpson's 1/3 rule (odd n is raised to the next even n)",
		RunE:    runMethod(quad.SimpsonRule),
	}
	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Compare all five methods at the same n",
		RunE: func(*cobra.Command, []string) error {
			if err := wb.Config.CheckN(nFlag); err != nil {
				return err
			}
			_, err := wb.Compare(nFlag)
			return err
		},
	}
	convergeCmd = &cobra.Command{
		Use:   "converge",
		Short: "Convergence table, CSV and chart for one method",
		RunE:  runConverge,
	}
	chartsCmd = &cobra.Command{
		Use:   "charts",
		Short: "Render every chart, the HTML page, CSV tables and the run record",
		RunE:  runCharts,
	}
	modesCmd = &cobra.Command{
		Use:   "modes",
		Short: "Rectangle results for every mode and n = 10, 100, 1000 with the AI models",
		RunE:  runModes,
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the --config file",
		RunE:  runConfig,
	}
	modelsCmd = &cobra.Command{
		Use:   "models",
		Short: "Reference AI model table and statistics",
		RunE:  func(*cobra.Command, []string) error { return wb.Models() },
	}
	menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		RunE:  runMenu,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Output directory (overrides output.dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, c := range []*cobra.Command{rectCmd, trapezoidCmd, simpsonCmd, compareCmd} {
		c.Flags().IntVarP(&nFlag, "n", "n", 100, "Number of subintervals")
	}
	rectCmd.Flags().StringVarP(&modeFlag, "mode", "m", "mid", "Evaluation point: left, mid or right")
	convergeCmd.Flags().StringVar(&methodFlag, "method", "simpson", "Method: rect, trapezoid or simpson")
	convergeCmd.Flags().StringVarP(&modeFlag, "mode", "m", "mid", "Evaluation point for rect: left, mid or right")
	chartsCmd.Flags().StringVar(&serveAddr, "serve", "", "Serve the convergence page on this address after rendering (e.g. :8080)")
	configCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	rootCmd.AddCommand(exactCmd, rectCmd, trapezoidCmd, simpsonCmd, compareCmd,
		convergeCmd, chartsCmd, modesCmd, modelsCmd, configCmd, menuCmd)
}

// setup 初始化日志、配置与工作台
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	wb, err = integral.New(cfg, cmd.OutOrStdout())
	return err
}

func runRect(*cobra.Command, []string) error {
	mode, err := quad.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	m, err := quad.RectangleMethod(mode)
	if err != nil {
		return err
	}
	return runN(m)
}

func runMethod(m quad.Method) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error { return runN(m) }
}

// runN 校验 --n 后以单一方法求积
func runN(m quad.Method) error {
	if err := wb.Config.CheckN(nFlag); err != nil {
		return err
	}
	_, err := wb.Run(m, nFlag)
	return err
}

func runConverge(*cobra.Command, []string) error {
	m, err := quad.ParseMethod(methodFlag)
	if err != nil {
		if methodFlag != "rect" && methodFlag != "rectangles" {
			return err
		}
		mode, err := quad.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		if m, err = quad.RectangleMethod(mode); err != nil {
			return err
		}
	}
	_, err = wb.Converge(m)
	return err
}

func runCharts(cmd *cobra.Command, _ []string) error {
	files, err := wb.Charts()
	if err != nil {
		return err
	}
	printFiles(cmd, files)
	if serveAddr == "" {
		return nil
	}
	page, err := wb.Page()
	if err != nil {
		return err
	}
	http.HandleFunc("/", page.Handler)
	slog.Info("serving convergence page", slog.String("addr", serveAddr))
	return http.ListenAndServe(serveAddr, nil)
}

func runModes(cmd *cobra.Command, _ []string) error {
	files, err := wb.ModelComparison()
	printFiles(cmd, files)
	if err != nil {
		return err
	}
	return wb.Models()
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
	}
	if err := config.Save(configPath, wb.Config); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Styles.Success.Render("[OK] ")+configPath)
	return nil
}

func printFiles(cmd *cobra.Command, files []string) {
	out := cmd.OutOrStdout()
	for _, f := range files {
		fmt.Fprintln(out, report.Styles.Success.Render("[OK] ")+f)
	}
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return cli.NewMenu(wb, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
