package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/nsofor/iqscores/dataset"
	"github.com/nsofor/iqscores/plots"
	"github.com/nsofor/iqscores/report"
	"github.com/nsofor/iqscores/stats"
)

func init() {
	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}
}

// comparison names a canonical two-group mean test; the first level is
// hypothesized to score higher.
type comparison struct {
	name   string
	column string
	a, b   string
}

var comparisons = []comparison{
	{"Recent vs Early", dataset.ColRecent, "Recent", "Early"},
	{"Untimed vs Timed", dataset.ColTimedUntimed, "Untimed", "Timed"},
	{"Cold vs Hot", dataset.ColColdHot, "Cold", "Hot"},
}

// High-score thresholds examined by the relative risk analysis.
var riskThresholds = []float64{140, 150, 160}

func main() {
	csvPath := envOr("SCORES_CSV", "scores.csv")
	ds, err := dataset.Load(csvPath)
	if err != nil {
		log.Fatalf("Error loading %s: %v", csvPath, err)
	}
	color.Green("Loaded %d score records from %s (%d malformed rows dropped)", ds.Len(), csvPath, ds.Dropped)

	for {
		displayMenu()
		choice := readChoice()

		switch choice {
		case "1":
			displayOverview(ds)
		case "2":
			displayGroupStats(ds, dataset.ColAuthor)
		case "3":
			displayGroupStats(ds, dataset.ColTestType)
		case "4":
			displayGroupStats(ds, dataset.ColTimedUntimed)
			displayGroupStats(ds, dataset.ColColdHot)
			displayGroupStats(ds, dataset.ColRecent)
		case "5":
			displayTTests(ds)
		case "6":
			displayWeightedTTests(ds)
		case "7":
			displayANOVA(ds)
		case "8":
			displayChiSquare(ds)
		case "9":
			displayRelativeRisk(ds)
		case "10":
			displayPracticeEffect(ds)
		case "11":
			handleRenderPlots(ds)
		case "12":
			handleExportWorkbook(ds)
		case "13":
			color.Green("Analysis complete. Goodbye!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu() {
	color.Cyan("\n=== IQ Test Score Analysis ===")
	fmt.Println("1. Dataset Overview")
	fmt.Println("2. Scores by Author")
	fmt.Println("3. Scores by Test Type")
	fmt.Println("4. Scores by Condition")
	fmt.Println("5. Mean Comparison T-Tests")
	fmt.Println("6. Weighted Mean Comparison")
	fmt.Println("7. One-Way ANOVA")
	fmt.Println("8. Categorical Dependence (Chi-Squared)")
	fmt.Println("9. High Score Relative Risk")
	fmt.Println("10. Practice Effect Regression")
	fmt.Println("11. Render Plots")
	fmt.Println("12. Export Summary Workbook")
	fmt.Println("13. Exit")
	fmt.Print("\nEnter your choice (1-13): ")
}

func displayOverview(ds *dataset.Dataset) {
	color.Yellow("\nDataset Overview")

	overall, err := stats.Describe(ds.Scores())
	if err != nil {
		log.Printf("Error describing scores: %v", err)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Records", "Dropped", "Mean", "Median", "Std Dev", "Min", "Max"})
	table.Append([]string{
		fmt.Sprintf("%d", overall.Count),
		fmt.Sprintf("%d", ds.Dropped),
		fmt.Sprintf("%.2f", overall.Mean),
		fmt.Sprintf("%.2f", overall.Median),
		fmt.Sprintf("%.2f", overall.StdDev),
		fmt.Sprintf("%.1f", overall.Min),
		fmt.Sprintf("%.1f", overall.Max),
	})
	table.Render()

	fmt.Printf("\nColumns: %s\n", strings.Join(ds.Columns, ", "))
	for _, col := range dataset.Categoricals {
		fmt.Printf("%s levels: %s\n", col, strings.Join(ds.Levels(col), ", "))
	}
	if ds.HasWeights() {
		fmt.Println("Sample weights: present")
	}
}

func displayGroupStats(ds *dataset.Dataset, col string) {
	summaries, err := stats.GroupDescribe(ds.GroupBy(col))
	if err != nil {
		log.Printf("Error computing group statistics for %s: %v", col, err)
		return
	}

	color.Yellow("\nScore Statistics by %s", col)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{col, "Count", "Mean", "Median", "Std Dev", "Min", "Max"})
	for _, s := range summaries {
		table.Append([]string{
			s.Name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.Median),
			fmt.Sprintf("%.2f", s.StdDev),
			fmt.Sprintf("%.1f", s.Min),
			fmt.Sprintf("%.1f", s.Max),
		})
	}
	table.Render()
}

func displayTTests(ds *dataset.Dataset) {
	color.Yellow("\nWelch T-Tests (is the first group's mean larger?)")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Comparison", "Mean A", "Mean B", "Diff", "t", "df", "p-value"})

	for _, c := range comparisons {
		a := ds.Where(c.column, c.a).Scores()
		b := ds.Where(c.column, c.b).Scores()
		res, err := stats.WelchTTest(a, b, stats.Greater)
		if err != nil {
			log.Printf("Skipping %s: %v", c.name, err)
			continue
		}
		table.Append(tTestRow(c.name, res))
	}
	table.Render()
	color.Yellow("p < 0.05 suggests the first group scores significantly higher.")
}

func displayWeightedTTests(ds *dataset.Dataset) {
	if !ds.HasWeights() {
		color.Yellow("\nNo Weight column in the input file; weighted comparison unavailable.")
		return
	}

	color.Yellow("\nWeighted Welch T-Tests (is the first group's mean larger?)")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Comparison", "Mean A", "Mean B", "Diff", "t", "df", "p-value"})

	for _, c := range comparisons {
		ga := ds.Where(c.column, c.a)
		gb := ds.Where(c.column, c.b)
		res, err := stats.WeightedWelchTTest(ga.Scores(), ga.Weights(), gb.Scores(), gb.Weights(), stats.Greater)
		if err != nil {
			log.Printf("Skipping %s: %v", c.name, err)
			continue
		}
		table.Append(tTestRow(c.name, res))
	}
	table.Render()
}

func tTestRow(name string, res stats.TTestResult) []string {
	return []string{
		name,
		fmt.Sprintf("%.2f (n=%d)", res.MeanA, res.NA),
		fmt.Sprintf("%.2f (n=%d)", res.MeanB, res.NB),
		fmt.Sprintf("%.2f", res.MeanDiff),
		fmt.Sprintf("%.3f", res.T),
		fmt.Sprintf("%.1f", res.DF),
		fmt.Sprintf("%.4f", res.P),
	}
}

func displayANOVA(ds *dataset.Dataset) {
	color.Yellow("\nOne-Way ANOVA (are mean scores equal across groups?)")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Grouping", "Groups", "F", "df", "p-value"})

	var significant []string
	for _, col := range dataset.Categoricals {
		res, err := stats.OneWayANOVA(ds.GroupBy(col))
		if err != nil {
			log.Printf("Skipping ANOVA for %s: %v", col, err)
			continue
		}
		table.Append([]string{
			col,
			fmt.Sprintf("%d", len(res.Means)),
			fmt.Sprintf("%.3f", res.F),
			fmt.Sprintf("(%d, %d)", res.DFBetween, res.DFWithin),
			fmt.Sprintf("%.4f", res.P),
		})
		if res.P < 0.05 {
			significant = append(significant, col)
		}
	}
	table.Render()

	if len(significant) == 0 {
		color.Yellow("No significant differences in mean scores found across the tested groups.")
		return
	}
	for _, col := range significant {
		color.Yellow("Significant difference in mean Score by %s. Group means:", col)
		displayGroupStats(ds, col)
	}
}

func displayChiSquare(ds *dataset.Dataset) {
	color.Yellow("\nChi-Squared Test for Independence (p < 0.05 suggests dependence)")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Column A", "Column B", "Chi2", "df", "p-value", "Cramér's V"})

	significant := 0
	for i := 0; i < len(dataset.Categoricals); i++ {
		for j := i + 1; j < len(dataset.Categoricals); j++ {
			colA, colB := dataset.Categoricals[i], dataset.Categoricals[j]
			res, err := stats.ChiSquareIndependence(ds.Labels(colA), ds.Labels(colB))
			if err != nil {
				log.Printf("Skipping %s vs %s: %v", colA, colB, err)
				continue
			}
			table.Append([]string{
				colA,
				colB,
				fmt.Sprintf("%.3f", res.Chi2),
				fmt.Sprintf("%d", res.DF),
				fmt.Sprintf("%.4f", res.P),
				fmt.Sprintf("%.4f", res.CramersV),
			})
			if res.P < 0.05 {
				significant++
			}
		}
	}
	table.Render()

	if significant == 0 {
		color.Yellow("No significant dependencies found between the tested categorical variables.")
	} else {
		color.Yellow("Cramér's V measures strength of association (0 = none, 1 = perfect).")
	}
}

func displayRelativeRisk(ds *dataset.Dataset) {
	color.Yellow("\nRelative Risk of High Scores")
	color.Yellow("RR > 1: the outcome is more likely in the first group; RR < 1: less likely.")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Condition", "Outcome", "Groups", "Risk A", "Risk B", "RR"})

	for _, col := range []string{dataset.ColColdHot, dataset.ColTimedUntimed, dataset.ColRecent} {
		labels := ds.Labels(col)
		for _, threshold := range riskThresholds {
			res, err := stats.RelativeRisk(labels, ds.Above(threshold))
			if err != nil {
				log.Printf("Skipping %s at %.0f: %v", col, threshold, err)
				continue
			}
			table.Append([]string{
				col,
				fmt.Sprintf("Score > %.0f", threshold),
				fmt.Sprintf("%s vs %s", res.GroupA, res.GroupB),
				fmt.Sprintf("%.3f", res.RiskA),
				fmt.Sprintf("%.3f", res.RiskB),
				fmt.Sprintf("%.2f", res.RR),
			})
		}
	}
	table.Render()
}

func displayPracticeEffect(ds *dataset.Dataset) {
	color.Yellow("\nPractice Effect Regression (Score ~ days since author's first test)")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Author", "N", "Slope/Day", "Intercept", "R²", "p-value"})

	for _, g := range ds.GroupBy(dataset.ColAuthor) {
		if len(g.Records) < stats.MinRegressionN {
			log.Printf("Not enough data to run a model for %s (%d records)", g.Name, len(g.Records))
			continue
		}
		xs := make([]float64, len(g.Records))
		for i, rec := range g.Records {
			xs[i] = rec.AuthorTime
		}
		fit, err := stats.LinearFit(xs, g.Scores())
		if err != nil {
			log.Printf("Skipping %s: %v", g.Name, err)
			continue
		}
		table.Append([]string{
			g.Name,
			fmt.Sprintf("%d", fit.N),
			fmt.Sprintf("%.4f", fit.Slope),
			fmt.Sprintf("%.2f", fit.Intercept),
			fmt.Sprintf("%.3f", fit.R2),
			fmt.Sprintf("%.4f", fit.P),
		})
	}
	table.Render()
}

func handleRenderPlots(ds *dataset.Dataset) {
	dir := envOr("PLOTS_DIR", "plots")
	renderer, err := plots.NewRenderer(dir)
	if err != nil {
		color.Red("Error preparing plot directory: %v", err)
		return
	}

	author := os.Getenv("PRACTICE_AUTHOR")
	if author == "" {
		author = mostFrequentAuthor(ds)
	}

	paths, err := renderer.RenderAll(ds, author)
	for _, p := range paths {
		color.Green("Wrote %s", p)
	}
	if err != nil {
		color.Red("Error rendering plots: %v", err)
		return
	}
	color.Green("Rendered %d plots to %s", len(paths), dir)
}

func handleExportWorkbook(ds *dataset.Dataset) {
	fmt.Print("Enter output path [summary.xlsx]: ")
	path := readString()
	if path == "" {
		path = "summary.xlsx"
	}

	var groupRows []report.GroupRow
	for _, col := range dataset.Categoricals {
		summaries, err := stats.GroupDescribe(ds.GroupBy(col))
		if err != nil {
			color.Red("Error summarizing %s: %v", col, err)
			return
		}
		for _, s := range summaries {
			groupRows = append(groupRows, report.GroupRow{
				Category: col,
				Level:    s.Name,
				Count:    s.Count,
				Mean:     s.Mean,
				Median:   s.Median,
				StdDev:   s.StdDev,
				Min:      s.Min,
				Max:      s.Max,
			})
		}
	}

	var testRows []report.TestRow
	for _, c := range comparisons {
		a := ds.Where(c.column, c.a).Scores()
		b := ds.Where(c.column, c.b).Scores()
		res, err := stats.WelchTTest(a, b, stats.Greater)
		if err != nil {
			continue
		}
		testRows = append(testRows, report.TestRow{
			Name:        "Welch t-test",
			Detail:      c.name,
			Statistic:   res.T,
			P:           res.P,
			Significant: res.P < 0.05,
		})
	}
	for _, col := range dataset.Categoricals {
		res, err := stats.OneWayANOVA(ds.GroupBy(col))
		if err != nil {
			continue
		}
		testRows = append(testRows, report.TestRow{
			Name:        "One-way ANOVA",
			Detail:      "Score by " + col,
			Statistic:   res.F,
			P:           res.P,
			Significant: res.P < 0.05,
		})
	}
	for i := 0; i < len(dataset.Categoricals); i++ {
		for j := i + 1; j < len(dataset.Categoricals); j++ {
			colA, colB := dataset.Categoricals[i], dataset.Categoricals[j]
			res, err := stats.ChiSquareIndependence(ds.Labels(colA), ds.Labels(colB))
			if err != nil {
				continue
			}
			testRows = append(testRows, report.TestRow{
				Name:        "Chi-squared independence",
				Detail:      colA + " vs " + colB,
				Statistic:   res.Chi2,
				P:           res.P,
				Significant: res.P < 0.05,
			})
		}
	}

	if err := report.WriteWorkbook(path, groupRows, testRows); err != nil {
		color.Red("Error exporting workbook: %v", err)
		return
	}
	color.Green("Exported summary workbook to %s", path)
}

func mostFrequentAuthor(ds *dataset.Dataset) string {
	best := ""
	bestCount := 0
	for _, g := range ds.GroupBy(dataset.ColAuthor) {
		if len(g.Records) > bestCount {
			best = g.Name
			bestCount = len(g.Records)
		}
	}
	return best
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readChoice() string {
	var input string
	fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

func readString() string {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}
