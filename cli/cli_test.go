package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/netrobust/cli"
	"github.com/katalvlaran/netrobust/config"
)

// workbook writes a workbook with a valid and (optionally) a broken tab.
func workbook(t *testing.T, dir string, broken bool) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "meadow"))
	require.NoError(t, f.SetSheetRow("meadow", "A1", &[]any{"", "X", "Y"}))
	require.NoError(t, f.SetSheetRow("meadow", "A2", &[]any{"P1", 1, 1}))
	require.NoError(t, f.SetSheetRow("meadow", "A3", &[]any{"P2", 1, 0}))
	if broken {
		_, err := f.NewSheet("broken")
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("broken", "A1", &[]any{"", "X"}))
		require.NoError(t, f.SetSheetRow("broken", "A2", &[]any{"P1", "maybe"}))
	}
	path := filepath.Join(dir, "networks.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand(context.Background(), "test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunWritesResultsAndCharts(t *testing.T) {
	dir := t.TempDir()
	in := workbook(t, dir, false)
	outPath := filepath.Join(dir, "results.xlsx")
	plots := filepath.Join(dir, "plots")

	out, err := run(t, in, "-o", outPath, "--plot-dir", plots, "--plot-format", "svg", "-w", "2")
	require.NoError(t, err)
	require.Contains(t, out, "meadow\tR=0.2500\tarea=0.1250")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Robustness", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Sheet", "R", "Area"}, {"meadow", "0.25", "0.125"}}, rows)
	require.Contains(t, f.GetSheetList(), "N1 meadow")

	_, err = os.Stat(filepath.Join(plots, "meadow.svg"))
	require.NoError(t, err)
}

func TestRunFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := workbook(t, dir, true)
	cfgPath := filepath.Join(dir, "netrobust.yaml")
	outPath := filepath.Join(dir, "results.csv")
	body := "input: " + in + "\noutput: " + outPath + "\nsheets: [meadow]\ndenominator: pollinators\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, err := run(t, "-c", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "meadow\tR=0.2500")
	require.NotContains(t, out, "broken")

	csv, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(csv), "meadow,0.5,0.5\n")
}

func TestRunReportsFailedTables(t *testing.T) {
	dir := t.TempDir()
	in := workbook(t, dir, true)

	out, err := run(t, in, "-o", filepath.Join(dir, "results.xlsx"))
	require.ErrorIs(t, err, cli.ErrTablesFailed)
	require.Contains(t, out, "meadow\tR=0.2500")
	require.Contains(t, out, "broken\terror:")
}

func TestRunValidation(t *testing.T) {
	_, err := run(t)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "networks.xlsx", "--denominator", "edges")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSheetsCommand(t *testing.T) {
	in := workbook(t, t.TempDir(), true)
	out, err := run(t, "sheets", in)
	require.NoError(t, err)
	require.Equal(t, "meadow\nbroken\n", out)
}

func TestSimulateIsSeeded(t *testing.T) {
	args := []string{"simulate", "--plants", "5", "--pollinators", "7", "-p", "0.4", "--seed", "9", "-t", "3"}
	a, err := run(t, args...)
	require.NoError(t, err)
	b, err := run(t, args...)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Contains(t, a, "trial 3\tR=")
	require.Contains(t, a, "over 3 trials")

	_, err = run(t, "simulate", "-t", "0")
	require.Error(t, err)
	_, err = run(t, "simulate", "--denominator", "edges")
	require.Error(t, err)
}
