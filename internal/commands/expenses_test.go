package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/ledger"
)

func readExpenses(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "expenses.csv"))
	require.NoError(t, err)
	return string(data)
}

func addAugust(t *testing.T, dir string) {
	t.Helper()
	out, err := runBudget(t, dir, "add", "2025-08-01", "Food", "12.50", "lunch")
	require.NoError(t, err, out)
	out, err = runBudget(t, dir, "add", "2025-08-02", "Food", "20")
	require.NoError(t, err, out)
}

func TestAdd_WritesRow(t *testing.T) {
	dir := t.TempDir()

	out, err := runBudget(t, dir, "add", "2025-08-01", " Food ", "12.5", "lunch")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added: 2025-08-01 | Food | 12.50 | lunch")

	assert.Equal(t, ledger.Header+"\n2025-08-01,Food,12.50,lunch\n", readExpenses(t, dir))
}

func TestAdd_InvalidDateLeavesFileEmpty(t *testing.T) {
	dir := t.TempDir()

	out, err := runBudget(t, dir, "add", "2025-13-01", "X", "5")
	require.Error(t, err)
	assert.Contains(t, out, "invalid date")
	assert.Equal(t, ledger.Header+"\n", readExpenses(t, dir))
}

func TestAdd_InvalidAmount(t *testing.T) {
	dir := t.TempDir()

	out, err := runBudget(t, dir, "add", "2025-08-01", "Food", "0")
	require.Error(t, err)
	assert.Contains(t, out, "invalid amount")
}

func TestScenario_ReportsDeleteAndList(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)

	out, err := runBudget(t, dir, "report", "category")
	require.NoError(t, err, out)
	assert.Regexp(t, `Food\s+32\.50`, out)

	out, err = runBudget(t, dir, "report", "month", "2025-08")
	require.NoError(t, err, out)
	assert.Contains(t, out, "TOTAL 2025-08: 32.50")

	out, err = runBudget(t, dir, "delete", "1", "--month", "2025-08")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Deleted index 1: 2025-08-01")

	out, err = runBudget(t, dir, "list", "--month", "2025-08")
	require.NoError(t, err, out)
	assert.Contains(t, out, "2025-08-02")
	assert.NotContains(t, out, "2025-08-01")
	assert.Contains(t, out, "Total shown: 20.00")
}

func TestEdit_CategoryOnly(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)

	out, err := runBudget(t, dir, "edit", "1", "--category", "Transport", "--month", "2025-08")
	require.NoError(t, err, out)

	assert.Equal(t, ledger.Header+"\n"+
		"2025-08-01,Transport,12.50,lunch\n"+
		"2025-08-02,Food,20.00,\n", readExpenses(t, dir))
}

func TestEdit_InvalidAmountChangesNothing(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)
	before := readExpenses(t, dir)

	out, err := runBudget(t, dir, "edit", "1", "--category", "Transport", "--amount=-5")
	require.Error(t, err)
	assert.Contains(t, out, "invalid amount")
	assert.Equal(t, before, readExpenses(t, dir))
}

func TestEdit_CategoryFilter(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)
	_, err := runBudget(t, dir, "add", "2025-08-03", "Rent", "800")
	require.NoError(t, err)

	out, err := runBudget(t, dir, "edit", "1", "--category-filter", "rent", "--note", "deposit")
	require.NoError(t, err, out)
	assert.Contains(t, readExpenses(t, dir), "2025-08-03,Rent,800.00,deposit")
}

func TestDelete_Boundaries(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)
	before := readExpenses(t, dir)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"delete", "0"}, "invalid index"},
		{[]string{"delete", "abc"}, "invalid index"},
		{[]string{"delete", "3", "--month", "2025-08"}, "out of range"},
		{[]string{"delete", "1", "--month", "2025-09"}, "out of range"},
		{[]string{"delete", "1", "--month", "2025-8"}, "invalid month"},
	}
	for _, tt := range tests {
		out, err := runBudget(t, dir, tt.args...)
		require.Error(t, err, "args %v", tt.args)
		assert.Contains(t, out, tt.want, "args %v", tt.args)
	}
	assert.Equal(t, before, readExpenses(t, dir))
}

func TestList_EmptyAndLimit(t *testing.T) {
	dir := t.TempDir()

	out, err := runBudget(t, dir, "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No expenses match")

	addAugust(t, dir)
	out, err = runBudget(t, dir, "list", "--limit", "1", "--category", "FOOD")
	require.NoError(t, err, out)
	assert.Contains(t, out, "2025-08-01")
	assert.NotContains(t, out, "2025-08-02")
	assert.Contains(t, out, "Total shown: 12.50")
}

func TestReport_RangeAndOverview(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)
	_, err := runBudget(t, dir, "add", "2025-09-01", "Rent", "800")
	require.NoError(t, err)

	out, err := runBudget(t, dir, "report", "range", "2025-08-02", "2025-09-30")
	require.NoError(t, err, out)
	assert.Contains(t, out, "TOTAL 2025-08-02..2025-09-30: 820.00")

	out, err = runBudget(t, dir, "report", "range", "2025-09-30", "2025-08-02")
	require.Error(t, err)
	assert.Contains(t, out, "invalid range")

	out, err = runBudget(t, dir, "report", "overview")
	require.NoError(t, err, out)
	assert.Regexp(t, `(?s)2025-08\s+32\.50.*2025-09\s+800\.00`, out)
}

func TestReport_MonthExport(t *testing.T) {
	dir := t.TempDir()
	addAugust(t, dir)
	_, err := runBudget(t, dir, "add", "2025-09-01", "Rent", "800")
	require.NoError(t, err)

	out, err := runBudget(t, dir, "report", "month", "2025-08", "--export", "august.csv")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Exported to august.csv")

	data, err := os.ReadFile(filepath.Join(dir, "august.csv"))
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n2025-08-01,Food,12.50,lunch\n2025-08-02,Food,20.00,\n", string(data))
}

func TestFileFlag(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "elsewhere.csv")

	out, err := runBudget(t, dir, "--file", other, "add", "2025-08-01", "Food", "1")
	require.NoError(t, err, out)

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-08-01,Food,1.00,")
	assert.NoFileExists(t, filepath.Join(dir, "expenses.csv"))
}

func TestActivityLog(t *testing.T) {
	dir := t.TempDir()
	cfg := "data_file: expenses.csv\nactivity_log: activity.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "budget.yaml"), []byte(cfg), 0o644))

	addAugust(t, dir)
	_, err := runBudget(t, dir, "edit", "2", "--note", "dinner")
	require.NoError(t, err)
	_, err = runBudget(t, dir, "delete", "1")
	require.NoError(t, err)
	_, err = runBudget(t, dir, "add", "bad-date", "Food", "1")
	require.Error(t, err)

	entries, err := activity.Read(filepath.Join(dir, "activity.csv"))
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, activity.ActionAdd, entries[0].Action)
	assert.Equal(t, activity.ActionEdit, entries[2].Action)
	assert.Contains(t, entries[2].Details, "#2 2025-08-02 | Food | 20.00 | dinner")
	assert.Equal(t, activity.ActionDelete, entries[3].Action)
}

func TestGitAutoCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	_, err := runBudget(t, dir, "init", "--git")
	require.NoError(t, err)

	out, err := runBudget(t, dir, "add", "2025-08-01", "Food", "12.50", "lunch")
	require.NoError(t, err, out)

	log := exec.Command("git", "log", "--format=%s")
	log.Dir = dir
	logOut, err := log.Output()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(logOut)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "add: 2025-08-01 | Food | 12.50 | lunch", lines[0])
}

func TestVersion(t *testing.T) {
	out, err := runBudget(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none")
}
