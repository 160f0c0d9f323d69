package shell

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
)

func newTestLoader() *dataset.Loader {
	return dataset.NewLoader(dataset.LoaderConfig{
		DataDir: "../dataset/testdata",
		Cities: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		Columns: dataset.DefaultColumns(),
	})
}

type failingLoader struct {
	calls int
}

func (fl *failingLoader) Load(city string) (*trip.Table, error) {
	fl.calls += 1
	return nil, fmt.Errorf("%w: chicago.csv", dataset.ErrOpenFile)
}

func runSession(t *testing.T, loader TableLoader, input ...string) string {
	t.Helper()
	out := new(bytes.Buffer)
	sh := NewShell(strings.NewReader(strings.Join(input, "\n")+"\n"), out, loader, 5)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestRunChicagoAllMonthsAllDays(t *testing.T) {
	out := runSession(t, newTestLoader(), "chicago", "all", "all", "no", "no")

	assert.Equal(t, 1, strings.Count(out, greeting))
	assert.Contains(t, out, "Most common month for trips: June")
	assert.Contains(t, out, "Most common day of the week for trips: Monday")
	assert.Contains(t, out, "Most common start hour for trips: 8")
	assert.Contains(t, out, "Most common start station for trips: May St & Taylor St, Wood St & Hubbard St")
	assert.Contains(t, out, "Most common end station for trips: Damen Ave & Chicago Ave")
	assert.Contains(t, out, "Most frequent combination of start station and end station trip: Wood St & Hubbard St - Damen Ave & Chicago Ave")
	assert.Contains(t, out, "Total travel time is 89631 seconds and is equivalent to 1 day(s) 0 hour(s) 53 minute(s) 51 second(s)")
	assert.Contains(t, out, "Average travel time is 14938.5 seconds")
	assert.Contains(t, out, "Earliest Birth Year: 1975")
	assert.Contains(t, out, "Most Recent Birth Year: 1992")
	assert.Contains(t, out, "Most Common Birth Year: 1981, 1992")
	assert.Regexp(t, `Subscriber\s+4`, out)
	assert.Regexp(t, `Male\s+3`, out)
	assert.Equal(t, 4, strings.Count(out, "This took"))
	assert.Equal(t, 1, strings.Count(out, restartPrompt))

	timeIdx := strings.Index(out, "Calculating The Most Frequent Times of Travel")
	stationIdx := strings.Index(out, "Calculating The Most Popular Stations and Trip")
	durationIdx := strings.Index(out, "Calculating Trip Duration")
	userIdx := strings.Index(out, "Calculating User Stats")
	assert.True(t, timeIdx < stationIdx && stationIdx < durationIdx && durationIdx < userIdx)
}

func TestRunRepromptsInvalidInput(t *testing.T) {
	out := runSession(t, newTestLoader(), "boston", " Chicago ", "smarch", "June", "funday", "MONDAY", "no", "no")

	assert.Equal(t, 3, strings.Count(out, invalidInput))
	assert.Equal(t, 2, strings.Count(out, cityPrompt))
	assert.Equal(t, 2, strings.Count(out, monthPrompt))
	assert.Equal(t, 2, strings.Count(out, dayPrompt))
	assert.Contains(t, out, "Most common month for trips: June")
	assert.Contains(t, out, "Most common day of the week for trips: Monday")
	assert.Contains(t, out, "Most common start hour for trips: 8, 17")
}

func TestRunWashingtonHasNoDemographics(t *testing.T) {
	out := runSession(t, newTestLoader(), "washington", "all", "all", "no", "no")

	assert.Contains(t, out, "Gender data is not available for Washington")
	assert.Contains(t, out, "Birth Year data is not available for Washington")
	assert.Regexp(t, `Subscriber\s+3`, out)
	assert.Contains(t, out, "Total travel time is 3356.")
	assert.NotContains(t, out, "Earliest Birth Year")
}

func TestRunEmptyResult(t *testing.T) {
	out := runSession(t, newTestLoader(), "chicago", "december", "all", "yes", "no")

	assert.Equal(t, 4, strings.Count(out, noDataMessage))
	assert.Contains(t, out, noMoreRows)
}

func TestRunPagesRows(t *testing.T) {
	out := runSession(t, newTestLoader(), "chicago", "all", "all", "yes", "yes", "no")

	assert.Equal(t, 1, strings.Count(out, fmt.Sprintf(firstRowsFmt, 5)))
	assert.Equal(t, 1, strings.Count(out, fmt.Sprintf(moreRowsFmt, 5)))
	assert.Equal(t, 1, strings.Count(out, noMoreRows))
	assert.Equal(t, 2, strings.Count(out, "day_of_week"))
	assert.Contains(t, out, "Christiana Ave & Lawrence Ave")
	assert.Contains(t, out, "Tuesday")
	assert.NotContains(t, out, "X0")
}

func TestRunStopsPagingOnAnythingButYes(t *testing.T) {
	out := runSession(t, newTestLoader(), "chicago", "all", "all", "yes", "maybe", "no")

	assert.Equal(t, 1, strings.Count(out, "day_of_week"))
	assert.NotContains(t, out, noMoreRows)
	assert.Equal(t, 1, strings.Count(out, restartPrompt))
}

func TestRunRestarts(t *testing.T) {
	out := runSession(t, newTestLoader(),
		"washington", "all", "all", "no", "YES",
		"chicago", "march", "all", "no", "nope",
	)

	assert.Equal(t, 2, strings.Count(out, greeting))
	assert.Equal(t, 2, strings.Count(out, restartPrompt))
	assert.Contains(t, out, "Most common month for trips: March")
}

func TestRunRestartNeedsExactYes(t *testing.T) {
	tests := []struct {
		name         string
		answer       string
		wantGreeting int
	}{
		{name: "upper case", answer: "Yes", wantGreeting: 2},
		{name: "surrounding spaces", answer: " yes ", wantGreeting: 1},
		{name: "trailing space", answer: "yes ", wantGreeting: 1},
		{name: "y", answer: "y", wantGreeting: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runSession(t, newTestLoader(),
				"washington", "all", "all", "no", tt.answer,
				"washington", "all", "all", "no", "no",
			)
			assert.Equal(t, tt.wantGreeting, strings.Count(out, greeting))
		})
	}
}

func TestRunHeaderOnlyDataset(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago.csv"),
		[]byte(",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"), 0o644))
	loader := dataset.NewLoader(dataset.LoaderConfig{
		DataDir: dataDir,
		Cities:  map[string]string{"chicago": "chicago.csv"},
		Columns: dataset.DefaultColumns(),
	})

	out := runSession(t, loader, "chicago", "all", "all", "yes", "no")

	assert.Equal(t, 4, strings.Count(out, noDataMessage))
	assert.NotContains(t, out, "Could not load the data")
	assert.Contains(t, out, noMoreRows)
}

func TestRunReportsLoadErrorAndOffersRestart(t *testing.T) {
	loader := &failingLoader{}
	out := runSession(t, loader, "chicago", "all", "all", "yes", "chicago", "all", "all", "no")

	assert.Equal(t, 2, loader.calls)
	assert.Equal(t, 2, strings.Count(out, "Could not load the data of Chicago"))
	assert.NotContains(t, out, "Calculating")
	assert.Equal(t, 2, strings.Count(out, restartPrompt))
}

func TestRunEndsOnClosedInput(t *testing.T) {
	out := runSession(t, newTestLoader(), "chicago")

	assert.Contains(t, out, monthPrompt)
	assert.NotContains(t, out, "Calculating")
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := NewShell(strings.NewReader("chicago\n"), new(bytes.Buffer), newTestLoader(), 5)
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestNewShellDefaultPageSize(t *testing.T) {
	sh := NewShell(strings.NewReader(""), new(bytes.Buffer), newTestLoader(), 0)
	assert.Equal(t, defaultPageSize, sh.pageSize)
}
