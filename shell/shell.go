package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
)

const (
	shellStr        = "shell"
	yesAnswer       = "yes"
	defaultPageSize = 5

	greeting      = "Hello! Let's explore some US bikeshare data!"
	cityPrompt    = `Enter city name of choice from "Chicago, New York City, Washington": `
	monthPrompt   = `Enter month of choice from "january, february, march, april, may, june" or "all": `
	dayPrompt     = `Enter the day of week of choice from "monday, tuesday, wednesday, thursday, friday, saturday, sunday" or "all": `
	invalidInput  = "Invalid Input! Try Again"
	firstRowsFmt  = "Type 'yes' if you would like to see %d rows of the dataset or 'no' to continue: "
	moreRowsFmt   = "Type 'yes' if you would like to see %d more rows of the dataset or 'no' to continue: "
	noMoreRows    = "No more rows to display."
	restartPrompt = "\nWould you like to restart? Enter yes or no.\n"
	loadErrorFmt  = "Could not load the data of %s: %s\n"
	invalidSelFmt = "Invalid filters: %s\n"
)

// TableLoader loads the trips of a city
type TableLoader interface {
	Load(city string) (*trip.Table, error)
}

// Shell runs the interactive session: asks for the filters, shows the statistics of the
// filtered trips, pages through them and offers to start again
type Shell struct {
	scanner  *bufio.Scanner
	out      io.Writer
	loader   TableLoader
	renderer *Renderer
	pageSize int
}

func NewShell(in io.Reader, out io.Writer, loader TableLoader, pageSize int) *Shell {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Shell{
		scanner:  bufio.NewScanner(in),
		out:      out,
		loader:   loader,
		renderer: NewRenderer(out),
		pageSize: pageSize,
	}
}

func (s *Shell) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", shellStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", shellStr, method, message)
}

// Run loops until the user does not want to restart or the input is exhausted.
// It returns ctx.Err() if ctx is done before a new iteration begins
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		restart, err := s.runIteration()
		if errors.Is(err, io.EOF) {
			log.Debug(s.getLogMessage("Run", "input closed, bye!", nil))
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// runIteration returns true if the user wants to restart
func (s *Shell) runIteration() (bool, error) {
	fmt.Fprintln(s.out, greeting)

	selection, err := s.GetFilters()
	if err != nil {
		return false, err
	}

	if err := s.ShowStats(selection); err != nil {
		return false, err
	}

	return s.askRestart()
}

// GetFilters asks for the city, month and day until each one is valid
func (s *Shell) GetFilters() (filter.FilterSelection, error) {
	city, err := s.askUntilValid(cityPrompt, ValidateCity)
	if err != nil {
		return filter.FilterSelection{}, err
	}

	month, err := s.askUntilValid(monthPrompt, ValidateMonth)
	if err != nil {
		return filter.FilterSelection{}, err
	}

	day, err := s.askUntilValid(dayPrompt, ValidateDay)
	if err != nil {
		return filter.FilterSelection{}, err
	}

	s.renderer.RenderSeparator()
	return filter.NewFilterSelection(city, month, day), nil
}

// ShowStats loads and filters the trips of selection and renders every report.
// A load error is shown to the user and is not returned
func (s *Shell) ShowStats(selection filter.FilterSelection) error {
	if err := ValidateSelection(selection); err != nil {
		log.Error(s.getLogMessage("ShowStats", "invalid selection", err))
		fmt.Fprintf(s.out, invalidSelFmt, err)
		return nil
	}

	table, err := s.loader.Load(selection.City)
	if err != nil {
		log.Error(s.getLogMessage("ShowStats", fmt.Sprintf("error loading %s", selection.City), err))
		fmt.Fprintf(s.out, loadErrorFmt, filter.Title(selection.City), err)
		return nil
	}

	filtered := dataset.Filter(table, selection)
	log.Info(s.getLogMessage("ShowStats", fmt.Sprintf("%v of %v trips match %+v", filtered.Len(), table.Len(), selection), nil))

	for _, report := range stats.RunAll(filtered) {
		s.renderer.Render(report)
	}

	return s.DisplayRows(filtered)
}

// DisplayRows shows pageSize trips each time the user answers yes
func (s *Shell) DisplayRows(table *trip.Table) error {
	answer, err := s.ask(fmt.Sprintf(firstRowsFmt, s.pageSize))
	if err != nil {
		return err
	}

	start := 0
	for answer == yesAnswer {
		page := table.Page(start, s.pageSize)
		if len(page) == 0 {
			fmt.Fprintln(s.out, noMoreRows)
			return nil
		}

		s.renderer.RenderRows(table.Header, page, start)
		start += len(page)
		if start >= table.Len() {
			fmt.Fprintln(s.out, noMoreRows)
			return nil
		}

		answer, err = s.ask(fmt.Sprintf(moreRowsFmt, s.pageSize))
		if err != nil {
			return err
		}
	}
	return nil
}

// askRestart only accepts an exact yes, surrounding spaces included
func (s *Shell) askRestart() (bool, error) {
	answer, err := s.readAnswer(restartPrompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == yesAnswer, nil
}

// askUntilValid shows prompt until validateFn accepts the answer
func (s *Shell) askUntilValid(prompt string, validateFn func(string) (string, error)) (string, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return "", err
		}

		value, err := validateFn(answer)
		if err == nil {
			return value, nil
		}

		log.Debug(s.getLogMessage("askUntilValid", "rejected input", err))
		fmt.Fprintln(s.out, invalidInput)
	}
}

// ask shows prompt and returns the answer trimmed and lower cased
func (s *Shell) ask(prompt string) (string, error) {
	answer, err := s.readAnswer(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(answer)), nil
}

// readAnswer shows prompt and returns the line as typed. io.EOF is returned when the input is exhausted
func (s *Shell) readAnswer(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
