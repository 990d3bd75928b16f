package main

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/explorer/config"
	"bikeshare/filterengine"
	"bikeshare/reporters/factory"
	"bikeshare/utils"
	"errors"
	"fmt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
	"time"
)

const (
	greeting          = "Hello! Let's explore some US bikeshare data!"
	farewell          = "Bye!"
	noDataMessage     = "No data for this selection."
	noMoreRowsMessage = "No more trips to show."

	cityQuestion     = "Which city would you like to explore? Chicago, New York City or Washington?\n> "
	monthQuestion    = "Which month? January to December, or all\n> "
	dayQuestion      = "Which day of the week? Sunday to Saturday, or all\n> "
	rawDataQuestion  = "\nWould you like to see %d rows of individual trip data? Enter yes or no.\n> "
	moreRowsQuestion = "Would you like to see %d more rows? Enter yes or no.\n> "
	restartQuestion  = "\nWould you like to restart? Enter yes or no.\n> "

	answerYes = "yes"
	answerNo  = "no"
)

var errInvalidAnswer = errors.New("invalid answer")

// DatasetLoader source of the trips and stations of a city
type DatasetLoader interface {
	Load(city string) (*trip.Dataset, error)
	LoadStations(city string) (map[string]station.StationData, error)
}

// Explorer drives the interactive session: it asks for the filters, shows the reports of the
// selected trips, pages through the raw data and asks whether to start again
type Explorer struct {
	config    *config.ExplorerConfig
	loader    DatasetLoader
	prompter  *Prompter
	output    io.Writer
	sessionID string
}

func NewExplorer(explorerConfig *config.ExplorerConfig, loader DatasetLoader, input io.Reader, output io.Writer) *Explorer {
	return &Explorer{
		config:    explorerConfig,
		loader:    loader,
		prompter:  NewPrompter(input, output),
		output:    output,
		sessionID: uuid.NewString(),
	}
}

func (e *Explorer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[session: %s][method: %s][status: ERROR] %s: %s", e.sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[session: %s][method: %s][status: OK] %s", e.sessionID, method, message)
}

// Run executes sessions until the operator declines to restart or the input is closed
func (e *Explorer) Run() error {
	log.Info(e.getLogMessage("Run", "session started", nil))
	for {
		err := e.runSession()
		if errors.Is(err, io.EOF) {
			log.Info(e.getLogMessage("Run", "input closed, ending session", nil))
			return nil
		}
		if err != nil {
			log.Error(e.getLogMessage("Run", "session failed", err))
			return err
		}

		restart, err := e.askYesNo(restartQuestion)
		if errors.Is(err, io.EOF) {
			log.Info(e.getLogMessage("Run", "input closed, ending session", nil))
			return nil
		}
		if err != nil {
			return err
		}

		if !restart {
			e.println(farewell)
			log.Info(e.getLogMessage("Run", "session finished", nil))
			return nil
		}
	}
}

func (e *Explorer) runSession() error {
	filterSpec, err := e.collectFilters()
	if err != nil {
		return err
	}
	log.Debug(e.getLogMessage("runSession", fmt.Sprintf("filters selected: %s", filterSpec), nil))

	dataset, err := e.loader.Load(filterSpec.City)
	if errors.Is(err, dataErrors.ErrDataUnavailable) {
		log.Warn(e.getLogMessage("runSession", "error loading trips", err))
		e.println(fmt.Sprintf("Sorry, the data of %s is not available right now.", filter.Title(filterSpec.City)))
		return nil
	}
	if err != nil {
		return err
	}

	selection := filterengine.Apply(dataset, filterSpec)
	log.Debug(e.getLogMessage("runSession", fmt.Sprintf("%v of %v trips selected", selection.Len(), dataset.Len()), nil))
	if selection.IsEmpty() {
		e.println(noDataMessage)
		return nil
	}

	stations, err := e.loader.LoadStations(filterSpec.City)
	if err != nil {
		log.Warn(e.getLogMessage("runSession", "stations not loaded, trip distances are skipped", err))
		stations = nil
	}

	if err := e.report(selection, stations); err != nil {
		return err
	}

	return e.displayRawData(selection)
}

// collectFilters asks for city, month and day until each of them is valid
func (e *Explorer) collectFilters() (filter.FilterSpec, error) {
	e.println(greeting)

	city, err := e.prompter.AskUntilValid(cityQuestion, filter.ParseCity, e.onInvalidInput)
	if err != nil {
		return filter.FilterSpec{}, err
	}

	month, err := e.prompter.AskUntilValid(monthQuestion, filter.ParseMonth, e.onInvalidInput)
	if err != nil {
		return filter.FilterSpec{}, err
	}

	day, err := e.prompter.AskUntilValid(dayQuestion, filter.ParseDay, e.onInvalidInput)
	if err != nil {
		return filter.FilterSpec{}, err
	}

	e.println(e.getSeparator())
	return filter.FilterSpec{City: city, Month: month, Day: day}, nil
}

// report runs every reporter over the selection and writes its result framed by its title and the elapsed time
func (e *Explorer) report(selection *trip.Dataset, stations map[string]station.StationData) error {
	reporters, err := factory.NewReporters(stations)
	if err != nil {
		return err
	}

	for _, reporter := range reporters {
		e.println("\n" + reporter.GetTitle() + "\n")
		start := time.Now()

		err := reporter.GenerateReport(selection)
		if errors.Is(err, dataErrors.ErrEmptyDataset) {
			e.println(noDataMessage)
		} else if err != nil {
			log.Error(e.getLogMessage("report", fmt.Sprintf("error generating %s report", reporter.GetType()), err))
			return err
		} else if err := reporter.SendReport(e.output); err != nil {
			log.Error(e.getLogMessage("report", fmt.Sprintf("error writing %s report", reporter.GetType()), err))
			return err
		}

		e.println(fmt.Sprintf("\nThis took %v seconds.", time.Since(start).Seconds()))
		e.println(e.getSeparator())
	}
	return nil
}

// displayRawData shows the selected trips in windows of page size until the operator says no or the trips run out
func (e *Explorer) displayRawData(selection *trip.Dataset) error {
	paginator := NewPaginator(selection, e.config.PageSize)

	show, err := e.askYesNo(fmt.Sprintf(rawDataQuestion, e.config.PageSize))
	for err == nil && show {
		offset := paginator.GetOffset()
		if err := writeTrips(e.output, paginator.Next(), offset, selection.Capabilities); err != nil {
			return err
		}

		if !paginator.HasNext() {
			e.println(noMoreRowsMessage)
			return nil
		}
		show, err = e.askYesNo(fmt.Sprintf(moreRowsQuestion, e.config.PageSize))
	}
	return err
}

func (e *Explorer) askYesNo(question string) (bool, error) {
	answer, err := e.prompter.AskUntilValid(question, e.parseAnswer, e.onInvalidInput)
	if err != nil {
		return false, err
	}
	return answer == answerYes, nil
}

func (e *Explorer) parseAnswer(input string) (string, error) {
	answer := utils.NormalizeInput(input)
	if utils.ContainsString(answer, e.config.AffirmativeAnswers) {
		return answerYes, nil
	}
	if utils.ContainsString(answer, e.config.NegativeAnswers) {
		return answerNo, nil
	}
	return "", fmt.Errorf("%w: %q", errInvalidAnswer, input)
}

func (e *Explorer) onInvalidInput(input string, err error) {
	log.Debug(e.getLogMessage("onInvalidInput", "asking again", err))
	e.println(fmt.Sprintf("Sorry, %q is not a valid option. Please try again.", strings.TrimSpace(input)))
}

func (e *Explorer) getSeparator() string {
	return strings.Repeat("-", e.config.SeparatorWidth)
}

func (e *Explorer) println(message string) {
	if _, err := fmt.Fprintln(e.output, message); err != nil {
		log.Error(e.getLogMessage("println", "error writing output", err))
	}
}
