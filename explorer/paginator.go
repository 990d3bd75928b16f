package main

import (
	"bikeshare/domain/entities/trip"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

const (
	rowTimestampLayout = "2006-01-02 15:04:05"
	unknownValue       = "-"
)

// Paginator walks a dataset in successive windows of pageSize trips, keeping the original order
type Paginator struct {
	dataset  *trip.Dataset
	pageSize int
	offset   int
}

func NewPaginator(dataset *trip.Dataset, pageSize int) *Paginator {
	return &Paginator{
		dataset:  dataset,
		pageSize: pageSize,
	}
}

func (p *Paginator) HasNext() bool {
	return p.offset < p.dataset.Len()
}

// GetOffset returns the position of the first trip of the next window
func (p *Paginator) GetOffset() int {
	return p.offset
}

// Next returns the next window and moves forward. After the last window it returns nil
func (p *Paginator) Next() []*trip.TripData {
	window := p.dataset.Window(p.offset, p.pageSize)
	p.offset += len(window)
	return window
}

// writeTrips writes a window of trips as a table. Gender and birth year columns are only written
// when the dataset carries them. The first column is the position of the trip in the selection
func writeTrips(writer io.Writer, trips []*trip.TripData, offset int, capabilities trip.Capabilities) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	header := "#\tStart Time\tEnd Time\tTrip Duration\tStart Station\tEnd Station\tUser Type"
	if capabilities.HasGender {
		header += "\tGender"
	}
	if capabilities.HasBirthYear {
		header += "\tBirth Year"
	}
	if _, err := fmt.Fprintln(tabWriter, header); err != nil {
		return err
	}

	for idx, tripData := range trips {
		row := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s",
			offset+idx+1,
			tripData.StartDate.Format(rowTimestampLayout),
			tripData.EndDate.Format(rowTimestampLayout),
			strconv.FormatFloat(tripData.Duration, 'f', -1, 64),
			tripData.StartStation,
			tripData.EndStation,
			tripData.UserType,
		)
		if capabilities.HasGender {
			row += "\t" + valueOrUnknown(tripData.Gender, tripData.HasGender())
		}
		if capabilities.HasBirthYear {
			row += "\t" + valueOrUnknown(strconv.Itoa(tripData.BirthYear), tripData.HasBirthYear())
		}
		if _, err := fmt.Fprintln(tabWriter, row); err != nil {
			return err
		}
	}

	return tabWriter.Flush()
}

func valueOrUnknown(value string, known bool) string {
	if !known {
		return unknownValue
	}
	return value
}
