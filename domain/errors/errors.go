package errors

import "errors"

var (
	ErrInvalidFilterInput  = errors.New("invalid filter input")
	ErrDataUnavailable     = errors.New("data unavailable")
	ErrEmptyDataset        = errors.New("empty dataset")
	ErrReportNotGenerated  = errors.New("report not generated")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidStationData  = errors.New("invalid station data")
	ErrMissingColumn       = errors.New("missing column")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrInvalidYearType     = errors.New("invalid birth year type")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrUnknownCity         = errors.New("unknown city")
)
