package opennotify

import (
	"fmt"
	"strconv"
	"time"
)

// Coordinate identifies a point on earth.
type Coordinate struct {
	Lat float64
	Lon float64
}

// LocationReading is the ISS position at a single moment.
type LocationReading struct {
	At       time.Time
	Position Coordinate
}

// PassEvent is one window during which the ISS is above the horizon.
type PassEvent struct {
	Duration time.Duration
	Rise     time.Time
}

// PassResult is the answer to a pass query: the coordinate the API echoed
// back, the pass count it reported, and the events in the order it returned
// them. No client-side sorting is applied.
type PassResult struct {
	Request  Coordinate
	Expected int
	Events   []PassEvent
}

// Person is one crew member currently in space.
type Person struct {
	Name  string
	Craft string
}

// PeopleResult is the current roster of people in space.
type PeopleResult struct {
	Number int
	People []Person
}

// successful verifies the message field of a decoded response. A "failure"
// message surfaces the upstream reason verbatim; any other non-success value
// is reported with the URL and the whole document.
func successful(doc Document, url string) error {
	msg, err := doc.str("message")
	if err != nil {
		return err
	}
	switch msg {
	case "success":
		return nil
	case "failure":
		reason, err := doc.str("reason")
		if err != nil {
			return err
		}
		return &APIError{URL: url, Reason: reason, Document: doc}
	default:
		return &APIError{URL: url, Document: doc}
	}
}

// locationFrom lifts an iss-now response into a LocationReading.
//
// The documented timestamp field is "timestamp", but some deployments of the
// upstream service have been observed answering with "timestampss"; both are
// accepted, documented name first.
func locationFrom(doc Document) (*LocationReading, error) {
	ts, err := doc.number("timestamp")
	if err != nil {
		if ts, err = doc.number("timestampss"); err != nil {
			return nil, &SchemaError{Field: "timestamp", Document: doc}
		}
	}

	pos, err := doc.object("iss_position")
	if err != nil {
		return nil, err
	}
	lat, err := coordinateField(pos, "iss_position.latitude", "latitude", doc)
	if err != nil {
		return nil, err
	}
	lon, err := coordinateField(pos, "iss_position.longitude", "longitude", doc)
	if err != nil {
		return nil, err
	}

	return &LocationReading{
		At:       time.Unix(int64(ts), 0),
		Position: Coordinate{Lat: lat, Lon: lon},
	}, nil
}

// coordinateField parses a coordinate the API serializes as a string.
func coordinateField(pos Document, path, field string, doc Document) (float64, error) {
	s, ok := pos[field].(string)
	if !ok {
		return 0, &SchemaError{Field: path, Document: doc}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &SchemaError{Field: path, Document: doc}
	}
	return v, nil
}

// passesFrom lifts an iss-pass response into a PassResult. Events keep the
// order of the response array.
func passesFrom(doc Document) (*PassResult, error) {
	req, err := doc.object("request")
	if err != nil {
		return nil, err
	}
	lat, err := req.number("latitude")
	if err != nil {
		return nil, &SchemaError{Field: "request.latitude", Document: doc}
	}
	lon, err := req.number("longitude")
	if err != nil {
		return nil, &SchemaError{Field: "request.longitude", Document: doc}
	}
	passes, err := req.number("passes")
	if err != nil {
		return nil, &SchemaError{Field: "request.passes", Document: doc}
	}

	entries, err := doc.array("response")
	if err != nil {
		return nil, err
	}

	result := &PassResult{
		Request:  Coordinate{Lat: lat, Lon: lon},
		Expected: int(passes),
		Events:   make([]PassEvent, 0, len(entries)),
	}
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, &SchemaError{Field: fmt.Sprintf("response[%d]", i), Document: doc}
		}
		e := Document(m)
		duration, err := e.number("duration")
		if err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("response[%d].duration", i), Document: doc}
		}
		rise, err := e.number("risetime")
		if err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("response[%d].risetime", i), Document: doc}
		}
		result.Events = append(result.Events, PassEvent{
			Duration: time.Duration(duration) * time.Second,
			Rise:     time.Unix(int64(rise), 0),
		})
	}
	return result, nil
}

// peopleFrom lifts an astros response into a PeopleResult. Rows keep the
// order of the people array.
func peopleFrom(doc Document) (*PeopleResult, error) {
	number, err := doc.number("number")
	if err != nil {
		return nil, err
	}

	entries, err := doc.array("people")
	if err != nil {
		return nil, err
	}

	result := &PeopleResult{
		Number: int(number),
		People: make([]Person, 0, len(entries)),
	}
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, &SchemaError{Field: fmt.Sprintf("people[%d]", i), Document: doc}
		}
		p := Document(m)
		name, err := p.str("name")
		if err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("people[%d].name", i), Document: doc}
		}
		craft, err := p.str("craft")
		if err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("people[%d].craft", i), Document: doc}
		}
		result.People = append(result.People, Person{Name: name, Craft: craft})
	}
	return result, nil
}
