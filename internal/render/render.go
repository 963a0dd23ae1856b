// Package render formats query results and errors for a human terminal.
// Output mirrors the upstream tool this client replaces: a single block for
// the current location, a header plus fixed-width table for passes and
// people, and red diagnostics for every error class.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"

	"github.com/vk/issctl/internal/opennotify"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	titleStyle = color.New(color.FgLightWhite, color.OpBold)
	bodyStyle  = color.New(color.FgGreen)
	errorStyle = color.New(color.FgRed)
)

const (
	tableRule  = "----------------------------------------------"
	tableJoint = "-----------------------+----------------------"
)

// Renderer writes results to out and error diagnostics to errW.
type Renderer struct {
	out  io.Writer
	errW io.Writer
}

// New builds a Renderer over the two output streams.
func New(out, errW io.Writer) *Renderer {
	return &Renderer{out: out, errW: errW}
}

// Location prints the current ISS position as a single block.
func (r *Renderer) Location(loc *opennotify.LocationReading) {
	fmt.Fprintln(r.out, titleStyle.Sprint("\nThe ISS current location"))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("\nTime:      %s", loc.At.Format(timeLayout)))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("Latitude:  %s", coordinate(loc.Position.Lat)))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("Longitude: %s", coordinate(loc.Position.Lon)))
}

// Passes prints the echoed query, the reported pass count, and one table row
// per pass event, in the order the API returned them.
func (r *Renderer) Passes(res *opennotify.PassResult) {
	fmt.Fprintln(r.out, titleStyle.Sprint("\nThe ISS will be overhead"))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("\nLatitude:  %s", coordinate(res.Request.Lat)))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("Longitude: %s", coordinate(res.Request.Lon)))
	fmt.Fprintln(r.out, bodyStyle.Sprintf("Passes: %d\n", res.Expected))

	fmt.Fprintln(r.out, bodyStyle.Sprint(tableRule))
	fmt.Fprintln(r.out, bodyStyle.Sprint("| Duration             | Risetime            |"))
	fmt.Fprintln(r.out, bodyStyle.Sprint(tableJoint))
	for _, e := range res.Events {
		seconds := strconv.Itoa(int(e.Duration.Seconds()))
		fmt.Fprintln(r.out, bodyStyle.Sprintf("| %20s | %20s|", seconds, e.Rise.Format(timeLayout)))
	}
	fmt.Fprintln(r.out, bodyStyle.Sprint(tableRule))
}

// People prints the crew roster as a name/craft table, in API order.
func (r *Renderer) People(res *opennotify.PeopleResult) {
	fmt.Fprintln(r.out, titleStyle.Sprintf("\nThe people now in space: %d\n", res.Number))

	fmt.Fprintln(r.out, bodyStyle.Sprint(tableRule))
	fmt.Fprintln(r.out, bodyStyle.Sprint("| Name                 | Craft               |"))
	fmt.Fprintln(r.out, bodyStyle.Sprint(tableJoint))
	for _, p := range res.People {
		fmt.Fprintln(r.out, bodyStyle.Sprintf("| %20s | %20s|", p.Name, p.Craft))
	}
	fmt.Fprintln(r.out, bodyStyle.Sprint(tableRule))
}

// Error prints a diagnostic for any error from the client, with extra detail
// for decode and schema failures.
func (r *Renderer) Error(err error) {
	var decodeErr *opennotify.DecodeError
	if errors.As(err, &decodeErr) {
		fmt.Fprintln(r.errW, errorStyle.Sprintf("%v", decodeErr.Err))
		fmt.Fprintln(r.errW, errorStyle.Sprint(string(decodeErr.Body)))
		fmt.Fprintln(r.errW, errorStyle.Sprintf("offset %d, line %d, column %d",
			decodeErr.Offset, decodeErr.Line, decodeErr.Column))
		return
	}

	var schemaErr *opennotify.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintln(r.errW, errorStyle.Sprint("Unexpected response shape."))
		fmt.Fprintln(r.errW, errorStyle.Sprintf("Field: %s", schemaErr.Field))
		fmt.Fprintln(r.errW, errorStyle.Sprintf("Data: %v", map[string]any(schemaErr.Document)))
		return
	}

	fmt.Fprintln(r.errW, errorStyle.Sprint(err.Error()))
}

// coordinate renders a coordinate with the shortest representation that
// round-trips, matching the strings the API serializes.
func coordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
