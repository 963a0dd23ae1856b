package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"github.com/vk/issctl/internal/opennotify"
)

func TestMain(m *testing.M) {
	// Assertions below match plain text; ANSI styling is exercised manually.
	color.Disable()
	m.Run()
}

func newTestRenderer() (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	return New(out, errW), out, errW
}

// tableRows returns the data rows of a rendered table, skipping the header.
func tableRows(output string) []string {
	var rows []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "| ") && !strings.Contains(line, "Duration") && !strings.Contains(line, "Name ") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestLocationBlock(t *testing.T) {
	r, out, _ := newTestRenderer()

	at := time.Unix(1690000000, 0)
	r.Location(&opennotify.LocationReading{
		At:       at,
		Position: opennotify.Coordinate{Lat: 10.1, Lon: -20.2},
	})

	got := out.String()
	require.Contains(t, got, "The ISS current location")
	require.Contains(t, got, "Time:      "+at.Format("2006-01-02 15:04:05"))
	require.Contains(t, got, "Latitude:  10.1")
	require.Contains(t, got, "Longitude: -20.2")
}

func TestPassesTableRowCountAndOrder(t *testing.T) {
	r, out, _ := newTestRenderer()

	first := time.Unix(1690001000, 0)
	second := time.Unix(1690007000, 0)
	r.Passes(&opennotify.PassResult{
		Request:  opennotify.Coordinate{Lat: 41.87, Lon: -87.62},
		Expected: 2,
		Events: []opennotify.PassEvent{
			{Duration: 600 * time.Second, Rise: first},
			{Duration: 300 * time.Second, Rise: second},
		},
	})

	got := out.String()
	require.Contains(t, got, "The ISS will be overhead")
	require.Contains(t, got, "Latitude:  41.87")
	require.Contains(t, got, "Longitude: -87.62")
	require.Contains(t, got, "Passes: 2")

	rows := tableRows(got)
	require.Len(t, rows, 2, "exactly one row per pass event")
	require.Contains(t, rows[0], "600")
	require.Contains(t, rows[0], first.Format("2006-01-02 15:04:05"))
	require.Contains(t, rows[1], "300")
	require.Contains(t, rows[1], second.Format("2006-01-02 15:04:05"))
}

func TestPeopleTable(t *testing.T) {
	r, out, _ := newTestRenderer()

	r.People(&opennotify.PeopleResult{
		Number: 3,
		People: []opennotify.Person{
			{Name: "Oleg Kononenko", Craft: "ISS"},
			{Name: "Nikolai Chub", Craft: "ISS"},
			{Name: "Li Guangsu", Craft: "Tiangong"},
		},
	})

	got := out.String()
	require.Contains(t, got, "The people now in space: 3")

	rows := tableRows(got)
	require.Len(t, rows, 3)
	require.Contains(t, rows[0], "Oleg Kononenko")
	require.Contains(t, rows[0], "ISS")
	require.Contains(t, rows[2], "Li Guangsu")
	require.Contains(t, rows[2], "Tiangong")
}

func TestErrorDecodeDetail(t *testing.T) {
	r, _, errW := newTestRenderer()

	body := []byte(`{"message": "success",`)
	_, err := opennotify.Decode(body)
	require.Error(t, err)

	r.Error(err)
	got := errW.String()
	require.Contains(t, got, string(body))
	require.Contains(t, got, "line 1")
}

func TestErrorSchemaDetail(t *testing.T) {
	r, _, errW := newTestRenderer()

	r.Error(&opennotify.SchemaError{
		Field:    "iss_position",
		Document: opennotify.Document{"message": "success"},
	})

	got := errW.String()
	require.Contains(t, got, "Field: iss_position")
	require.Contains(t, got, "success")
}

func TestErrorPlain(t *testing.T) {
	r, _, errW := newTestRenderer()

	r.Error(&opennotify.APIError{Reason: "ISS is over the hills and far away"})
	require.Contains(t, errW.String(), "ISS is over the hills and far away")
}
