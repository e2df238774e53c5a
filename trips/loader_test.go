package trips

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "trip_id,duration,start_time,end_time,start_station,start_lat,start_lon,end_station,end_lat,end_lon,bike_id,plan_duration,trip_route_category,passholder_type,bike_type\n"

func TestLoaderLoadConcatenatesInFileOrder(t *testing.T) {
	files := map[string]string{
		"/q1.csv": csvHeader +
			"1,10,2025-01-05 08:00:00,2025-01-05 08:10:00,3005,39.95,-75.16,3010,39.94,-75.15,b1,30,One Way,Indego30,standard\n" +
			"2,5,2025-02-01 09:00:00,2025-02-01 09:05:00,3010,39.94,-75.15,3005,39.95,-75.16,b2,30,One Way,Day Pass,electric\n",
		"/q2.csv": csvHeader +
			"3,20,2025-04-10 17:00:00,2025-04-10 17:20:00,3005,39.95,-75.16,3020,39.93,-75.17,b3,365,Round Trip,Indego365,standard\n",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL, []string{"q1.csv", "q2.csv"}, 0)
	records, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "1", records[0].TripID)
	assert.Equal(t, "2", records[1].TripID)
	assert.Equal(t, "3", records[2].TripID)
	assert.Equal(t, 20.0, records[2].Duration)
	assert.Equal(t, "electric", records[1].BikeType)
	assert.Equal(t, 39.95, records[0].StartLat)
}

func TestLoaderLoadFailsWhole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/q2.csv" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(csvHeader))
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL, []string{"q1.csv", "q2.csv"}, 0)
	records, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestParseCSVShortAndEmptyRows(t *testing.T) {
	body := csvHeader +
		"\n" +
		"9,abc,2025-03-01 12:00:00,,3005\n"
	records, err := ParseCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "9", r.TripID)
	assert.Equal(t, 0.0, r.Duration) // silent coercion
	assert.Equal(t, "3005", r.StartStation)
	assert.Equal(t, "", r.EndStation)
}

func TestParseCSVStripsBOMHeader(t *testing.T) {
	body := "\uFEFF" + csvHeader +
		"7,12,2025-03-01 12:00:00,2025-03-01 12:12:00,3005,39.95,-75.16,3010,39.94,-75.15,b7,30,One Way,Day Pass,standard\n"
	records, err := ParseCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].TripID)
}
