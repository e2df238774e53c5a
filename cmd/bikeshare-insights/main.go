package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	lib "github.com/urban-metrics/bikeshare-insights"
	"github.com/urban-metrics/bikeshare-insights/config"
	"github.com/urban-metrics/bikeshare-insights/stations"
	"github.com/urban-metrics/bikeshare-insights/trips"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	call := flag.String("call", "trips", "oneshot call: trips|routes|months|stations|system")
	month := flag.String("month", trips.FilterAll, "month filter: all or YYYY-MM")
	configPath := flag.String("config", "", "path to config.yml (overrides search paths)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	lib.InitLogging(cfg.LogLevel)

	loader := trips.NewLoader(cfg.Trips.BaseURL, cfg.Trips.Files, timeoutFromMS(cfg.Trips.TimeoutMS))
	feed := stations.NewClient(cfg.Stations.FeedURL, timeoutFromMS(cfg.Stations.TimeoutMS))

	switch *mode {
	case "serve":
		serve(cfg, loader, feed)
	case "oneshot":
		if err := oneshot(*call, *month, loader, feed); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func serve(cfg config.AppConfig, loader *trips.Loader, feed *stations.Client) {
	dataset := lib.NewDataset()
	store := lib.NewStationStore()
	names := stations.NewNameCache(feed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher := lib.NewRefresher(loader, feed, dataset, store,
		time.Duration(cfg.Trips.RefreshIntervalMS)*time.Millisecond,
		time.Duration(cfg.Stations.RefreshIntervalMS)*time.Millisecond)
	refresher.Start(ctx)

	handler := lib.NewHandler(dataset, store, names)
	lib.StartServer(cfg.Server.Port, lib.NewRouter(handler))
	lib.HandleGracefulShutdown()
}

func oneshot(call, month string, loader *trips.Loader, feed *stations.Client) error {
	if !trips.ValidFilterToken(month) {
		return fmt.Errorf("invalid month filter %q", month)
	}
	ctx := context.Background()
	var out any
	switch call {
	case "trips":
		records, err := loader.Load(ctx)
		if err != nil {
			return err
		}
		out = trips.CalculateStats(trips.FilterByMonth(records, month))
	case "routes":
		records, err := loader.Load(ctx)
		if err != nil {
			return err
		}
		out = trips.CalculateStats(trips.FilterByMonth(records, month)).PopularRoutes
	case "months":
		records, err := loader.Load(ctx)
		if err != nil {
			return err
		}
		out = trips.AvailableMonths(records)
	case "stations":
		list, err := feed.FetchStations(ctx)
		if err != nil {
			return err
		}
		out = list
	case "system":
		list, err := feed.FetchStations(ctx)
		if err != nil {
			return err
		}
		out = stations.Summarize(list)
	default:
		return fmt.Errorf("unknown call %q", call)
	}
	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

func timeoutFromMS(ms int) time.Duration {
	if ms <= 0 {
		return 30 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
