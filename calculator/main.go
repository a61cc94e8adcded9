package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"

	mgenergy "github.com/ess-dg/mgenergy_go/pkg"
	"github.com/ess-dg/mgenergy_go/pkg/h5store"
)

var configuration mgenergy.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	storeLayout := flag.Bool("store-layout", false, "Write the nominal voxel layout to the mapping database and exit")
	minRun := flag.Int("min-run", 0, "First run the stored layout applies to")
	maxRun := flag.Int("max-run", 1<<31-1, "Last run the stored layout applies to")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	mgenergy.SetConfiguration(configuration)
	mgenergy.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if *storeLayout {
		err = storeNominalLayout(configuration, *minRun, *maxRun)
	} else {
		err = run(configuration)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func connect(config mgenergy.Configuration) (*sqlx.DB, error) {
	db, err := mgenergy.ConnectToDatabase(config.DBDriver, config.User, config.Passwd,
		config.Host, config.DBName, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}

func storeNominalLayout(config mgenergy.Configuration, minRun int, maxRun int) error {
	db, err := connect(config)
	if err != nil {
		return err
	}
	defer db.Close()
	return mgenergy.StoreLayout(db, mgenergy.DefaultLayout(), minRun, maxRun)
}

// buildMapper returns the voxel mapping source and a function releasing it.
func buildMapper(config mgenergy.Configuration) (mgenergy.CoordinateMapper, func(), error) {
	if config.Mapping != mgenergy.MappingDatabase {
		return mgenergy.DefaultLayout(), func() {}, nil
	}
	db, err := connect(config)
	if err != nil {
		return nil, nil, err
	}
	return mgenergy.NewDatabaseMapper(db, config.RunNumber), func() { db.Close() }, nil
}

func run(config mgenergy.Configuration) error {
	start := time.Now()

	mapper, release, err := buildMapper(config)
	if err != nil {
		return err
	}
	defer release()

	events, err := h5store.ReadClusters(config.FileIn)
	if err != nil {
		return fmt.Errorf("error reading clusters: %w", err)
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of events: %d", events.Len())
		logger.Info(message, "main")
	}

	if len(config.Filters) > 0 {
		events, err = mgenergy.FilterEvents(events, config.Filters)
		if err != nil {
			return err
		}
	}

	calculator := mgenergy.NewCalculator(mapper)
	var energies []float64
	if config.Parallel {
		energies, err = calculator.ComputeEnergiesParallel(events, config.DistanceOffset, config.NumWorkers)
	} else {
		energies, err = calculator.ComputeEnergies(events, config.DistanceOffset)
	}
	if err != nil {
		return fmt.Errorf("error computing energies: %w", err)
	}
	logger.Info(mgenergy.Summarize(energies).String(), "main")

	writer, err := h5store.NewWriter(config.FileOut, config.CompressionLevel)
	if err != nil {
		return err
	}
	if err := writer.WriteEnergies(energies); err != nil {
		writer.Close()
		return err
	}
	if config.WriteDistances {
		table, err := calculator.Table(config.DistanceOffset)
		if err != nil {
			writer.Close()
			return err
		}
		if err := writer.WriteDistances(table); err != nil {
			writer.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	duration := time.Since(start)
	logger.Info(fmt.Sprintf("Total time: %d ms", duration.Milliseconds()), "main")
	return nil
}
