package mgenergy

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// ConnectToDatabase opens the calibration database. MySQL connections are
// built from the credentials, sqlite ones use dsn as the file path.
func ConnectToDatabase(driver string, user string, pass string, host string, dbname string, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverMySQL, "":
		port := "3306"
		dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
		return sqlx.Connect(DriverMySQL, dbURI)
	case DriverSQLite:
		return sqlx.Connect(DriverSQLite, dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

type VoxelMappingEntry struct {
	Bus    int     `db:"Bus"`
	GridCh int     `db:"GridCh"`
	WireCh int     `db:"WireCh"`
	X      float64 `db:"X"`
	Y      float64 `db:"Y"`
	Z      float64 `db:"Z"`
}

// DatabaseMapper reads calibrated voxel positions valid for a run.
type DatabaseMapper struct {
	DB        *sqlx.DB
	RunNumber int
}

func NewDatabaseMapper(db *sqlx.DB, runNumber int) *DatabaseMapper {
	return &DatabaseMapper{DB: db, RunNumber: runNumber}
}

func (m *DatabaseMapper) Coordinates(origin Voxel, distanceOffset float64) (*Mapping, error) {
	positions, err := getVoxelPositionsFromDB(m.DB, m.RunNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting voxel mapping from database: %w", err)
		logger.Error(errMessage.Error())
		return nil, errMessage
	}
	return relativeMapping(origin, distanceOffset, positions, m.RunNumber)
}

func getVoxelPositionsFromDB(db *sqlx.DB, runNumber int) (map[Voxel]Coordinate, error) {
	query := "SELECT Bus, GridCh, WireCh, X, Y, Z FROM VoxelMapping WHERE MinRun <= %d and MaxRun >= %d"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		logger.Info("Voxel mapping read from DB", "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return nil, errMessage
	}
	defer rows.Close()

	positions := make(map[Voxel]Coordinate, NBuses*NGridChs*NWireChs)
	for rows.Next() {
		result := VoxelMappingEntry{}
		err := rows.StructScan(&result)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return nil, errMessage
		}
		voxel := Voxel{Bus: result.Bus, GridCh: result.GridCh, WireCh: result.WireCh}
		if !voxel.InDetector() {
			return nil, &ErrInvalidVoxel{Voxel: voxel, Index: -1}
		}
		positions[voxel] = Coordinate{X: result.X, Y: result.Y, Z: result.Z}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading DB rows: %w", err)
	}
	return positions, nil
}

const voxelMappingSchema = `CREATE TABLE IF NOT EXISTS VoxelMapping (
	Bus    INTEGER NOT NULL,
	GridCh INTEGER NOT NULL,
	WireCh INTEGER NOT NULL,
	X      REAL    NOT NULL,
	Y      REAL    NOT NULL,
	Z      REAL    NOT NULL,
	MinRun INTEGER NOT NULL,
	MaxRun INTEGER NOT NULL
)`

// StoreLayout writes the positions of a layout into the VoxelMapping table
// for the run range [minRun, maxRun].
func StoreLayout(db *sqlx.DB, layout LayoutMapper, minRun int, maxRun int) error {
	if _, err := db.Exec(voxelMappingSchema); err != nil {
		return fmt.Errorf("error creating VoxelMapping table: %w", err)
	}
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	insert := "INSERT INTO VoxelMapping (Bus, GridCh, WireCh, X, Y, Z, MinRun, MaxRun) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	var insertErr error
	forEachDetectorVoxel(func(v Voxel) {
		if insertErr != nil {
			return
		}
		p := layout.Position(v)
		_, insertErr = tx.Exec(insert, v.Bus, v.GridCh, v.WireCh, p.X, p.Y, p.Z, minRun, maxRun)
	})
	if insertErr != nil {
		tx.Rollback()
		return fmt.Errorf("error inserting voxel positions: %w", insertErr)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing voxel positions: %w", err)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Stored %d voxel positions for runs %d-%d", NBuses*NGridChs*NWireChs, minRun, maxRun)
		logger.Info(message, "database")
	}
	return nil
}
