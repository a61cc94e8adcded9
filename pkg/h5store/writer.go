package h5store

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"

	mgenergy "github.com/ess-dg/mgenergy_go/pkg"
)

// Writer stores computed energies and, optionally, the distance table used
// to compute them.
type Writer struct {
	File             *hdf5.File
	Filename         string
	EnergyGroup      *hdf5.Group
	GeometryGroup    *hdf5.Group
	EnergyTable      *hdf5.Dataset
	Distances        *hdf5.Dataset
	CompressionLevel int
	EvtCounter       int
}

func NewWriter(filename string, compressionLevel int) (*Writer, error) {
	writer := &Writer{Filename: filename, CompressionLevel: compressionLevel}
	var err error
	writer.File, err = createFile(filename)
	if err != nil {
		return nil, err
	}
	writer.EnergyGroup, err = createGroup(writer.File, EnergyGroup)
	if err != nil {
		writer.Close()
		return nil, err
	}
	writer.EnergyTable, err = createTable(writer.EnergyGroup, EnergyTable, EnergyHDF5{}, compressionLevel)
	if err != nil {
		writer.Close()
		return nil, err
	}
	return writer, nil
}

// WriteEnergies appends energies, numbering them after the events already
// written.
func (w *Writer) WriteEnergies(energies []float64) error {
	rows := make([]EnergyHDF5, len(energies))
	for i, energy := range energies {
		rows[i] = EnergyHDF5{
			event:  int64(w.EvtCounter + i),
			energy: energy,
		}
	}
	if err := writeArrayToTable(w.EnergyTable, &rows, w.EvtCounter); err != nil {
		return err
	}
	w.EvtCounter += len(energies)
	return nil
}

// WriteDistances stores the (bus, gch, wch) distance table once.
func (w *Writer) WriteDistances(table *mgenergy.DistanceTable) error {
	if w.Distances != nil {
		return fmt.Errorf("distance table already written to %q", w.Filename)
	}
	var err error
	w.GeometryGroup, err = createGroup(w.File, GeometryGroup)
	if err != nil {
		return err
	}
	dims := []uint{mgenergy.NBuses, mgenergy.NGridAxis, mgenergy.NWireChs}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return &ErrCreateTable{TableName: DistanceArray, Err: err}
	}
	defer space.Close()

	w.Distances, err = w.GeometryGroup.CreateDataset(DistanceArray, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return &ErrCreateTable{TableName: DistanceArray, Err: err}
	}
	flat := table.Flatten()
	if err := w.Distances.Write(&flat); err != nil {
		return fmt.Errorf("error writing distance table: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	var errs []error

	if w.EnergyTable != nil {
		if err := w.EnergyTable.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing energy table: %w", err))
		}
	}
	if w.Distances != nil {
		if err := w.Distances.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing distance table: %w", err))
		}
	}
	if w.EnergyGroup != nil {
		if err := w.EnergyGroup.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing energy group: %w", err))
		}
	}
	if w.GeometryGroup != nil {
		if err := w.GeometryGroup.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing geometry group: %w", err))
		}
	}
	if w.File != nil {
		if err := w.File.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ReadEnergies loads the energies table written by Writer.
func ReadEnergies(filename string) ([]float64, error) {
	f, err := hdf5.OpenFile(filename, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer f.Close()

	rows, err := readTable[EnergyHDF5](f, "/"+EnergyGroup+"/"+EnergyTable)
	if err != nil {
		return nil, err
	}
	energies := make([]float64, len(rows))
	for i, row := range rows {
		energies[i] = row.energy
	}
	return energies, nil
}
