package h5store

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"

	mgenergy "github.com/ess-dg/mgenergy_go/pkg"
)

var clustersPath = "/" + ClustersGroup + "/" + ClustersTable

// ReadClusters loads the clustered events table of filename.
func ReadClusters(filename string) (*mgenergy.Events, error) {
	f, err := hdf5.OpenFile(filename, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer f.Close()

	rows, err := readTable[ClusterHDF5](f, clustersPath)
	if err != nil {
		return nil, err
	}
	events := mgenergy.NewEvents(len(rows))
	for _, row := range rows {
		events.Append(mgenergy.Event{
			Bus:    int(row.bus),
			GridCh: int(row.gch),
			WireCh: int(row.wch),
			ToF:    row.tof,
		})
	}
	return events, nil
}

// WriteClusters stores events in the layout read by ReadClusters.
func WriteClusters(filename string, events *mgenergy.Events, compressionLevel int) (err error) {
	f, err := createFile(filename)
	if err != nil {
		return err
	}
	var group *hdf5.Group
	var table *hdf5.Dataset
	defer func() {
		var errs []error
		if table != nil {
			if cerr := table.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("error closing clusters table: %w", cerr))
			}
		}
		if group != nil {
			if cerr := group.Close(); cerr != nil {
				errs = append(errs, fmt.Errorf("error closing clusters group: %w", cerr))
			}
		}
		if cerr := f.Close(); cerr != nil {
			errs = append(errs, fmt.Errorf("error closing file: %w", cerr))
		}
		if len(errs) > 0 {
			err = errors.Join(append([]error{err}, errs...)...)
		}
	}()

	group, err = createGroup(f, ClustersGroup)
	if err != nil {
		return err
	}
	table, err = createTable(group, ClustersTable, ClusterHDF5{}, compressionLevel)
	if err != nil {
		return err
	}

	rows := make([]ClusterHDF5, events.Len())
	for i := range rows {
		e := events.At(i)
		rows[i] = ClusterHDF5{
			bus: int32(e.Bus),
			gch: int32(e.GridCh),
			wch: int32(e.WireCh),
			tof: e.ToF,
		}
	}
	return writeArrayToTable(table, &rows, 0)
}
