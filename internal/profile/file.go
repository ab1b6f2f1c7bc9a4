package profile

import (
	"github.com/markusressel/kraken2go/internal/util"
	"os"
)

// LoadFile reads and decodes the profile at path
func LoadFile(path string, defaults CurveDefaults) (*Profile, error) {
	path, err := util.ExpandPath(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return Decode(data, defaults)
}

// SaveFile encodes the given profile and atomically replaces the file at path
func SaveFile(path string, p *Profile) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	path, err = util.ExpandPath(path)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := util.WriteFileAtomic(path, data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
