package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/markusressel/kraken2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketProfiles = "profiles"
	BucketSession  = "session"

	KeyActiveDevice = "activeDevice"
)

type Persistence interface {
	Init() error

	LoadProfile(deviceId string, defaults profile.CurveDefaults) (*profile.Profile, error)
	SaveProfile(deviceId string, p *profile.Profile) (err error)
	DeleteProfile(deviceId string) (err error)

	LoadActiveDevice() (string, error)
	SaveActiveDevice(deviceId string) (err error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (p persistence) put(bucket string, key string, value []byte) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(key), value)
	})
}

// SaveProfile stores the full profile document of the last commit for the given device
func (p persistence) SaveProfile(deviceId string, prof *profile.Profile) (err error) {
	data, err := profile.Encode(prof)
	if err != nil {
		return err
	}
	return p.put(BucketProfiles, deviceId, data)
}

// LoadProfile loads the last committed profile of the given device.
// Returns os.ErrNotExist if nothing was stored yet, corrupt entries are removed.
func (p persistence) LoadProfile(deviceId string, defaults profile.CurveDefaults) (*profile.Profile, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var result *profile.Profile
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketProfiles))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(deviceId))
		if v == nil {
			return os.ErrNotExist
		}

		decoded, err := profile.Decode(v, defaults)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to decode saved profile for %s: %v", deviceId, err)
			err := b.Delete([]byte(deviceId))
			if err != nil {
				ui.Error("Unable to delete corrupt profile key %s: %v", deviceId, err)
			}
			return os.ErrNotExist
		}

		result = decoded
		return nil
	})

	return result, err
}

func (p persistence) DeleteProfile(deviceId string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketProfiles))
		if b == nil {
			// no profile bucket yet
			return nil
		}
		if b.Get([]byte(deviceId)) == nil {
			return nil
		}
		return b.Delete([]byte(deviceId))
	})
}

// SaveActiveDevice remembers the device selected by the user
func (p persistence) SaveActiveDevice(deviceId string) error {
	return p.put(BucketSession, KeyActiveDevice, []byte(deviceId))
}

// LoadActiveDevice returns the remembered device id, or os.ErrNotExist
func (p persistence) LoadActiveDevice() (string, error) {
	db, err := p.openPersistence()
	if err != nil {
		return "", err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var deviceId string
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketSession))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(KeyActiveDevice))
		if len(v) == 0 {
			return os.ErrNotExist
		}
		deviceId = string(v)
		return nil
	})

	return deviceId, err
}
