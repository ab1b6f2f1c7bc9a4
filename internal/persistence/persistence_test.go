package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/markusressel/kraken2go/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestPersistence(t *testing.T) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "db", "kraken2go.db"))
	require.NoError(t, p.Init())
	return p
}

func createProfile(t *testing.T) *profile.Profile {
	builtin, err := catalog.GetBuiltin(catalog.BuiltinKrakenX)
	require.NoError(t, err)
	p := profile.Default(builtin.Capabilities(), profile.BuiltinCurveDefaults)
	p.Ring.Colors = []color.RGB{color.MustParseHex("#ff0000"), color.MustParseHex("#0000ff")}
	p.Ring.Mode = "wave"
	return p
}

func TestPersistence_Init_CreatesParentDirectory(t *testing.T) {
	// GIVEN
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	p := NewPersistence(filepath.Join(dir, "kraken2go.db"))

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestPersistence_SaveProfile_LoadProfile(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)
	expected := createProfile(t)
	_, err := expected.Fan.AddPoint(45, 70)
	require.NoError(t, err)

	// WHEN
	err = p.SaveProfile("kraken", expected)
	require.NoError(t, err)
	loaded, err := p.LoadProfile("kraken", profile.BuiltinCurveDefaults)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, expected.Ring, loaded.Ring)
	assert.Equal(t, expected.Logo, loaded.Logo)
	assert.Equal(t, expected.Fan.Points(), loaded.Fan.Points())
}

func TestPersistence_LoadProfile_Missing(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	loaded, err := p.LoadProfile("kraken", profile.BuiltinCurveDefaults)

	// THEN
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_LoadProfile_CorruptEntryIsDeleted(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "kraken2go.db")
	p := NewPersistence(dbPath)
	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketProfiles))
		if err != nil {
			return err
		}
		return b.Put([]byte("kraken"), []byte("{not json"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// WHEN
	loaded, err := p.LoadProfile("kraken", profile.BuiltinCurveDefaults)

	// THEN
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, os.ErrNotExist)

	db, err = bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_ = db.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket([]byte(BucketProfiles)).Get([]byte("kraken")))
		return nil
	})
}

func TestPersistence_DeleteProfile(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)
	require.NoError(t, p.SaveProfile("kraken", createProfile(t)))

	// WHEN
	err := p.DeleteProfile("kraken")

	// THEN
	assert.NoError(t, err)
	_, err = p.LoadProfile("kraken", profile.BuiltinCurveDefaults)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_DeleteProfile_NoBucket(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	err := p.DeleteProfile("kraken")

	// THEN
	assert.NoError(t, err)
}

func TestPersistence_ActiveDevice(t *testing.T) {
	// GIVEN
	p := newTestPersistence(t)

	// WHEN
	_, err := p.LoadActiveDevice()

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)

	// WHEN
	require.NoError(t, p.SaveActiveDevice("smart-device"))
	deviceId, err := p.LoadActiveDevice()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "smart-device", deviceId)
}
