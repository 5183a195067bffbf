// Package keystore persists the security material negotiated with bonded
// peers so that an encrypted link can be re-established without pairing
// again. Entries are kept in a JSON file keyed by peer address, with key
// material hex encoded.
package keystore

import (
	"io/ioutil"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/blekit/blecore"
)

// Entry is the security material retained for one bonded peer.
type Entry struct {
	Address     blecore.Address
	AddressType blecore.PeerAddressType
	LongTermKey blecore.LTK
	EDiv        blecore.EDIV
	Rand        blecore.Rand
	IdentityKey blecore.IRK
	SigningKey  blecore.CSRK
	// Legacy marks keys produced by legacy pairing rather than secure
	// connections.
	Legacy bool
}

// Store keeps bond entries, keyed by peer address.
type Store interface {
	Exists(addr blecore.Address) bool
	Find(addr blecore.Address) (Entry, error)
	Save(e Entry) error
	Delete(addr blecore.Address) error
	All() ([]Entry, error)
	Clear() error
}

// Option configures a Store created by New.
type Option func(*fileStore)

// WithLogger replaces the store's logger.
func WithLogger(l blecore.Logger) Option {
	return func(fs *fileStore) {
		fs.log = l
	}
}

type fileStore struct {
	filename string
	lock     sync.RWMutex
	log      blecore.Logger
}

// New creates a file backed Store. The file is created on first Save.
func New(filename string, opts ...Option) Store {
	fs := &fileStore{
		filename: filename,
		log:      blecore.GetLogger().ChildLogger(map[string]interface{}{"pkg": "keystore"}),
	}
	for _, o := range opts {
		o(fs)
	}
	return fs
}

func (fs *fileStore) Exists(addr blecore.Address) bool {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	recs, err := fs.load()
	if err != nil {
		fs.log.Errorf("load bonds: %v", err)
		return false
	}

	_, ok := recs[addr.String()]
	return ok
}

func (fs *fileStore) Find(addr blecore.Address) (Entry, error) {
	if addr.IsZero() {
		return Entry{}, errors.New("invalid address")
	}

	fs.lock.RLock()
	defer fs.lock.RUnlock()

	recs, err := fs.load()
	if err != nil {
		return Entry{}, err
	}

	rec, ok := recs[addr.String()]
	if !ok {
		return Entry{}, errors.Errorf("bond information not found for %s", addr)
	}

	return rec.entry()
}

func (fs *fileStore) Save(e Entry) error {
	if e.Address.IsZero() {
		return errors.New("refusing to save bond for the invalid address")
	}
	if e.LongTermKey.IsZero() {
		return errors.New("refusing to save bond without a long term key")
	}

	fs.lock.Lock()
	defer fs.lock.Unlock()

	recs, err := fs.load()
	if err != nil {
		return err
	}

	recs[e.Address.String()] = newRecord(e)

	fs.log.Debugf("saving bond for %s", e.Address)
	return fs.store(recs)
}

func (fs *fileStore) Delete(addr blecore.Address) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	recs, err := fs.load()
	if err != nil {
		return err
	}

	if _, ok := recs[addr.String()]; !ok {
		return errors.Errorf("bond information not found for %s", addr)
	}

	delete(recs, addr.String())
	return fs.store(recs)
}

func (fs *fileStore) All() ([]Entry, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	recs, err := fs.load()
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		e, err := rec.entry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (fs *fileStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	err := os.Remove(fs.filename)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "clear bond file")
	}
	return nil
}

func (fs *fileStore) load() (map[string]record, error) {
	recs := make(map[string]record)

	b, err := ioutil.ReadFile(fs.filename)
	if os.IsNotExist(err) {
		return recs, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read bond file")
	}

	if err := jsoniter.Unmarshal(b, &recs); err != nil {
		return nil, errors.Wrap(err, "decode bond file")
	}
	return recs, nil
}

func (fs *fileStore) store(recs map[string]record) error {
	b, err := jsoniter.MarshalIndent(recs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode bond file")
	}

	if err := ioutil.WriteFile(fs.filename, b, 0600); err != nil {
		return errors.Wrap(err, "write bond file")
	}
	return nil
}
