package store

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"time"

	"txwire/log"
	"txwire/wire"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var logger = log.WithModule("store")

var (
	txsPrefix    = Prefixer("txs")
	txCountKey   = Prefixer(string(txsPrefix("count")))()
	txDataPrefix = Prefixer(string(txsPrefix("tx")))
)

// StoredTransaction wraps a raw wire encoding with the metadata the
// list and get commands need without re-decoding the whole payload.
type StoredTransaction struct {
	Txid      wire.Txid
	Raw       []byte
	Version   uint32
	NumInputs int
	LockTime  uint32
	StoredAt  time.Time
}

func (s *StoredTransaction) MarshalJSON() ([]byte, error) {
	out := struct {
		Txid      string    `json:"txid"`
		Raw       string    `json:"raw"`
		Version   uint32    `json:"version"`
		NumInputs int       `json:"num_inputs"`
		LockTime  uint32    `json:"lock_time"`
		StoredAt  time.Time `json:"stored_at"`
	}{
		s.Txid.String(),
		hex.EncodeToString(s.Raw),
		s.Version,
		s.NumInputs,
		s.LockTime,
		s.StoredAt,
	}
	return json.Marshal(out)
}

func (s *StoredTransaction) UnmarshalJSON(data []byte) error {
	in := &struct {
		Txid      string    `json:"txid"`
		Raw       string    `json:"raw"`
		Version   uint32    `json:"version"`
		NumInputs int       `json:"num_inputs"`
		LockTime  uint32    `json:"lock_time"`
		StoredAt  time.Time `json:"stored_at"`
	}{}
	if err := json.Unmarshal(data, in); err != nil {
		return err
	}
	txid, err := wire.NewTxidFromHex(in.Txid)
	if err != nil {
		return err
	}
	raw, err := hex.DecodeString(in.Raw)
	if err != nil {
		return err
	}

	s.Txid = txid
	s.Raw = raw
	s.Version = in.Version
	s.NumInputs = in.NumInputs
	s.LockTime = in.LockTime
	s.StoredAt = in.StoredAt
	return nil
}

// PutTransactionTx stores tx keyed by its txid. Storing a transaction
// that is already present overwrites it and leaves the count untouched.
func PutTransactionTx(ltx *leveldb.Transaction, tx wire.Transaction, now time.Time) (wire.Txid, error) {
	txid := tx.TxID()
	key := txDataPrefix(txid.String())
	exists, err := ltx.Has(key, nil)
	if err != nil {
		return wire.ZeroTxid, errors.Wrap(err, "error checking for stored transaction")
	}

	record := &StoredTransaction{
		Txid:      txid,
		Raw:       tx.Bytes(),
		Version:   tx.Version,
		NumInputs: len(tx.Inputs),
		LockTime:  tx.LockTime,
		StoredAt:  now,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return wire.ZeroTxid, errors.Wrap(err, "error marshaling stored transaction")
	}
	if err := ltx.Put(key, data, nil); err != nil {
		return wire.ZeroTxid, errors.Wrap(err, "error storing transaction")
	}

	if !exists {
		count, err := getTxCount(ltx)
		if err != nil {
			return wire.ZeroTxid, err
		}
		if err := ltx.Put(txCountKey, mustEncodeInt(count+1), nil); err != nil {
			return wire.ZeroTxid, errors.Wrap(err, "error updating transaction count")
		}
	}

	logger.Debug("stored transaction", "txid", txid, "num_inputs", record.NumInputs)
	return txid, nil
}

func GetTransaction(db *leveldb.DB, txid wire.Txid) (*StoredTransaction, error) {
	res, err := db.Get(txDataPrefix(txid.String()), nil)
	if err != nil {
		return nil, errors.Wrap(err, "error getting transaction")
	}
	record := new(StoredTransaction)
	if err := json.Unmarshal(res, record); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling stored transaction")
	}
	return record, nil
}

func HasTransaction(db *leveldb.DB, txid wire.Txid) (bool, error) {
	res, err := db.Has(txDataPrefix(txid.String()), nil)
	if err != nil {
		return false, errors.Wrap(err, "error checking for transaction")
	}
	return res, nil
}

// DeleteTransactionTx removes the stored transaction. Deleting a txid
// that was never stored is a no-op.
func DeleteTransactionTx(ltx *leveldb.Transaction, txid wire.Txid) error {
	key := txDataPrefix(txid.String())
	exists, err := ltx.Has(key, nil)
	if err != nil {
		return errors.Wrap(err, "error checking for stored transaction")
	}
	if !exists {
		return nil
	}
	if err := ltx.Delete(key, nil); err != nil {
		return errors.Wrap(err, "error deleting transaction")
	}
	count, err := getTxCount(ltx)
	if err != nil {
		return err
	}
	if err := ltx.Put(txCountKey, mustEncodeInt(count-1), nil); err != nil {
		return errors.Wrap(err, "error updating transaction count")
	}
	return nil
}

func GetTransactionCount(db *leveldb.DB) (int, error) {
	res, err := db.Get(txCountKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "error getting transaction count")
	}
	return mustDecodeInt(res), nil
}

type StoredTransactionStream struct {
	iter iterator.Iterator
}

func (s *StoredTransactionStream) Next() (*StoredTransaction, error) {
	if !s.iter.Next() {
		return nil, nil
	}

	record := new(StoredTransaction)
	if err := json.Unmarshal(s.iter.Value(), record); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling stored transaction")
	}
	return record, nil
}

func (s *StoredTransactionStream) Close() error {
	s.iter.Release()
	return s.iter.Error()
}

func StreamTransactions(db *leveldb.DB) *StoredTransactionStream {
	return &StoredTransactionStream{
		iter: db.NewIterator(util.BytesPrefix(txDataPrefix()), nil),
	}
}

func getTxCount(ltx *leveldb.Transaction) (int, error) {
	res, err := ltx.Get(txCountKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "error getting transaction count")
	}
	return mustDecodeInt(res), nil
}

func mustEncodeInt(in int) []byte {
	buf := make([]byte, 8, 8)
	binary.BigEndian.PutUint64(buf, uint64(in))
	return buf
}

func mustDecodeInt(in []byte) int {
	if len(in) == 0 {
		return 0
	}
	out := binary.BigEndian.Uint64(in)
	if out > math.MaxInt32 {
		panic("overflow")
	}
	return int(out)
}
