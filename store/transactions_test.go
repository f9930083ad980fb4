package store

import (
	"testing"
	"time"

	"txwire/wire"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func testWireTransaction(version uint32) wire.Transaction {
	var txid wire.Txid
	txid[0] = 0x11
	return wire.NewTransaction(version, []wire.TxIn{
		wire.NewTxIn(wire.NewOutPoint(txid, 3), wire.Script{0x51}, 0xffffffff),
	}, 1000)
}

func TestPutGetTransaction(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	tx := testWireTransaction(1)
	now := time.Unix(1234567890, 0).UTC()

	var txid wire.Txid
	require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
		var err error
		txid, err = PutTransactionTx(ltx, tx, now)
		return err
	}))
	require.Equal(t, tx.TxID(), txid)

	exists, err := HasTransaction(db, txid)
	require.NoError(t, err)
	require.True(t, exists)

	record, err := GetTransaction(db, txid)
	require.NoError(t, err)
	require.Equal(t, txid, record.Txid)
	require.Equal(t, tx.Bytes(), record.Raw)
	require.Equal(t, tx.Version, record.Version)
	require.Equal(t, len(tx.Inputs), record.NumInputs)
	require.Equal(t, tx.LockTime, record.LockTime)
	require.True(t, now.Equal(record.StoredAt))

	decoded, consumed, err := wire.DecodeTransaction(record.Raw)
	require.NoError(t, err)
	require.Equal(t, tx, decoded)
	require.Equal(t, len(record.Raw), consumed)

	count, err := GetTransactionCount(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPutTransaction_Idempotent(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	tx := testWireTransaction(1)
	for i := 0; i < 2; i++ {
		require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
			_, err := PutTransactionTx(ltx, tx, time.Now())
			return err
		}))
	}

	count, err := GetTransactionCount(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestDeleteTransaction(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	tx := testWireTransaction(1)
	require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
		_, err := PutTransactionTx(ltx, tx, time.Now())
		return err
	}))

	require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
		return DeleteTransactionTx(ltx, tx.TxID())
	}))

	exists, err := HasTransaction(db, tx.TxID())
	require.NoError(t, err)
	require.False(t, exists)

	count, err := GetTransactionCount(db)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// deleting again is a no-op
	require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
		return DeleteTransactionTx(ltx, tx.TxID())
	}))
}

func TestStreamTransactions(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	expected := make(map[string]bool)
	require.NoError(t, WithTx(db, func(ltx *leveldb.Transaction) error {
		for version := uint32(1); version <= 3; version++ {
			txid, err := PutTransactionTx(ltx, testWireTransaction(version), time.Now())
			if err != nil {
				return err
			}
			expected[txid.String()] = true
		}
		return nil
	}))

	stream := StreamTransactions(db)
	seen := 0
	for {
		record, err := stream.Next()
		require.NoError(t, err)
		if record == nil {
			break
		}
		require.True(t, expected[record.Txid.String()])
		seen++
	}
	require.NoError(t, stream.Close())
	require.Equal(t, len(expected), seen)
}
