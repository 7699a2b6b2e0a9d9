/*
Package ledger is the only legitimate path to a wallet's monetary fields
outside creation.

Every mutation runs a read-modify-write cycle under a per-wallet row lock
inside a store transaction, so concurrent operations against the same wallet
serialize and the insufficient-funds check is never evaluated against a stale
balance. Operations on different wallets stay independent.

	svc := ledger.NewService(walletRepo, cache, nil)

	// Credit and debit enforce amount > 0 and balance >= 0.
	w, err := svc.Credit(ctx, walletID, amount)
	w, err = svc.Debit(ctx, walletID, amount)

	// SetBalance is an unchecked administrative override.
	w, err = svc.SetBalance(ctx, walletID, amount)

The Tx variants apply the same mutations inside a transaction owned by the
caller; the transaction lifecycle service uses them so an approval and its
balance change commit or roll back together.
*/
package ledger
