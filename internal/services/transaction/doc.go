/*
Package transaction drives the deposit/withdrawal lifecycle:

	PENDING -> APPROVED
	PENDING -> DENIED

No transition is reversible and none fires from a terminal state. Creating a
transaction only records intent; the wallet balance moves exclusively at
approval time, when the status flip and the ledger mutation commit as one
store transaction.
*/
package transaction
