/*
Package dump provides I/O operations for collected states of the RewardPool
contract.

Dump is a snapshot of the contract state and storage pulled from the chain at
some height. Dumps are stored in the file system using human-readable encoding
and can be audited offline with Ledger.
*/
package dump
