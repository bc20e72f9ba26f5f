// Package memoryengine is an in-process event store with the same Query/Append contract
// as postgresengine. It backs the CLI's memory mode and the circulation tests.
//
// Appends are serialized under a mutex. The expected max sequence number of the filtered
// stream is checked and the events are inserted in the same critical section, which gives
// the same compare-and-swap guarantee as the SERIALIZABLE insert of the PostgreSQL engine.
package memoryengine
