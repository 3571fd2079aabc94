// Package store defines the persistence abstraction for tenant-partitioned
// data and the sentinel errors shared by all store implementations.
//
// Every record in the system lives inside a tenant's partition, under a named
// collection, keyed by an opaque string ID. The KV interface deliberately
// knows nothing about entity types; typed access is layered on top by the
// study service.
package store
